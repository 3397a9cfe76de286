// Package config manages user-level settings stored at ~/.pypack/config.yaml,
// such as the default interpreter version used by the check command.
package config
