package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Marshal renders a Manifest back to TOML. The output is canonical: table
// order follows the struct layout and map keys are sorted, so marshaling
// the same value always produces the same bytes and Parse(Marshal(m))
// yields a Manifest equal to m. Comments from the source document are not
// carried through.
func Marshal(m *Manifest) ([]byte, error) {
	out, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return out, nil
}
