package fixture

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/treefixture/pkg/errors"
)

// WriteJSON encodes doc as JSON and writes it to w.
func WriteJSON(doc *Document, w io.Writer, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode fixture")
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path, replacing any existing file.
func ExportJSON(doc *Document, path string, indent bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()
	return WriteJSON(doc, f, indent)
}
