package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/targetgraph/pkg/errors"
)

// =============================================================================
// Serialization API
// =============================================================================

// Marshal encodes doc as JSON. An empty indent produces compact output.
func Marshal(doc *Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeTo(&buf, doc, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc as JSON to w. The document is fully encoded before the
// first byte reaches w.
func Encode(w io.Writer, doc *Document, indent string) error {
	data, err := Marshal(doc, indent)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "write document")
	}
	return nil
}

// WriteFile writes doc to path. If the file cannot be created nothing else
// happens and an OUTPUT_ERROR is returned.
func WriteFile(path string, doc *Document, indent string) error {
	data, err := Marshal(doc, indent)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "close %s", path)
	}
	return nil
}

// Decode reads a JSON document. Sequences decode as []any; use [JoinValue]
// to turn them back into strings.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &doc, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func encodeTo(w io.Writer, doc *Document, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}
