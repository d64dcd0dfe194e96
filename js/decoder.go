package js

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode"

	"github.com/fwojciec/sitesearch"
)

// Decoder reads an artifact written by Encoder with the same binding names.
type Decoder struct {
	IndexName   string
	PreviewName string
}

// Decode parses an artifact. Malformed or inconsistent input is EINVALID.
func (d *Decoder) Decode(r io.Reader) (*sitesearch.Artifact, error) {
	indexName, previewName, err := bindings(d.IndexName, d.PreviewName)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var a sitesearch.Artifact
	if data, err = decodeBinding(data, indexName, &a.Index); err != nil {
		return nil, err
	}
	if data, err = decodeBinding(data, previewName, &a.Previews); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) > 0 {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unexpected content after %s", previewName)
	}
	if err := a.Validate(); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "inconsistent artifact: %s", sitesearch.ErrorMessage(err))
	}
	if a.Index.Version != sitesearch.IndexVersion {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unsupported index version %d", a.Index.Version)
	}
	return &a, nil
}

// decodeBinding parses `const name = <json>;` at the start of data into v
// and returns the remaining input.
func decodeBinding(data []byte, name string, v any) ([]byte, error) {
	prefix := []byte("const " + name + " =")
	data = bytes.TrimLeftFunc(data, unicode.IsSpace)
	if !bytes.HasPrefix(data, prefix) {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "missing %s declaration", name)
	}
	data = data[len(prefix):]

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "decode %s: %v", name, err)
	}
	data = bytes.TrimLeftFunc(data[dec.InputOffset():], unicode.IsSpace)
	if !bytes.HasPrefix(data, []byte(";")) {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "missing semicolon after %s", name)
	}
	return data[1:], nil
}
