package config

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal serializes doc in the given format. LoadBytes on the result
// yields a document Equal to doc.
func Marshal(doc *document.Document, format Format) ([]byte, error) {
	file := FileFromDocument(doc)

	var (
		out []byte
		err error
	)
	switch format {
	case FormatTOML:
		out, err = marshalTOML(file)
	case FormatYAML:
		out, err = marshalYAML(file)
	case FormatJSON:
		out, err = marshalJSON(file)
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unknown format: %s", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode document as %s", format)
	}
	return out, nil
}

func marshalTOML(file File) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalYAML(file File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalJSON(file File) ([]byte, error) {
	out, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
