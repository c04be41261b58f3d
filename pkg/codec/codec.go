// Package codec turns records into bytes and back. The store is opaque to
// record schemas; a Codec is all it knows about them.
package codec

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/golang/snappy"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes records. Codec errors are plain errors; the
// store assigns them a kind.
type Codec interface {
	Name() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// Names of the built-in codecs, as accepted by ByName
const (
	NameJSON = "json"
	NameYAML = "yaml"
	NameTOML = "toml"
)

// JSON is the default codec.
var JSON Codec = jsonCodec{}

// YAML encodes records as YAML documents.
var YAML Codec = yamlCodec{}

// TOML encodes records as TOML documents. Records must encode to a table.
var TOML Codec = tomlCodec{}

type jsonCodec struct{}

func (jsonCodec) Name() string { return NameJSON }

func (jsonCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode rejects anything but whitespace after the first JSON value.
func (jsonCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return NameYAML }

func (yamlCodec) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return NameTOML }

func (tomlCodec) Encode(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlCodec) Decode(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

type snappyCodec struct {
	inner Codec
}

// Snappy compresses the output of inner with snappy block encoding.
func Snappy(inner Codec) Codec {
	return snappyCodec{inner: inner}
}

func (c snappyCodec) Name() string { return c.inner.Name() + "+snappy" }

func (c snappyCodec) Encode(v any) ([]byte, error) {
	raw, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, raw), nil
}

func (c snappyCodec) Decode(data []byte, v any) error {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return err
	}
	return c.inner.Decode(raw, v)
}

// ByName resolves a codec from configuration. compress wraps it with Snappy.
func ByName(name string, compress bool) (Codec, error) {
	var c Codec
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameJSON:
		c = JSON
	case NameYAML, "yml":
		c = YAML
	case NameTOML:
		c = TOML
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown codec %q", name).
			WithDetail("supported", []string{NameJSON, NameYAML, NameTOML})
	}
	if compress {
		c = Snappy(c)
	}
	return c, nil
}
