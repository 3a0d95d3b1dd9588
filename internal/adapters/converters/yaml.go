package converters

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"gopkg.in/yaml.v3"
)

const yamlFormat = "yaml"

// YAMLCodec decodes YAML streams and encodes single values back to YAML text.
type YAMLCodec interface {
	// DecodeAll returns every document of the stream, in order.
	DecodeAll(r io.Reader) ([]any, error)

	// Encode serializes a value as block-style YAML.
	Encode(v any) (string, error)
}

// YAMLOptions configures a YAMLConverter.
type YAMLOptions struct {
	ConcatRows bool
	RowJoiner  string

	// MultiDocument treats each "---" separated document as one item
	// instead of requiring a single top-level sequence.
	MultiDocument bool
}

// DefaultYAMLOptions returns the default YAML converter options.
func DefaultYAMLOptions() YAMLOptions {
	return YAMLOptions{
		ConcatRows: true,
		RowJoiner:  defaultRowJoiner,
	}
}

// Kind implements domain.ConverterOptions.
func (YAMLOptions) Kind() domain.Kind {
	return domain.KindYAML
}

// YAMLConverter flattens YAML sequences into one YAML fragment per item.
type YAMLConverter struct {
	opts  YAMLOptions
	codec YAMLCodec
}

// NewYAMLConverter creates a new YAML converter. It fails with
// domain.ErrDependencyMissing when codec is nil.
func NewYAMLConverter(opts YAMLOptions, codec YAMLCodec) (*YAMLConverter, error) {
	if codec == nil {
		return nil, fmt.Errorf("%w: yaml codec", domain.ErrDependencyMissing)
	}

	return &YAMLConverter{opts: opts, codec: codec}, nil
}

// Format returns the source format name.
func (c *YAMLConverter) Format() string {
	return yamlFormat
}

// ParseFile decodes the YAML file at path and re-serializes every item.
// Without ConcatRows the document also carries the decoded items.
// The error mode is not consulted.
func (c *YAMLConverter) ParseFile(path string, _ domain.ErrorMode) (*domain.ParsedDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	docs, err := c.codec.DecodeAll(file)
	if err != nil {
		return nil, parseError(path, yamlFormat, err)
	}

	items, err := c.items(docs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	lines := make([]string, len(items))
	for i, item := range items {
		if lines[i], err = c.codec.Encode(item); err != nil {
			return nil, fmt.Errorf("failed to serialize item %d: %w", i, err)
		}
	}

	doc := assemble(path, yamlFormat, lines, c.opts.ConcatRows, c.opts.RowJoiner)
	if !c.opts.ConcatRows {
		doc.Items = items
	}

	return doc, nil
}

func (c *YAMLConverter) items(docs []any) ([]any, error) {
	if c.opts.MultiDocument {
		return docs, nil
	}

	switch len(docs) {
	case 0:
		return nil, fmt.Errorf("%w: empty document, expected a sequence", domain.ErrShape)
	case 1:
	default:
		return nil, fmt.Errorf("%w: expected a single document, found %d", domain.ErrShape, len(docs))
	}

	seq, ok := docs[0].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level %s is not a sequence", domain.ErrShape, describe(docs[0]))
	}

	return seq, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("scalar (%T)", v)
	}
}

// yamlV3Codec is the gopkg.in/yaml.v3 backed YAMLCodec. Decoding only
// produces plain maps, slices and scalars, never custom types.
type yamlV3Codec struct{}

func (yamlV3Codec) DecodeAll(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)

	var docs []any

	for {
		var doc any

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}
}

func (yamlV3Codec) Encode(v any) (string, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
