package converters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/GabrielNunesIT/doc-flattener/internal/xmltable"
)

// Backends holds the parsing libraries converters delegate to. A nil field
// means the library is unavailable, and New reports domain.ErrDependencyMissing
// for the converters that need it.
type Backends struct {
	Tables  TableLoader
	YAML    YAMLCodec
	OpenAPI SpecLoader
}

// DefaultBackends returns the backends built into the binary.
func DefaultBackends() Backends {
	return Backends{
		Tables:  xmltable.Loader{},
		YAML:    yamlV3Codec{},
		OpenAPI: kinLoader{},
	}
}

// New creates the converter matching the options variant. Converters are
// only returned as non-nil interfaces when construction succeeds.
func New(opts domain.ConverterOptions, backends Backends) (domain.Converter, error) {
	switch o := opts.(type) {
	case XMLOptions:
		c, err := NewXMLConverter(o, backends.Tables)
		if err != nil {
			return nil, err
		}

		return c, nil
	case YAMLOptions:
		c, err := NewYAMLConverter(o, backends.YAML)
		if err != nil {
			return nil, err
		}

		return c, nil
	case OpenAPIOptions:
		c, err := NewOpenAPIConverter(o, backends.OpenAPI)
		if err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, fmt.Errorf("%w: converter options %T", domain.ErrUnsupportedFormat, opts)
	}
}

// KindForPath infers the converter kind from a file extension.
func KindForPath(path string) (domain.Kind, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		return domain.KindXML, nil
	case ".yaml", ".yml":
		return domain.KindYAML, nil
	case ".json":
		return domain.KindOpenAPI, nil
	default:
		return "", fmt.Errorf("%w: file extension %q (supported: .xml, .yaml, .yml, .json)", domain.ErrUnsupportedFormat, ext)
	}
}

// ParseKind validates a user supplied converter kind.
func ParseKind(name string) (domain.Kind, error) {
	switch kind := domain.Kind(strings.ToLower(name)); kind {
	case domain.KindXML, domain.KindYAML, domain.KindOpenAPI:
		return kind, nil
	case "yml":
		return domain.KindYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: xml, yaml, openapi)", domain.ErrUnsupportedFormat, name)
	}
}
