package converters

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

const openAPIFormat = "openapi"

// SpecLoader loads an OpenAPI document from disk.
type SpecLoader interface {
	LoadFromFile(path string) (*openapi3.T, error)
}

// OpenAPIOptions configures an OpenAPIConverter.
type OpenAPIOptions struct {
	ConcatRows bool
	ColJoiner  string
	RowJoiner  string
}

// DefaultOpenAPIOptions returns the default OpenAPI converter options.
func DefaultOpenAPIOptions() OpenAPIOptions {
	return OpenAPIOptions{
		ConcatRows: true,
		ColJoiner:  defaultColJoiner,
		RowJoiner:  defaultRowJoiner,
	}
}

// Kind implements domain.ConverterOptions.
func (OpenAPIOptions) Kind() domain.Kind {
	return domain.KindOpenAPI
}

// OpenAPIConverter flattens an OpenAPI 3 document into one row per operation:
// method, path, operation ID, summary and tags.
type OpenAPIConverter struct {
	opts   OpenAPIOptions
	loader SpecLoader
}

// NewOpenAPIConverter creates a new OpenAPI converter. It fails with
// domain.ErrDependencyMissing when loader is nil.
func NewOpenAPIConverter(opts OpenAPIOptions, loader SpecLoader) (*OpenAPIConverter, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: openapi loader", domain.ErrDependencyMissing)
	}

	return &OpenAPIConverter{opts: opts, loader: loader}, nil
}

// Format returns the source format name.
func (c *OpenAPIConverter) Format() string {
	return openAPIFormat
}

// ParseFile loads the OpenAPI document at path and lists its operations
// ordered by path, then method.
func (c *OpenAPIConverter) ParseFile(path string, _ domain.ErrorMode) (*domain.ParsedDocument, error) {
	spec, err := c.loader.LoadFromFile(path)
	if err != nil {
		return nil, parseError(path, openAPIFormat, err)
	}

	rows := operationRows(spec)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w: no operations defined", path, domain.ErrShape)
	}

	return assemble(path, openAPIFormat, joinRows(rows, c.opts.ColJoiner), c.opts.ConcatRows, c.opts.RowJoiner), nil
}

func operationRows(spec *openapi3.T) [][]string {
	paths := spec.Paths.Map()

	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows [][]string

	for _, pathStr := range keys {
		item := paths[pathStr]
		if item == nil {
			continue
		}

		operations := item.Operations()

		methods := make([]string, 0, len(operations))
		for method := range operations {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := operations[method]
			rows = append(rows, []string{
				method,
				pathStr,
				op.OperationID,
				op.Summary,
				strings.Join(op.Tags, " "),
			})
		}
	}

	return rows
}

// kinLoader creates a fresh kin-openapi loader per call; openapi3.Loader
// keeps per-load state and cannot be shared.
type kinLoader struct{}

func (kinLoader) LoadFromFile(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	return loader.LoadFromFile(absPath)
}
