package domain

// Kind identifies a converter variant.
type Kind string

const (
	KindXML     Kind = "xml"
	KindYAML    Kind = "yaml"
	KindOpenAPI Kind = "openapi"
)

// ErrorMode is the decoding error policy passed to ParseFile.
// It is accepted by every converter and currently not consulted.
type ErrorMode string

// ErrorsIgnore is the default error mode.
const ErrorsIgnore ErrorMode = "ignore"

// Converter defines the interface for structured-file converters.
type Converter interface {
	// ParseFile loads the file at path and flattens it into text.
	ParseFile(path string, mode ErrorMode) (*ParsedDocument, error)

	// Format returns the source format name (e.g., "xml", "yaml").
	Format() string
}

// ConverterOptions is the construction-time configuration of a converter.
// Each converter variant has its own options type.
type ConverterOptions interface {
	Kind() Kind
}
