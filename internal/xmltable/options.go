package xmltable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Option keys accepted by ParseOptions.
const (
	OptXPath      = "xpath"
	OptNamespaces = "namespaces"
	OptAttrsOnly  = "attrs_only"
	OptElemsOnly  = "elems_only"
	OptNames      = "names"
	OptNARep      = "na_rep"
	OptStrict     = "strict"
)

const (
	defaultXPath = "./*"
	defaultNARep = "nan"
)

// ErrOption is returned by ParseOptions for unknown keys and bad values.
var ErrOption = errors.New("invalid xml table option")

// Options controls how XML nodes are mapped to rows and columns.
type Options struct {
	XPath      string
	Namespaces map[string]string
	AttrsOnly  bool
	ElemsOnly  bool
	Names      []string
	NARep      string
	Strict     bool
}

// DefaultOptions returns options that treat every child of the root element as a row.
func DefaultOptions() Options {
	return Options{
		XPath:  defaultXPath,
		NARep:  defaultNARep,
		Strict: true,
	}
}

// ParseOptions builds Options from a loosely typed map. Values may be native
// Go types or strings, so the map can come straight from config files or
// key=value command-line pairs.
func ParseOptions(raw map[string]any) (Options, error) {
	opts := DefaultOptions()

	for key, value := range raw {
		var err error

		switch key {
		case OptXPath:
			opts.XPath, err = asString(value)
			if err == nil && strings.TrimSpace(opts.XPath) == "" {
				err = errors.New("must not be empty")
			}
		case OptNamespaces:
			opts.Namespaces, err = asStringMap(value)
		case OptAttrsOnly:
			opts.AttrsOnly, err = asBool(value)
		case OptElemsOnly:
			opts.ElemsOnly, err = asBool(value)
		case OptNames:
			opts.Names, err = asStringSlice(value)
		case OptNARep:
			opts.NARep, err = asString(value)
		case OptStrict:
			opts.Strict, err = asBool(value)
		default:
			return Options{}, fmt.Errorf("%w: unknown key %q", ErrOption, key)
		}

		if err != nil {
			return Options{}, fmt.Errorf("%w: %s: %v", ErrOption, key, err)
		}
	}

	if opts.AttrsOnly && opts.ElemsOnly {
		return Options{}, fmt.Errorf("%w: %s and %s cannot both be set", ErrOption, OptAttrsOnly, OptElemsOnly)
	}

	return opts, nil
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}

	return s, nil
}

func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	default:
		return false, fmt.Errorf("expected bool, got %T", v)
	}
}

func asStringSlice(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case string:
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		return parts, nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}

			out = append(out, str)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", v)
	}
}

// asStringMap accepts a map or a "prefix=uri,prefix=uri" string.
func asStringMap(v any) (map[string]string, error) {
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, item := range m {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string value for %q, got %T", k, item)
			}

			out[k] = str
		}

		return out, nil
	case string:
		out := make(map[string]string)
		for _, pair := range strings.Split(m, ",") {
			prefix, uri, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok || prefix == "" {
				return nil, fmt.Errorf("expected prefix=uri, got %q", pair)
			}

			out[prefix] = uri
		}

		return out, nil
	default:
		return nil, fmt.Errorf("expected map of strings, got %T", v)
	}
}
