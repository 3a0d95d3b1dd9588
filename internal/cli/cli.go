// Package cli provides the command-line interface for the document flattener.
package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/adapters/converters"
	"github.com/GabrielNunesIT/doc-flattener/internal/adapters/exporters"
	"github.com/GabrielNunesIT/doc-flattener/internal/config"
	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/spf13/cobra"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log      logger.ILogger
	rootCmd  *cobra.Command
	backends converters.Backends
	create   func(name string) (io.WriteCloser, error)

	inputFile     string
	outputFile    string
	configFile    string
	format        string
	kind          string
	errorsMode    string
	rowJoiner     string
	colJoiner     string
	noConcat      bool
	multiDocument bool
	xmlOptions    []string
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{
		log:      log,
		backends: converters.DefaultBackends(),
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}

	cli.rootCmd = &cobra.Command{
		Use:          "doc-flattener",
		Short:        "Flatten XML and YAML files into plain text rows",
		Long:         "A CLI tool that converts structured XML, YAML and OpenAPI files into flat text for text ingestion, one string per row or a single joined document.",
		RunE:         cli.run,
		SilenceUsage: true,
	}

	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	flags := c.rootCmd.Flags()

	flags.StringVarP(&c.inputFile, "input", "i", "", "Path to the XML, YAML or OpenAPI file (required)")
	flags.StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (default: stdout)")
	flags.StringVarP(&c.configFile, "config", "c", "", "Path to a YAML or JSON configuration file")
	flags.StringVarP(&c.format, "format", "f", "", "Output format: text, json, pdf, docx, confluence")
	flags.StringVarP(&c.kind, "type", "t", "", "Input type: xml, yaml, openapi (default: from file extension)")
	flags.StringVar(&c.errorsMode, "errors", "", "Decoding error mode passed to the converter")
	flags.StringVar(&c.rowJoiner, "row-joiner", "", `Separator between rows when concatenating (supports \n, \t)`)
	flags.StringVar(&c.colJoiner, "col-joiner", "", `Separator between columns of a row (supports \n, \t)`)
	flags.BoolVar(&c.noConcat, "no-concat", false, "Emit one string per row instead of a single document")
	flags.BoolVar(&c.multiDocument, "multi-document", false, "Treat each document of a YAML stream as one item")
	flags.StringArrayVarP(&c.xmlOptions, "xml-option", "x", nil, "XML table option as key=value (xpath, namespaces, attrs_only, elems_only, names, na_rep, strict)")

	_ = c.rootCmd.MarkFlagRequired("input")
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) run(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := c.applyFlags(cmd, cfg); err != nil {
		return err
	}

	converter, err := c.getConverter(cfg)
	if err != nil {
		return err
	}

	exporter, err := exporters.ForFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	c.log.Infof("Parsing %s as %s", c.inputFile, converter.Format())

	doc, err := converter.ParseFile(c.inputFile, domain.ErrorMode(cfg.Errors))
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	c.log.Infof("Flattened %s into %d string(s)", c.inputFile, doc.Len())

	output, closeOutput, err := c.openOutput(cmd)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := closeOutput()
		if err != nil {
			return
		}

		if closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
			return
		}

		if c.outputFile != "" {
			c.log.Infof("Successfully created: %s", c.outputFile)
		}
	}()

	if err := exporter.Export(doc, output); err != nil {
		return fmt.Errorf("export to %s failed: %w", exporter.Format(), err)
	}

	return nil
}

// applyFlags overrides configuration values with the flags that were set.
func (c *CLI) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.OutputFormat = c.format
	}

	if flags.Changed("errors") {
		cfg.Errors = c.errorsMode
	}

	if flags.Changed("row-joiner") {
		cfg.RowJoiner = unescape(c.rowJoiner)
	}

	if flags.Changed("col-joiner") {
		cfg.ColJoiner = unescape(c.colJoiner)
	}

	if c.noConcat {
		cfg.ConcatRows = false
	}

	if c.multiDocument {
		cfg.MultiDocument = true
	}

	if len(c.xmlOptions) > 0 {
		merged := maps.Clone(cfg.XMLOptions)
		if merged == nil {
			merged = map[string]any{}
		}

		for _, pair := range c.xmlOptions {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("%w: xml option %q is not key=value", domain.ErrInvalidOption, pair)
			}

			merged[key] = value
		}

		cfg.XMLOptions = merged
	}

	return nil
}

func (c *CLI) getConverter(cfg *config.Config) (domain.Converter, error) {
	var (
		kind domain.Kind
		err  error
	)

	if c.kind != "" {
		kind, err = converters.ParseKind(c.kind)
	} else {
		kind, err = converters.KindForPath(c.inputFile)
	}

	if err != nil {
		return nil, err
	}

	return converters.New(converterOptions(kind, cfg), c.backends)
}

func converterOptions(kind domain.Kind, cfg *config.Config) domain.ConverterOptions {
	switch kind {
	case domain.KindYAML:
		return converters.YAMLOptions{
			ConcatRows:    cfg.ConcatRows,
			RowJoiner:     cfg.RowJoiner,
			MultiDocument: cfg.MultiDocument,
		}
	case domain.KindOpenAPI:
		return converters.OpenAPIOptions{
			ConcatRows: cfg.ConcatRows,
			ColJoiner:  cfg.ColJoiner,
			RowJoiner:  cfg.RowJoiner,
		}
	default:
		return converters.XMLOptions{
			ConcatRows:     cfg.ConcatRows,
			ColJoiner:      cfg.ColJoiner,
			RowJoiner:      cfg.RowJoiner,
			LibraryOptions: cfg.XMLOptions,
		}
	}
}

func (c *CLI) openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if c.outputFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	outputFile, err := c.create(c.outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return outputFile, outputFile.Close, nil
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r", `\\`, `\`)

// unescape expands the backslash escapes accepted by the joiner flags.
func unescape(s string) string {
	return escapes.Replace(s)
}
