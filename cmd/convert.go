// Package cmd — conversion run.
// runConvert orchestrates the pipeline:
// ingest → derive → transform → resolve → render → write.
//
// It merges defaults, environment, config file and flags, prints the
// diagnostic paths and the Markdown to stdout, and writes optional editions.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gaurav-prasanna/photominutes/config"
	"github.com/gaurav-prasanna/photominutes/core"
	"github.com/gaurav-prasanna/photominutes/core/ingest"
	"github.com/gaurav-prasanna/photominutes/core/output"
	"github.com/gaurav-prasanna/photominutes/core/pipeline"
	"github.com/gaurav-prasanna/photominutes/core/render"
	"github.com/gaurav-prasanna/photominutes/core/transform"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagSkipConversion bool
	flagConfig         string
	flagSmallRatio     float64
	flagLargeRatio     float64
	flagTitle          string
	flagDocumentName   string
	flagMarkdown       bool
	flagHTML           bool
	flagPDF            bool
	flagManifest       bool
	flagVerbose        bool
)

func init() {
	flags := rootCmd.Flags()

	flags.BoolVar(&flagSkipConversion, "skip-image-conversion", false, "Skip writing images, only produce the Markdown")
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML config file")

	// Image variants.
	flags.Float64Var(&flagSmallRatio, "small-ratio", 0.4, "Area ratio of the small variant, in (0, 1]")
	flags.Float64Var(&flagLargeRatio, "large-ratio", 1.0, "Area ratio of the large variant, in (0, 1] (1 copies the source)")

	// Extra editions written into OUTPUT.
	flags.StringVar(&flagTitle, "title", "Photo minutes", "Document title for the HTML and PDF editions")
	flags.StringVar(&flagDocumentName, "document-name", "minutes", "File name (without extension) of the extra editions")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Also write the Markdown document to a file")
	flags.BoolVar(&flagHTML, "html", false, "Also write an HTML edition")
	flags.BoolVar(&flagPDF, "pdf", false, "Also write a PDF edition")
	flags.BoolVar(&flagManifest, "manifest", false, "Also write a YAML manifest")

	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)
	stdout := cmd.OutOrStdout()

	fmt.Fprintf(stdout, "input: %s\n", cfg.Input)
	fmt.Fprintf(stdout, "output: %s\n", cfg.Output)

	var in core.Ingestor = ingest.New(logger)
	sections, err := in.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	p := &pipeline.Pipeline{
		Transformer:    transform.New(logger),
		Logger:         logger,
		OutputRoot:     cfg.Output,
		BaseURL:        cfg.BaseURL,
		Title:          cfg.Title,
		SmallRatio:     cfg.Images.SmallRatio,
		LargeRatio:     cfg.Images.LargeRatio,
		SkipConversion: cfg.Images.SkipConversion,
	}

	result, err := p.Run(cmd.Context(), sections)
	if err != nil {
		return err
	}

	if err := writeEditions(cfg, result.Minutes, logger); err != nil {
		return err
	}

	logger.Info("Conversion finished", "sections", len(sections), "images", result.Converted)
	fmt.Fprintln(stdout, result.Markdown)
	return nil
}

// loadConfig builds the run configuration. Precedence, lowest first:
// defaults, environment, config file, flags, positional arguments.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("skip-image-conversion") {
		cfg.Images.SkipConversion = flagSkipConversion
	}
	if flags.Changed("small-ratio") {
		cfg.Images.SmallRatio = flagSmallRatio
	}
	if flags.Changed("large-ratio") {
		cfg.Images.LargeRatio = flagLargeRatio
	}
	if flags.Changed("title") {
		cfg.Title = flagTitle
	}
	if flags.Changed("document-name") {
		cfg.Documents.Name = flagDocumentName
	}
	if flags.Changed("markdown") {
		cfg.Documents.Markdown = flagMarkdown
	}
	if flags.Changed("html") {
		cfg.Documents.HTML = flagHTML
	}
	if flags.Changed("pdf") {
		cfg.Documents.PDF = flagPDF
	}
	if flags.Changed("manifest") {
		cfg.Documents.Manifest = flagManifest
	}

	// Positional arguments fill INPUT, OUTPUT and ONLINE_BASE_PATH in order.
	targets := []*string{&cfg.Input, &cfg.Output, &cfg.BaseURL}
	for i, arg := range args {
		*targets[i] = arg
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// selectRenderers returns the extra editions enabled in cfg.
func selectRenderers(cfg *config.Config) []core.Renderer {
	var renderers []core.Renderer
	if cfg.Documents.Markdown {
		renderers = append(renderers, render.NewMarkdownRenderer())
	}
	if cfg.Documents.HTML {
		renderers = append(renderers, render.NewHTMLRenderer())
	}
	if cfg.Documents.PDF {
		renderers = append(renderers, render.NewPDFRenderer())
	}
	if cfg.Documents.Manifest {
		renderers = append(renderers, render.NewManifestRenderer())
	}
	return renderers
}

func writeEditions(cfg *config.Config, minutes core.Minutes, logger *slog.Logger) error {
	renderers := selectRenderers(cfg)
	if len(renderers) == 0 {
		return nil
	}

	writer, err := output.New(cfg.Output)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	for _, r := range renderers {
		data, err := r.Render(minutes)
		if err != nil {
			return fmt.Errorf("render %s: %w", r.Extension(), err)
		}
		path, err := writer.Write(cfg.Documents.Name, data, r.Extension())
		if err != nil {
			return err
		}
		logger.Info("Edition written", "path", path)
	}
	return nil
}

// newLogger returns a text logger on w; stdout is reserved for the document.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
