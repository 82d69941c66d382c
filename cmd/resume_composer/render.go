package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/danielcho/resume-composer/internal/compose"
	"github.com/danielcho/resume-composer/internal/config"
	"github.com/danielcho/resume-composer/internal/export"
	"github.com/danielcho/resume-composer/internal/layout"
	"github.com/danielcho/resume-composer/internal/observability"
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compose a document and export it",
	Long:  "Loads a resume document and an optional settings override file, resolves the settings cascade, and writes the result as a layout tree, HTML, or PDF.",
	RunE:  runRender,
}

var (
	renderDocumentFile string
	renderSettingsFile string
	renderTemplateID   string
	renderFormat       string
	renderOutputFile   string
	renderConfigFile   string
	renderPDFTimeout   int
	renderVerbose      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderDocumentFile, "document", "d", "", "Path to resume document JSON file (required)")
	renderCmd.Flags().StringVarP(&renderSettingsFile, "settings", "s", "", "Path to settings override JSON file (optional)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template id: classic, sidebar, or trio")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: tree, html, pdf, or all")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (default: stdout; derived from --document for all)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file with default flag values")
	renderCmd.Flags().IntVar(&renderPDFTimeout, "pdf-timeout", 0, "Headless browser timeout in seconds for PDF export")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print composition details")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Document:   renderDocumentFile,
		Settings:   renderSettingsFile,
		Template:   renderTemplateID,
		Format:     renderFormat,
		Output:     renderOutputFile,
		PDFTimeout: renderPDFTimeout,
		Verbose:    renderVerbose,
	}

	if renderConfigFile != "" {
		fileCfg, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Template == "" {
		cfg.Template = templates.DefaultTemplateID
	}
	if cfg.Format == "" {
		cfg.Format = "tree"
	}
	if cfg.Document == "" {
		return fmt.Errorf("--document is required")
	}

	doc, err := loadDocument(cfg.Document)
	if err != nil {
		return err
	}

	overrides, err := loadOverrides(cfg.Settings)
	if err != nil {
		return err
	}

	tmpl, err := templates.Get(cfg.Template)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printComposition(doc, overrides, tmpl)
	}

	root := compose.Compose(doc, overrides, tmpl)

	if cfg.Format == "all" {
		return writeAllFormats(root, cfg)
	}

	data, err := encodeOutput(context.Background(), root, cfg.Format, cfg)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if cfg.Format == "pdf" {
			return fmt.Errorf("--out is required for PDF output")
		}
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", cfg.Output)
	return nil
}

// printComposition emits verbose diagnostics to stderr so they never mix
// with tree or HTML output on stdout.
func printComposition(doc *types.Document, overrides settings.Settings, tmpl templates.Template) {
	printer := observability.NewPrinter(os.Stderr)
	printer.PrintDocument(doc)
	printer.PrintOverrides(overrides)
	printer.PrintMembership(tmpl.Membership)

	eff := settings.Resolve(settings.Defaults(), tmpl.Defaults, overrides)
	order := layout.NormalizeOrder(eff.SectionOrder(), types.SectionOrderFor(doc))
	columns := layout.Distribute(order, eff.Int(settings.KeyColumnCount), tmpl.Membership)
	printer.PrintDistribution(columns)
}

// writeAllFormats exports the tree, HTML, and PDF renditions concurrently.
// Output paths derive from the document file name unless --out is given.
func writeAllFormats(root *render.Node, cfg config.Config) error {
	base := strings.TrimSuffix(cfg.Document, ".json")
	if cfg.Output != "" {
		base = strings.TrimSuffix(cfg.Output, ".json")
	}

	g, ctx := errgroup.WithContext(context.Background())

	for _, format := range []string{"tree", "html", "pdf"} {
		g.Go(func() error {
			data, err := encodeOutput(ctx, root, format, cfg)
			if err != nil {
				return fmt.Errorf("%s export: %w", format, err)
			}
			path := base + "." + formatExt(format)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("%s export: %w", format, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
			return nil
		})
	}

	return g.Wait()
}

func formatExt(format string) string {
	switch format {
	case "tree":
		return "tree.json"
	case "html":
		return "html"
	default:
		return format
	}
}

// encodeOutput serializes the composed tree in the requested format.
func encodeOutput(ctx context.Context, root *render.Node, format string, cfg config.Config) ([]byte, error) {
	switch format {
	case "tree":
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		return data, nil
	case "html":
		return []byte(export.HTML(root)), nil
	case "pdf":
		timeout := export.DefaultPDFTimeout
		if cfg.PDFTimeout > 0 {
			timeout = time.Duration(cfg.PDFTimeout) * time.Second
		}
		return export.PDF(ctx, export.HTML(root), timeout)
	default:
		return nil, fmt.Errorf("unknown format %q (expected tree, html, pdf, or all)", format)
	}
}

func loadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document JSON: %w", err)
	}
	if doc.Basics.Name == "" {
		return nil, fmt.Errorf("document is missing basics.name")
	}

	return &doc, nil
}

func loadOverrides(path string) (settings.Settings, error) {
	if path == "" {
		return settings.Settings{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var overrides settings.Settings
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %w", err)
	}
	if overrides == nil {
		overrides = settings.Settings{}
	}

	return overrides, nil
}
