package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielcho/resume-composer/internal/layout"
	"github.com/danielcho/resume-composer/internal/observability"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the resolved settings and layout for a document",
	Long:  "Resolves the settings cascade without rendering and prints the effective configuration, section order, and column distribution.",
	RunE:  runInspect,
}

var (
	inspectDocumentFile string
	inspectSettingsFile string
	inspectTemplateID   string
	inspectShowAll      bool
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectDocumentFile, "document", "d", "", "Path to resume document JSON file (required)")
	inspectCmd.Flags().StringVarP(&inspectSettingsFile, "settings", "s", "", "Path to settings override JSON file (optional)")
	inspectCmd.Flags().StringVarP(&inspectTemplateID, "template", "t", templates.DefaultTemplateID, "Template id")
	inspectCmd.Flags().BoolVar(&inspectShowAll, "all", false, "Dump every merged setting as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, _ []string) error {
	if inspectDocumentFile == "" {
		return fmt.Errorf("--document is required")
	}

	doc, err := loadDocument(inspectDocumentFile)
	if err != nil {
		return err
	}

	overrides, err := loadOverrides(inspectSettingsFile)
	if err != nil {
		return err
	}

	tmpl, err := templates.Get(inspectTemplateID)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDocument(doc)
	printer.PrintOverrides(overrides)
	printer.PrintMembership(tmpl.Membership)

	eff := settings.Resolve(settings.Defaults(), tmpl.Defaults, overrides)
	order := layout.NormalizeOrder(eff.SectionOrder(), types.SectionOrderFor(doc))
	columns := layout.Distribute(order, eff.Int(settings.KeyColumnCount), tmpl.Membership)
	printer.PrintDistribution(columns)

	if inspectShowAll {
		merged := settings.Defaults()
		for k, v := range tmpl.Defaults {
			if v != nil {
				merged[k] = v
			}
		}
		for k, v := range overrides {
			if v != nil {
				merged[k] = v
			}
		}

		// Map keys marshal in sorted order, so the dump is stable.
		data, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}
