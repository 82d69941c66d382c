package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielcho/resume-composer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a document or settings file against its schema",
	RunE:  runValidate,
}

var (
	validateDocumentFile string
	validateSettingsFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateDocumentFile, "document", "d", "", "Path to resume document JSON file")
	validateCmd.Flags().StringVarP(&validateSettingsFile, "settings", "s", "", "Path to settings override JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateDocumentFile == "" && validateSettingsFile == "" {
		return fmt.Errorf("provide --document or --settings (or both)")
	}

	failed := false
	if validateDocumentFile != "" {
		failed = !validateAgainst(schemas.DocumentSchemaPath, validateDocumentFile) || failed
	}
	if validateSettingsFile != "" {
		failed = !validateAgainst(schemas.SettingsSchemaPath, validateSettingsFile) || failed
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

// validateAgainst validates one file and prints the result. Returns true
// when the file is valid.
func validateAgainst(schemaRelPath, jsonPath string) bool {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		fmt.Fprintf(os.Stderr, "✗ %s: schema not found (%s)\n", jsonPath, schemaRelPath)
		return false
	}

	err := schemas.ValidateJSON(schemaPath, jsonPath)
	if err == nil {
		fmt.Printf("✓ %s is valid\n", jsonPath)
		return true
	}

	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(os.Stderr, "✗ %s:\n", jsonPath)
		for _, fe := range ve.Errors {
			fmt.Fprintf(os.Stderr, "    %s: %s\n", fe.Field, fe.Message)
		}
		return false
	}

	fmt.Fprintf(os.Stderr, "✗ %s: %v\n", jsonPath, err)
	return false
}
