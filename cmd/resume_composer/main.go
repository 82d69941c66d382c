// Package main provides the entry point for the resume composer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_composer",
	Short: "Configurable resume document composition engine",
	Long:  "Resume Composer merges a resume document with a three-layer settings cascade and renders it as a styled layout tree, HTML, or PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
