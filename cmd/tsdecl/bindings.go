package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsdecl/internal/bindgen"
	"tsdecl/internal/diagfmt"
	"tsdecl/internal/driver"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings [flags] file.d.ts",
	Short: "Generate Go binding stubs from a declaration file",
	Long: `Bindings parses an ambient declaration file and emits Go stub code for
its declarations. Name and type mappings can be overridden with a TOML file`,
	Args: cobra.ExactArgs(1),
	RunE: runBindings,
}

func init() {
	bindingsCmd.Flags().String("config", "", "TOML mapping file overriding the default name/type tables")
	bindingsCmd.Flags().String("output", "", "write generated code to this file instead of stdout")
}

func runBindings(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg := bindgen.DefaultConfig()
	if configPath != "" {
		cfg, err = bindgen.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	// The generator needs the real declaration nodes, so the disk cache
	// (which stores the rendered form) is not consulted here.
	result, parseErr := driver.Parse(filePath, driver.ParseOptions{
		MaxDiagnostics: maxDiagnostics,
	})
	if result == nil {
		return fmt.Errorf("parsing failed: %w", parseErr)
	}
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}
	if parseErr != nil {
		return fmt.Errorf("parsing failed: %w", parseErr)
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return bindgen.New(cfg).Generate(out, result.Decls)
}
