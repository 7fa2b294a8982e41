package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsdecl/internal/diagfmt"
	"tsdecl/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] path",
	Short: "Parse declaration files into their declaration tree",
	Long: `Parse reads a declaration file, or every *.d.ts file under a directory,
and prints the parsed declarations`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "parallel workers for directory parsing (0 = GOMAXPROCS)")
	parseCmd.Flags().Bool("no-cache", false, "bypass the declaration disk cache")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache dir degrades to uncached parsing.
		cache, _ = driver.OpenDiskCache("tsdecl")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runParseDir(cmd, path, format, maxDiagnostics, jobs, cache, quiet)
	}
	return runParseFile(cmd, path, format, maxDiagnostics, cache)
}

func runParseFile(cmd *cobra.Command, path, format string, maxDiagnostics int, cache *driver.DiskCache) error {
	result, parseErr := driver.Parse(path, driver.ParseOptions{
		MaxDiagnostics: maxDiagnostics,
		Cache:          cache,
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

	return renderDecls(format, result.Output, result)
}

func renderDecls(format string, output []diagfmt.DeclOutput, result *driver.ParseResult) error {
	switch format {
	case "pretty":
		return diagfmt.FormatDeclsPretty(os.Stdout, output, result.FileSet)
	case "json":
		return diagfmt.FormatDeclsJSON(os.Stdout, output)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runParseDir(cmd *cobra.Command, dir, format string, maxDiagnostics, jobs int, cache *driver.DiskCache, quiet bool) error {
	fileSet, results, err := driver.ParseDir(cmd.Context(), dir, maxDiagnostics, jobs, cache)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}

	failed := 0
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, prettyOpts)
		}
		if res.Bag.HasErrors() {
			failed++
			continue
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s:\n", res.Path)
		}
		switch format {
		case "pretty":
			if err := diagfmt.FormatDeclsPretty(os.Stdout, res.Output, fileSet); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatDeclsJSON(os.Stdout, res.Output); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}
