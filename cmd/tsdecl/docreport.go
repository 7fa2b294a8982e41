package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tsdecl/internal/docjson"
)

var docReportCmd = &cobra.Command{
	Use:   "doc-report [flags] report docs.json",
	Short: "Query a jsdoc-style JSON documentation dump",
	Long: `Doc-report reads a JSON documentation dump and prints one of the reports:
keys, names, longnames, kinds, or exports`,
	Args: cobra.ExactArgs(2),
	RunE: runDocReport,
}

func runDocReport(cmd *cobra.Command, args []string) error {
	report, path := args[0], args[1]

	entries, err := docjson.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load doc dump: %w", err)
	}

	switch report {
	case "keys":
		printLines(docjson.Keys(entries))
	case "names":
		printLines(docjson.Names(entries))
	case "longnames":
		printLines(docjson.Longnames(entries))
	case "kinds":
		printLines(docjson.Kinds(entries))
	case "exports":
		for _, exp := range docjson.Exports(entries) {
			fmt.Fprintf(os.Stdout, "%s %s (%s in %s)\n",
				exp.Kind, exp.Longname, exp.CodeType, exp.Filename)
			if exp.Kind != "function" {
				continue
			}
			fmt.Fprintf(os.Stdout, "  returns %s\n", strings.Join(exp.Returns, " | "))
			for _, p := range exp.Params {
				fmt.Fprintf(os.Stdout, "    %s: %s\n", p.Name, strings.Join(p.Type.Names, " | "))
			}
		}
	default:
		return fmt.Errorf("unknown report %q (must be keys, names, longnames, kinds, or exports)", report)
	}
	return nil
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(os.Stdout, line)
	}
}
