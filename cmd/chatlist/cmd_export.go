package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chatlist/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <prompt-id>",
	Short: "Export a prompt's results to Markdown or JSON",
	Long: `Export writes every saved result for the prompt to a file. Without
--format the stored default_export_format setting is used; the chosen format
becomes the new default, matching the app's export dialog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		prompt, err := store.Prompts.Get(ctx, id)
		if err != nil {
			return err
		}
		results, err := store.Results.ListByPrompt(ctx, id)
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			if format, err = store.Settings.DefaultExportFormat(ctx); err != nil {
				return err
			}
		}

		path := exportOut
		if path == "" {
			path = export.DefaultFilename(format, time.Now())
		}
		doc := export.Document{Prompt: *prompt, Results: results}
		if err := export.WriteFile(path, format, doc); err != nil {
			return err
		}

		if err := store.Settings.SetDefaultExportFormat(ctx, format); err != nil {
			return err
		}
		fmt.Printf("exported %d result(s) to %s\n", len(results), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "markdown or json (default: the default_export_format setting)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: chatlist_export_<timestamp>)")
}
