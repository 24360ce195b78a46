package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chatlist/internal/models"
)

var resultPromptID uint

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Inspect and prune saved model responses",
}

var resultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved results, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resultPromptID != 0 {
			rows, err := store.Results.ListByPrompt(cmd.Context(), resultPromptID)
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Printf("%4d  %s  %-30s  %s\n", r.ID, r.SavedAt.Format("2006-01-02 15:04"), r.ModelName, summary(r.ResponseText))
			}
			fmt.Printf("%d result(s)\n", len(rows))
			return nil
		}
		rows, err := store.Results.ListAll(cmd.Context())
		if err != nil {
			return err
		}
		printResultDetails(rows)
		return nil
	},
}

var resultSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search response text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.Results.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printResultDetails(rows)
		return nil
	},
}

var resultDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single saved result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return store.Results.Delete(cmd.Context(), id)
	},
}

func printResultDetails(rows []models.ResultDetail) {
	for _, r := range rows {
		fmt.Printf("%4d  %s  %-30s  prompt=%d  %s\n", r.ID, r.SavedAt.Format("2006-01-02 15:04"), r.ModelName, r.PromptID, summary(r.ResponseText))
	}
	fmt.Printf("%d result(s)\n", len(rows))
}

func summary(text string) string {
	const max = 60
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func init() {
	resultListCmd.Flags().UintVar(&resultPromptID, "prompt", 0, "only results for this prompt id")

	resultCmd.AddCommand(resultListCmd, resultSearchCmd, resultDeleteCmd)
}
