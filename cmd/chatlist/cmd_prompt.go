package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chatlist/internal/models"
	"chatlist/internal/repositories"
)

var (
	promptTags string
	promptTag  string
	promptFrom string
	promptTo   string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Create, list, search and delete prompts",
}

var promptAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Store a new prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.Prompts.Create(cmd.Context(), args[0], promptTags, time.Time{})
		if err != nil {
			return err
		}
		fmt.Printf("created prompt %d\n", p.ID)
		return nil
	},
}

var promptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := repositories.PromptFilter{TagContains: promptTag}
		if promptFrom != "" {
			from, err := time.Parse(time.DateOnly, promptFrom)
			if err != nil {
				return fmt.Errorf("invalid --from date %q, want YYYY-MM-DD", promptFrom)
			}
			filter.From = from
		}
		if promptTo != "" {
			to, err := time.Parse(time.DateOnly, promptTo)
			if err != nil {
				return fmt.Errorf("invalid --to date %q, want YYYY-MM-DD", promptTo)
			}
			filter.To = to.Add(24*time.Hour - time.Nanosecond)
		}
		prompts, err := store.Prompts.List(cmd.Context(), filter)
		if err != nil {
			return err
		}
		printPrompts(prompts)
		return nil
	},
}

var promptSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search prompt text and tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompts, err := store.Prompts.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printPrompts(prompts)
		return nil
	},
}

var promptTagCmd = &cobra.Command{
	Use:   "tag <id> <tags>",
	Short: "Replace a prompt's tags",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return store.Prompts.UpdateTags(cmd.Context(), id, args[1])
	},
}

var promptDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prompt and all its saved results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		removed, err := store.Prompts.Delete(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("deleted prompt %d (%d results removed)\n", id, removed)
		return nil
	},
}

func printPrompts(prompts []models.Prompt) {
	for _, p := range prompts {
		line := fmt.Sprintf("%4d  %s  %s", p.ID, p.Date.Format("2006-01-02 15:04"), p.Text)
		if p.Tags != "" {
			line += "  [" + p.Tags + "]"
		}
		fmt.Println(line)
	}
	fmt.Printf("%d prompt(s)\n", len(prompts))
}

func init() {
	promptAddCmd.Flags().StringVar(&promptTags, "tags", "", "comma-separated tags")
	promptListCmd.Flags().StringVar(&promptTag, "tag", "", "only prompts whose tags contain this text")
	promptListCmd.Flags().StringVar(&promptFrom, "from", "", "only prompts on or after this date (YYYY-MM-DD)")
	promptListCmd.Flags().StringVar(&promptTo, "to", "", "only prompts on or before this date (YYYY-MM-DD)")

	promptCmd.AddCommand(promptAddCmd, promptListCmd, promptSearchCmd, promptTagCmd, promptDeleteCmd)
}
