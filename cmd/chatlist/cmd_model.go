package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	modelAPIURL    string
	modelSecretRef string
	modelType      string
	modelInactive  bool
	modelsActive   bool
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage registered AI-model endpoints",
}

var modelAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a model endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := store.Models.Register(cmd.Context(), args[0], modelAPIURL, modelSecretRef, modelType, !modelInactive)
		if err != nil {
			return err
		}
		fmt.Printf("registered model %d (%s)\n", m.ID, m.Name)
		return nil
	},
}

var modelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := store.Models.List(cmd.Context(), modelsActive)
		if err != nil {
			return err
		}
		for _, m := range list {
			state := "active"
			if !m.IsActive {
				state = "inactive"
			}
			fmt.Printf("%4d  %-40s  %-10s  %-8s  secret=%s\n", m.ID, m.Name, m.ModelType, state, m.SecretRef)
		}
		fmt.Printf("%d model(s)\n", len(list))
		return nil
	},
}

var modelEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Mark a model active",
	Args:  cobra.ExactArgs(1),
	RunE:  setModelActive(true),
}

var modelDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Mark a model inactive",
	Args:  cobra.ExactArgs(1),
	RunE:  setModelActive(false),
}

func setModelActive(active bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return store.Models.SetActive(cmd.Context(), id, active)
	}
}

var modelDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a model (refused while results reference it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return store.Models.Delete(cmd.Context(), id)
	},
}

func init() {
	modelAddCmd.Flags().StringVar(&modelAPIURL, "url", "", "endpoint URL (required)")
	modelAddCmd.Flags().StringVar(&modelSecretRef, "secret-ref", "", "name of the credential slot, e.g. OPENAI_API_KEY (required)")
	modelAddCmd.Flags().StringVar(&modelType, "type", "", "provider type, e.g. openai, anthropic")
	modelAddCmd.Flags().BoolVar(&modelInactive, "inactive", false, "register the model as inactive")
	modelListCmd.Flags().BoolVar(&modelsActive, "active", false, "only active models")

	modelCmd.AddCommand(modelAddCmd, modelListCmd, modelEnableCmd, modelDisableCmd, modelDeleteCmd)
}
