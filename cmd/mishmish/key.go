package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored Firecrawl API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Verify and store a Firecrawl API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		toast, err := a.widget.ConfigureKey(cmd.Context(), args[0])
		if toast.Title != "" {
			fmt.Fprintln(cmd.OutOrStdout(), formatToast(toast))
		}
		return err
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.widget.CatalogEnabled(cmd.Context()) {
			fmt.Fprintln(cmd.OutOrStdout(), "No API key stored. Catalog analysis is disabled.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API key stored (...%s). Catalog analysis is enabled.\n", a.widget.KeyHint(cmd.Context()))
		if !a.store.Persistent() {
			fmt.Fprintln(cmd.OutOrStdout(), "Warning: settings are held in memory only.")
		}
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.widget.ClearKey(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyStatusCmd, keyClearCmd)
}
