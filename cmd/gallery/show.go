package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one random painting",
	Long: `Show picks a painting at random from the collection (the built-in
paintings, or those in --seed-file) and prints its caption and details.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !a.rotator.Next() {
		return fmt.Errorf("collection is empty")
	}
	return nil
}
