package main

import (
	"github.com/spf13/cobra"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch new paintings from the Met collection API",
	Long: `Collect runs one acquisition cycle: it searches The Metropolitan Museum of
Art's highlighted European paintings, samples a fixed number of them, and
fetches each with a pause between requests. Records missing an image, title,
or artist are skipped, as are paintings already in the collection. Individual
fetch failures do not stop the cycle.

The collection is held in memory only; use --export to keep the result.`,
	RunE: runCollect,
}

func init() {
	addAcquisitionFlags(collectCmd)
	collectCmd.Flags().String("export", "", "write the collection to this file after collecting (.json, .yaml, .db)")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if _, err := a.collect(ctx); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		return a.save(ctx, path)
	}
	return nil
}
