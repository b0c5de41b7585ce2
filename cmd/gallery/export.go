package main

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection to a JSON, YAML, or SQLite file",
	Long: `Export writes the collection to a file. The format follows the file
extension (.json, .yaml/.yml, .db/.sqlite) unless --format is given. With
--collect, an acquisition cycle runs first so the export includes the
fetched paintings.`,
	RunE: runExport,
}

func init() {
	addAcquisitionFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "output file (default my-art-collection.json)")
	exportCmd.Flags().String("format", "", "export format: json, yaml, or sqlite")
	exportCmd.Flags().Bool("collect", false, "run an acquisition cycle before exporting")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if collect, _ := cmd.Flags().GetBool("collect"); collect {
		if _, err := a.collect(ctx); err != nil {
			return err
		}
	}
	return a.save(ctx, "")
}
