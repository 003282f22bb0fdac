package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcllerena/R2X/cmd/r2x/commands"
	"github.com/mcllerena/R2X/logger"
)

var rootCmd = &cobra.Command{
	Use:   "r2x",
	Short: "R2X - Simulation model input ingestion",
	Long: `R2X - Ingest heterogeneous simulation model inputs into validated components.

R2X resolves source files across a run folder's conventional subdirectories,
decodes them by format, applies a composable filter pipeline, and collects
the results in a parsed-data store for the per-source translators.

Available commands:
  ingest  - Run one ingestion pass over a file map
  watch   - Re-ingest whenever files under the run folder change
  version - Show build information

Examples:
  r2x ingest --fmap fmap.yaml --path ./runs/base
  r2x ingest --fmap fmap.yaml --path ./runs/base --workers 4 --json
  r2x watch  --fmap fmap.yaml --path ./runs/base`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")

	rootCmd.AddCommand(commands.IngestCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
