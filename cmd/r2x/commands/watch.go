package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcllerena/R2X/config"
	"github.com/mcllerena/R2X/display"
	"github.com/mcllerena/R2X/filemap"
	"github.com/mcllerena/R2X/ingest"
	"github.com/mcllerena/R2X/pipeline"
	"github.com/mcllerena/R2X/resolve"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-ingest whenever files under the run folder change",
	Long: `Re-ingest whenever files under the run folder change.

Runs an initial ingestion pass, then watches the run folder and its
subdirectories. File changes are debounced into a single re-ingestion pass
and each pass is reported as it completes. Press Ctrl-C to stop.

Examples:
  r2x watch --fmap fmap.yaml --path ./runs/base`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmapPath, _ := cmd.Flags().GetString("fmap")
		runPath, _ := cmd.Flags().GetString("path")

		return runWatch(cmd, fmapPath, runPath)
	},
}

func init() {
	WatchCmd.Flags().String("fmap", "", "File map (JSON, YAML, or TOML) describing the input files")
	WatchCmd.Flags().String("path", ".", "Run folder to resolve input files against")
	WatchCmd.Flags().Bool("json", false, "Output results in JSON format")
	_ = WatchCmd.MarkFlagRequired("fmap")
}

func runWatch(cmd *cobra.Command, fmapPath, runPath string) error {
	useJSON := display.ShouldOutputJSON(cmd)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fm, err := filemap.Load(fmapPath)
	if err != nil {
		return fmt.Errorf("failed to load file map: %w", err)
	}

	steps := pipeline.DefaultSteps(cfg.Filter.InputModel)
	driver := ingest.New(
		ingest.WithWorkers(cfg.Ingest.Workers),
		ingest.WithResolver(resolve.New(cfg.Ingest.SearchFolders)),
	)

	// Initial pass so the watcher starts from a populated store
	startTime := time.Now()
	result, err := driver.Ingest(cmd.Context(), fm, runPath, steps, nil)
	if err != nil {
		return err
	}
	reportPass(cmd, result, time.Since(startTime), useJSON)

	// Pin resolved paths so re-ingestion skips the search
	fm.ApplyResolved(result.Resolved)

	watcher, err := ingest.NewWatcher(driver, fm, runPath, steps, nil)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", runPath, err)
	}
	defer watcher.Stop()

	watcher.OnReingest(func(result *ingest.Result, err error) {
		if err != nil {
			if !useJSON {
				pterm.Error.Printf("Re-ingestion failed: %v\n", err)
			}
			return
		}
		reportPass(cmd, result, 0, useJSON)
	})

	if !useJSON {
		pterm.Info.Printf("Watching %s for changes (Ctrl-C to stop)\n", runPath)
	}

	watcher.Start(cmd.Context())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-cmd.Context().Done():
	}
	if !useJSON {
		pterm.Println()
		pterm.Info.Println("Stopping watcher")
	}
	return nil
}

// reportPass prints a one-line summary of an ingestion pass
func reportPass(cmd *cobra.Command, result *ingest.Result, elapsed time.Duration, useJSON bool) {
	if useJSON {
		_ = display.OutputJSON(buildReport(result, elapsed))
		return
	}
	pterm.Success.Printf("[%s] ingested %d datasets\n", result.RunID, result.Store.Len())
}
