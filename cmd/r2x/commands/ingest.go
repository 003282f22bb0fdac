package commands

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcllerena/R2X/config"
	"github.com/mcllerena/R2X/display"
	"github.com/mcllerena/R2X/filemap"
	"github.com/mcllerena/R2X/ingest"
	"github.com/mcllerena/R2X/table"
)

// IngestCmd represents the ingest command
var IngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion pass over a file map",
	Long: `Run one ingestion pass over a file map.

Each entry in the file map is resolved against the run folder's search
directories, decoded by file extension, passed through the model's filter
pipeline, and collected in the parsed-data store.

Examples:
  r2x ingest --fmap fmap.yaml --path ./runs/base
  r2x ingest --fmap fmap.yaml --path ./runs/base --workers 4
  r2x ingest --fmap fmap.yaml --path ./runs/base --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmapPath, _ := cmd.Flags().GetString("fmap")
		runPath, _ := cmd.Flags().GetString("path")
		workers, _ := cmd.Flags().GetInt("workers")

		return runIngest(cmd, fmapPath, runPath, workers)
	},
}

func init() {
	IngestCmd.Flags().String("fmap", "", "File map (JSON, YAML, or TOML) describing the input files")
	IngestCmd.Flags().String("path", ".", "Run folder to resolve input files against")
	IngestCmd.Flags().Int("workers", 0, "Decode entries in parallel with this many workers (0 = config default)")
	IngestCmd.Flags().Bool("json", false, "Output results in JSON format")
	_ = IngestCmd.MarkFlagRequired("fmap")
}

// datasetSummary is one row of the post-ingestion report
type datasetSummary struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Kind string `json:"kind"`
	Rows int    `json:"rows"`
}

// ingestReport is the machine-readable result of an ingestion pass
type ingestReport struct {
	RunID    string           `json:"run_id"`
	Datasets []datasetSummary `json:"datasets"`
	Elapsed  string           `json:"elapsed"`
}

func runIngest(cmd *cobra.Command, fmapPath, runPath string, workers int) error {
	useJSON := display.ShouldOutputJSON(cmd)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if workers > 0 {
		cfg.Ingest.Workers = workers
	}

	fm, err := filemap.Load(fmapPath)
	if err != nil {
		return fmt.Errorf("failed to load file map: %w", err)
	}

	if !useJSON {
		pterm.DefaultHeader.WithFullWidth().Printf("R2X Ingest")
		pterm.Println()
		pterm.Info.Printf("File map: %s (%d entries)\n", fmapPath, len(fm))
		pterm.Info.Printf("Run folder: %s\n", runPath)
		pterm.Println()
	}

	var spinner *pterm.SpinnerPrinter
	if !useJSON {
		spinner, _ = pterm.DefaultSpinner.Start("Resolving and decoding input files...")
	}

	startTime := time.Now()
	result, err := ingest.Parse(cmd.Context(), cfg, fm, runPath, nil, nil, nil)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if !useJSON {
			pterm.Error.Printf("Ingestion failed: %v\n", err)
		}
		return err
	}
	elapsed := time.Since(startTime)

	report := buildReport(result, elapsed)
	if useJSON {
		return display.OutputJSON(report)
	}

	pterm.Success.Printf("Ingested %d datasets in %s\n", len(report.Datasets), elapsed.Round(time.Millisecond))
	pterm.Println()

	rows := pterm.TableData{{"Dataset", "Path", "Kind", "Rows"}}
	for _, ds := range report.Datasets {
		rowCount := ""
		if ds.Kind == "table" {
			rowCount = fmt.Sprintf("%d", ds.Rows)
		}
		rows = append(rows, []string{ds.Name, ds.Path, ds.Kind, rowCount})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// buildReport summarizes a finished ingestion pass for display
func buildReport(result *ingest.Result, elapsed time.Duration) ingestReport {
	report := ingestReport{
		RunID:   result.RunID,
		Elapsed: elapsed.Round(time.Millisecond).String(),
	}
	for _, name := range result.Store.Names() {
		data, err := result.Store.Get(name)
		if err != nil {
			continue
		}
		summary := datasetSummary{Name: name, Path: result.Resolved[name]}
		switch v := data.(type) {
		case *table.Frame:
			summary.Kind = "table"
			summary.Rows = v.NumRows()
		case *etree.Document:
			summary.Kind = "xml"
		default:
			summary.Kind = "records"
		}
		report.Datasets = append(report.Datasets, summary)
	}
	return report
}
