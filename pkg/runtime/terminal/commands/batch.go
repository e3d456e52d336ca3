package commands

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type BatchCmd struct {
	inputDir string
	outDir   string
	parallel int
	env      *Env
	reporter *export.Reporter
}

func NewBatchCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	bc := &BatchCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render a report for every JSON record in a directory",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.inputDir, "input-dir", "", "Directory of report data JSON files")
	cmd.Flags().StringVar(&bc.outDir, "out", "", "Directory to write the PDFs into (default from settings)")
	cmd.Flags().IntVar(&bc.parallel, "parallel", runtime.NumCPU(), "Maximum number of reports rendered at once")

	_ = cmd.MarkFlagRequired("input-dir")

	return cmd
}

func (bc *BatchCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	if bc.parallel < 1 {
		return fmt.Errorf("--parallel must be at least 1, got %d", bc.parallel)
	}

	// Glob returns matches in lexical order.
	files, err := filepath.Glob(filepath.Join(bc.inputDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", bc.inputDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json files found in %s", bc.inputDir)
	}

	records := make([]*domain.ReportData, 0, len(files))
	for _, f := range files {
		data, err := bc.env.readReport(cmd.InOrStdin(), f)
		if err != nil {
			return err
		}
		records = append(records, data)
	}

	gen, err := bc.env.Generator()
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	dir := bc.outDir
	if dir == "" {
		dir = bc.env.Settings().OutputDir
	}
	results, err := gen.GenerateBatch(ctx, records, dir, bc.parallel)
	if err != nil {
		return fmt.Errorf("batch generation failed: %w", err)
	}

	runs := make([]domain.ReportRun, 0, len(results))
	for _, res := range results {
		runs = append(runs, res.Run())
	}
	runs, err = bc.env.recordAll(ctx, runs)
	if err != nil {
		logger.Warn().Err(err).Int("reports", len(runs)).Msg("reports written but not recorded")
	}

	return bc.reporter.HandleRuns("Generated reports", runs)
}
