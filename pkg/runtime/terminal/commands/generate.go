package commands

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	input    string
	outDir   string
	publish  bool
	dryRun   bool
	env      *Env
	reporter *export.Reporter
}

func NewGenerateCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	gc := &GenerateCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one comprehensive report from a JSON record",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.input, "input", "", "Path to the report data JSON file (- for stdin)")
	cmd.Flags().StringVar(&gc.outDir, "out", "", "Directory to write the PDF into (default from settings)")
	cmd.Flags().BoolVar(&gc.publish, "publish", false, "Upload the PDF to the configured S3 bucket")
	cmd.Flags().BoolVar(&gc.dryRun, "dry-run", false, "Lay the report out without writing it anywhere")

	_ = cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "publish")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	data, err := gc.env.readReport(cmd.InOrStdin(), gc.input)
	if err != nil {
		return err
	}
	gen, err := gc.env.Generator()
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	doc, err := gen.Generate(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if gc.dryRun {
		return gc.reporter.HandleRuns("Dry run", []domain.ReportRun{doc.Run("")})
	}

	dir := gc.outDir
	if dir == "" {
		dir = gc.env.Settings().OutputDir
	}
	location, err := doc.Save(dir)
	if err != nil {
		return err
	}

	if gc.publish {
		pub, err := gc.env.publisher(ctx)
		if err != nil {
			return err
		}
		body, err := doc.Bytes()
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		location, err = pub.Publish(ctx, doc.Filename, body)
		if err != nil {
			return err
		}
	}

	run, err := gc.env.record(ctx, doc.Run(location))
	if err != nil {
		logger.Warn().Err(err).Str("filename", doc.Filename).Msg("report written but not recorded")
	}

	return gc.reporter.HandleRuns("Generated reports", []domain.ReportRun{run})
}
