package commands

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/export"
	historystore "github.com/de-tools/wellness-atlas/pkg/store/duckdb/history"
	"github.com/spf13/cobra"
)

type HistoryCmd struct {
	subject  string
	limit    int
	env      *Env
	reporter *export.Reporter
}

func NewHistoryCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	hc := &HistoryCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated reports",
		RunE:  hc.run,
	}

	cmd.Flags().StringVar(&hc.subject, "subject", "", "Only show runs for this subject")
	cmd.Flags().IntVar(&hc.limit, "limit", historystore.DefaultLimit, "Maximum number of runs to show")

	return cmd
}

func (hc *HistoryCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if hc.limit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", hc.limit)
	}
	svc, err := hc.env.History()
	if err != nil {
		return err
	}
	runs, err := svc.List(ctx, domain.RunFilter{Subject: hc.subject, Limit: hc.limit})
	if err != nil {
		return err
	}

	title := "Report history"
	if hc.subject != "" {
		title += " for " + hc.subject
	}
	return hc.reporter.HandleRuns(title, runs)
}
