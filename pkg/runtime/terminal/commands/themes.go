package commands

import (
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ThemesCmd struct {
	env      *Env
	reporter *export.Reporter
}

func NewThemesCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	tc := &ThemesCmd{env: env, reporter: reporter}
	return &cobra.Command{
		Use:   "themes",
		Short: "List the theme profiles available to --theme",
		RunE:  tc.run,
	}
}

func (tc *ThemesCmd) run(cmd *cobra.Command, args []string) error {
	names, err := tc.env.themes()
	if err != nil {
		return err
	}
	return tc.reporter.HandleThemes(names, tc.env.Settings().Theme)
}
