package commands

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/models/api"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/observability"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/de-tools/wellness-atlas/pkg/services/history"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb"
	historystore "github.com/de-tools/wellness-atlas/pkg/store/duckdb/history"
	"github.com/de-tools/wellness-atlas/pkg/store/objectstore"
	"github.com/spf13/cobra"
)

var ErrHistoryDisabled = errors.New("run history is disabled (history.db_path is empty)")

type Publisher interface {
	Publish(ctx context.Context, filename string, data []byte) (string, error)
}

// Env holds what the commands share: the persistent flags, the loaded
// settings and everything opened from them.
type Env struct {
	ConfigPath string
	ThemeName  string
	ThemesFile string

	LogOutput io.Writer
	Backend   canvas.Factory
	Publisher Publisher
	Now       func() time.Time

	settings *config.Config
	history  history.Service
	db       *sql.DB
	closers  []io.Closer
}

// Setup loads the settings, applies the flag overrides and puts the logger
// into the command context.
func (e *Env) Setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(e.ConfigPath)
	if err != nil {
		return err
	}
	if e.ThemeName != "" {
		cfg.Theme = e.ThemeName
	}
	if e.ThemesFile != "" {
		cfg.ThemesFile = e.ThemesFile
	}
	e.settings = cfg

	out := e.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger, closer := observability.NewLogger(cfg.Log, out)
	e.closers = append(e.closers, closer)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func (e *Env) Settings() *config.Config {
	return e.settings
}

func (e *Env) Generator() (*report.Generator, error) {
	theme, err := config.ResolveTheme(e.settings.ThemesFile, e.settings.Theme)
	if err != nil {
		return nil, err
	}
	return report.NewGenerator(report.Options{
		Product: e.settings.Product,
		Theme:   &theme,
		Backend: e.Backend,
	})
}

// History opens the run history on first use.
func (e *Env) History() (history.Service, error) {
	if e.history != nil {
		return e.history, nil
	}
	if e.settings.History.DbPath == "" {
		return nil, ErrHistoryDisabled
	}
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: e.settings.History.DbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	e.closers = append(e.closers, db)
	e.db = db

	st, err := historystore.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create history store: %w", err)
	}
	e.history = history.NewService(st)
	return e.history, nil
}

func (e *Env) publisher(ctx context.Context) (Publisher, error) {
	if e.Publisher != nil {
		return e.Publisher, nil
	}
	if e.settings.Storage.Bucket == "" {
		return nil, fmt.Errorf("publishing requires storage.bucket to be set")
	}
	return objectstore.NewPublisherFromConfig(ctx, e.settings.Storage)
}

// Close releases everything Setup and History opened, newest first.
func (e *Env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	e.closers = nil
	e.history = nil
	e.db = nil
	return errors.Join(errs...)
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

// readReport decodes one ReportData JSON document. A path of "-" reads stdin.
func (e *Env) readReport(stdin io.Reader, path string) (*domain.ReportData, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var in api.ReportData
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	data := adapters.MapReportDataApiToDomain(in, e.now())
	return &data, nil
}

// record stores run when history is enabled. A disabled history is not an
// error; the unrecorded run is returned unchanged.
func (e *Env) record(ctx context.Context, run domain.ReportRun) (domain.ReportRun, error) {
	svc, err := e.History()
	if errors.Is(err, ErrHistoryDisabled) {
		return run, nil
	}
	if err != nil {
		return run, err
	}
	return svc.Record(ctx, run)
}

// recordAll stores runs in one transaction, so either every run is recorded
// or none is. On failure the runs are returned unrecorded.
func (e *Env) recordAll(ctx context.Context, runs []domain.ReportRun) ([]domain.ReportRun, error) {
	svc, err := e.History()
	if errors.Is(err, ErrHistoryDisabled) {
		return runs, nil
	}
	if err != nil {
		return runs, err
	}

	recorded := make([]domain.ReportRun, 0, len(runs))
	err = duckdb.InTransaction(ctx, e.db, func(ctx context.Context) error {
		for _, run := range runs {
			stored, err := svc.Record(ctx, run)
			if err != nil {
				return fmt.Errorf("%s: %w", run.Filename, err)
			}
			recorded = append(recorded, stored)
		}
		return nil
	})
	if err != nil {
		return runs, err
	}
	return recorded, nil
}

// themes lists the profiles of the configured themes file. Without one only
// the built-in default exists.
func (e *Env) themes() ([]string, error) {
	if e.settings.ThemesFile == "" {
		return []string{config.DefaultThemeName}, nil
	}
	registry, err := config.NewThemeRegistry(e.settings.ThemesFile)
	if err != nil {
		return nil, err
	}
	return registry.GetThemes(), nil
}
