package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

type TableConfig struct {
	RunWidth       int
	SubjectWidth   int
	PagesWidth     int
	GeneratedWidth int
	LocationWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		RunWidth:       8,
		SubjectWidth:   24,
		PagesWidth:     5,
		GeneratedWidth: 10,
		LocationWidth:  64,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type runTable struct {
	Title string
	Runs  []domain.ReportRun
}

const runsTemplate = `
{{.Title}} ({{len .Runs}})
{{if .Runs}}
{{separator}}
{{formatRow "Run" "Subject" "Pages" "Generated" "Location"}}
{{separator}}
{{range .Runs}}{{formatRow (short .ID) .Subject .Pages (date .GeneratedAt) (location .Location .Filename)}}
{{end}}{{separator}}
{{else}}
No report runs found.
{{end}}`

// HandleRuns prints runs as a table under title.
func (c *Reporter) HandleRuns(title string, runs []domain.ReportRun) error {
	funcMap := template.FuncMap{
		"formatRow": func(id, subject string, pages interface{}, generated, location string) string {
			return fmt.Sprintf("| %-*s | %-*s | %*v | %-*s | %-*s |",
				c.config.RunWidth, id,
				c.config.SubjectWidth, clip(subject, c.config.SubjectWidth),
				c.config.PagesWidth, pages,
				c.config.GeneratedWidth, generated,
				c.config.LocationWidth, clip(location, c.config.LocationWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.RunWidth+2),
				strings.Repeat("-", c.config.SubjectWidth+2),
				strings.Repeat("-", c.config.PagesWidth+2),
				strings.Repeat("-", c.config.GeneratedWidth+2),
				strings.Repeat("-", c.config.LocationWidth+2))
		},
		"short": func(id string) string {
			if id == "" {
				return "-"
			}
			if len(id) > c.config.RunWidth {
				return id[:c.config.RunWidth]
			}
			return id
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format(time.DateOnly)
		},
		"location": func(location, filename string) string {
			if location == "" {
				return filename + " (not saved)"
			}
			return location
		},
	}

	t, err := template.New("runs").Funcs(funcMap).Parse(runsTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, runTable{Title: title, Runs: runs})
}

type themeList struct {
	Themes []string
	Active string
}

const themesTemplate = `
Themes ({{len .Themes}})
{{range .Themes}}{{if eq . $.Active}}* {{else}}  {{end}}{{.}}
{{end}}`

// HandleThemes prints the theme profile names and marks the active one.
func (c *Reporter) HandleThemes(themes []string, active string) error {
	t, err := template.New("themes").Parse(themesTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, themeList{Themes: themes, Active: active})
}

// clip keeps the tail of long values, which is where filenames and paths
// differ.
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width || width < 4 {
		return s
	}
	return "..." + string(r[len(r)-width+3:])
}
