package report

import (
	"fmt"
	"strings"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
)

const (
	DocumentTitle   = "Comprehensive Wellness Report"
	SummaryTitle    = "Clinician Quick Summary"
	NoDataText      = "No data yet"
	NoRiskFlagsText = "No risk flags identified during this period"
	Disclaimer      = "This report summarises self-reported wellness activity. It is not a medical diagnosis " +
		"and does not replace the judgement of a qualified professional."

	anonymousSubject       = "Anonymous"
	moodHistoryLimit       = 14
	summaryRecommendations = 3
)

// Composer lays a ReportData record out as a quick summary page followed by
// the comprehensive report. It holds no per-document state and can be shared.
type Composer struct {
	product string
	theme   layout.Theme
}

func NewComposer(product string, theme layout.Theme) *Composer {
	return &Composer{product: product, theme: theme}
}

// composition is the state of one Compose call.
type composition struct {
	product string
	cur     *layout.Cursor
	th      layout.Theme
	data    *domain.ReportData
	count   counter
}

type section struct {
	title  string
	render func(*composition)
}

var sections = []section{
	{"Mood Analysis", (*composition).mood},
	{"Activity & Engagement", (*composition).activity},
	{"Journal & Reflection", (*composition).journal},
	{"Wellness Assessments", (*composition).assessments},
	{"Mindfulness & Relaxation Tools", (*composition).mindfulness},
	{"Goals & Achievement", (*composition).goals},
	{"Support & Coaching", (*composition).support},
	{"Risk Assessment & Recommendations", (*composition).risk},
}

// SectionTitles lists the comprehensive report sections in render order.
func SectionTitles() []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = sectionHeading(i, s.title)
	}
	return titles
}

func sectionHeading(i int, title string) string {
	return fmt.Sprintf("%d. %s", i+1, title)
}

// Compose draws the whole document onto cv and then stamps the footers.
func (c *Composer) Compose(cv canvas.Canvas, data *domain.ReportData) error {
	if data == nil {
		return ErrNilReport
	}
	w, h := cv.PageSize()
	if err := c.theme.Validate(w, h); err != nil {
		return err
	}

	comp := &composition{
		product: c.product,
		cur:     layout.NewCursor(cv, c.theme),
		th:      c.theme,
		data:    data,
		count:   newCounter(),
	}
	comp.cur.OnNewPage(comp.header)

	comp.quickSummary()
	comp.comprehensiveHeader()
	for i, s := range sections {
		layout.Heading(comp.cur, sectionHeading(i, s.title))
		s.render(comp)
	}
	comp.closing()

	return StampFooters(cv, c.theme, layout.Footer{
		Title:      DocumentTitle,
		Subject:    comp.subject(),
		Disclaimer: Disclaimer,
	})
}

func (c *composition) subject() string {
	if s := strings.TrimSpace(c.data.Subject); s != "" {
		return s
	}
	return anonymousSubject
}

func (c *composition) header(cur *layout.Cursor) {
	layout.Header{Left: c.product, Right: DocumentTitle}.Draw(cur)
}

func (c *composition) comprehensiveHeader() {
	d := c.data
	c.cur.NewPage()
	layout.Title(c.cur, DocumentTitle, c.th.Colors.Primary)
	layout.KeyValueRow{Pairs: []layout.KeyValuePair{
		{Label: "Prepared for", Value: c.subject()},
		{Label: "Reporting period", Value: FormatPeriod(d.Period)},
		{Label: "Generated", Value: FormatDate(d.GeneratedAt)},
	}}.Draw(c.cur)
	layout.Paragraph(c.cur, fmt.Sprintf(
		"This report brings together mood tracking, activity, journaling, assessments, mindfulness practice, "+
			"goals, and support usage for %s across %s. Each section below is derived only from the activity "+
			"recorded during the reporting period.", c.subject(), c.count.Unit(d.Period.Days(), "day", "days")))
	layout.Rule(c.cur)
}

func (c *composition) closing() {
	layout.Subheading(c.cur, "Closing Notes")
	layout.Paragraph(c.cur, fmt.Sprintf(
		"Report generated by %s on %s. Share it only with people involved in %s's care.",
		c.product, FormatTimestamp(c.data.GeneratedAt), c.subject()))
}
