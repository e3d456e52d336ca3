package layout

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
)

// Footer offsets, in mm below the top of the bottom margin.
const (
	footerDisclaimerLines = 2
	footerRule            = 4
	footerCaption         = 5
	footerLeading         = 3.5
	footerDescent         = 1.5
)

// FooterHeight is the strip the footer needs below the content area.
func FooterHeight() float64 {
	return footerRule + 2*footerCaption + (footerDisclaimerLines-1)*footerLeading + footerDescent
}

// Header is the running header drawn on every page above the content area.
type Header struct {
	Left  string
	Right string
}

func (h Header) Draw(cur *Cursor) {
	th := cur.theme
	cv := cur.canvas
	w, _ := cv.PageSize()

	cv.SetFillColor(th.Colors.Primary)
	cv.DrawRect(0, 0, w, 3, canvas.StyleFill)

	textY := th.HeaderHeight - 4
	cv.SetFont(th.Fonts.Small)
	cv.SetTextColor(th.Colors.Primary)
	cv.DrawText(cur.Left(), textY, h.Left)
	cv.SetTextColor(th.Colors.Muted)
	RightText(cv, cur.Right(), textY, h.Right)

	cv.SetDrawColor(th.Colors.Border)
	cv.SetLineWidth(0.2)
	cv.DrawLine(cur.Left(), th.HeaderHeight-1, cur.Right(), th.HeaderHeight-1)
}

// Footer is stamped on every page once the page count is final. It lives in
// the bottom strip reserved by Theme.MarginBottom.
type Footer struct {
	Title      string
	Subject    string
	Disclaimer string
}

func PageLabel(page, total int) string {
	return fmt.Sprintf("Page %d of %d", page, total)
}

func (f Footer) Draw(cv canvas.Canvas, th Theme, page, total int) {
	w, h := cv.PageSize()
	left, right := th.MarginLeft, w-th.MarginRight
	top := h - th.MarginBottom + footerRule

	cv.SetDrawColor(th.Colors.Border)
	cv.SetLineWidth(0.3)
	cv.DrawLine(left, top, right, top)

	lineY := top + footerCaption
	cv.SetFont(th.Fonts.Footer)
	cv.SetTextColor(th.Colors.Muted)
	pageLabel := PageLabel(page, total)
	caption := f.Title
	if f.Subject != "" {
		caption = fmt.Sprintf("%s | %s", f.Title, f.Subject)
	}
	cv.DrawText(left, lineY, FitText(cv, caption, right-left-cv.StringWidth(pageLabel)-6))
	RightText(cv, right, lineY, pageLabel)

	lines := cv.MeasureWrappedLines(f.Disclaimer, right-left)
	if len(lines) > footerDisclaimerLines {
		lines = lines[:footerDisclaimerLines]
	}
	for i, line := range lines {
		CenteredText(cv, left, right-left, lineY+footerCaption+float64(i)*footerLeading, line)
	}
}
