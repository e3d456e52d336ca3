package canvas

import (
	"errors"
	"io"
)

var ErrPageOutOfRange = errors.New("page index out of range")

// Style selects how a closed shape is painted.
type Style string

const (
	StyleFill     Style = "F"
	StyleDraw     Style = "D"
	StyleFillDraw Style = "FD"
)

type Color struct {
	R, G, B int
}

func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// IsZero reports whether the colour was left unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Font describes the text state. Style is any combination of "B" and "I".
type Font struct {
	Family string
	Style  string
	Size   float64 // points
}

// Canvas owns physical pages and absolute-coordinate drawing. Coordinates are
// millimetres from the top-left corner of the page; text is placed on its
// baseline. Pages are 1-indexed and every draw call targets the currently
// selected page.
type Canvas interface {
	NewPage()
	SelectPage(n int) error
	PageCount() int
	CurrentPage() int
	PageSize() (w, h float64)

	SetFont(f Font)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)

	DrawText(x, y float64, text string)
	DrawRect(x, y, w, h float64, style Style)
	DrawRoundedRect(x, y, w, h, r float64, style Style)
	DrawLine(x1, y1, x2, y2 float64)

	// StringWidth measures text in the current font.
	StringWidth(text string) float64
	// MeasureWrappedLines splits text into lines no wider than maxWidth in the
	// current font, breaking on whitespace only.
	MeasureWrappedLines(text string, maxWidth float64) []string

	WriteTo(w io.Writer) (int64, error)
	Save(path string) error
}

// Factory builds a fresh canvas for one generation call.
type Factory func() Canvas
