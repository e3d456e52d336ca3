package canvas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

type OpKind string

const (
	OpText        OpKind = "text"
	OpRect        OpKind = "rect"
	OpRoundedRect OpKind = "rounded_rect"
	OpLine        OpKind = "line"
)

// Op is one recorded draw call together with the state it was issued in.
type Op struct {
	Kind  OpKind  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	Text  string  `json:"text,omitempty"`
	Font  Font    `json:"font"`
	Color Color   `json:"color"` // text colour for text, fill colour for shapes
	Style Style   `json:"style,omitempty"`
}

// glyphFactor approximates the advance width of an average Helvetica glyph
// in millimetres per point of font size.
const glyphFactor = 0.18

// Recorder is an in-memory Canvas that keeps every draw call. Its width
// metric is deterministic, which makes layout fully reproducible.
type Recorder struct {
	width, height float64
	pages         [][]Op
	current       int

	font      Font
	textColor Color
	fillColor Color
	drawColor Color
	lineWidth float64
}

var _ Canvas = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return NewRecorderSize(A4Width, A4Height)
}

func NewRecorderSize(width, height float64) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		font:      Font{Family: "Helvetica", Size: 10},
		lineWidth: 0.2,
	}
}

func RecorderFactory() Canvas {
	return NewRecorder()
}

func (r *Recorder) NewPage() {
	r.pages = append(r.pages, nil)
	r.current = len(r.pages)
}

func (r *Recorder) SelectPage(n int) error {
	if n < 1 || n > len(r.pages) {
		return fmt.Errorf("select page %d of %d: %w", n, len(r.pages), ErrPageOutOfRange)
	}
	r.current = n
	return nil
}

func (r *Recorder) PageCount() int { return len(r.pages) }
func (r *Recorder) CurrentPage() int { return r.current }

func (r *Recorder) PageSize() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) SetFont(f Font) { r.font = f }
func (r *Recorder) SetTextColor(c Color) { r.textColor = c }
func (r *Recorder) SetFillColor(c Color) { r.fillColor = c }
func (r *Recorder) SetDrawColor(c Color) { r.drawColor = c }
func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }
func (r *Recorder) Font() Font { return r.font }
func (r *Recorder) DrawColor() Color { return r.drawColor }
func (r *Recorder) LineWidth() float64 { return r.lineWidth }
func (r *Recorder) Pages() int { return len(r.pages) }
func (r *Recorder) Ops(page int) []Op { return r.pages[page-1] }

func (r *Recorder) DrawText(x, y float64, text string) {
	r.record(Op{Kind: OpText, X: x, Y: y, Text: text, Font: r.font, Color: r.textColor})
}

func (r *Recorder) DrawRect(x, y, w, h float64, style Style) {
	r.record(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Style: style, Color: r.fillColor})
}

func (r *Recorder) DrawRoundedRect(x, y, w, h, _ float64, style Style) {
	r.record(Op{Kind: OpRoundedRect, X: x, Y: y, W: w, H: h, Style: style, Color: r.fillColor})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: r.drawColor})
}

func (r *Recorder) StringWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * r.font.Size * glyphFactor
}

func (r *Recorder) MeasureWrappedLines(text string, maxWidth float64) []string {
	return WrapWords(text, maxWidth, r.StringWidth)
}

// Texts returns the text strings drawn on a page in draw order.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.pages[page-1] {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) AllTexts() []string {
	var out []string
	for i := range r.pages {
		out = append(out, r.Texts(i+1)...)
	}
	return out
}

func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Pages  [][]Op  `json:"pages"`
	}{r.width, r.height, r.pages}, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode recorded pages: %w", err)
	}
	n, err := w.Write(data)
	return int64(n), err
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Recorder) record(op Op) {
	if r.current == 0 {
		panic("canvas: draw call before the first page")
	}
	r.pages[r.current-1] = append(r.pages[r.current-1], op)
}
