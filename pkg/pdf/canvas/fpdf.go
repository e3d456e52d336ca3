package canvas

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	A4Width  = 210.0
	A4Height = 297.0
)

// glyphFallbacks replaces runes the core PDF fonts cannot encode in cp1252.
var glyphFallbacks = strings.NewReplacer(
	"↑", "^",
	"↓", "v",
	"→", ">",
)

// FPDF is the Canvas backed by github.com/go-pdf/fpdf. Page breaking is left
// entirely to the caller.
type FPDF struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	out []byte
}

var _ Canvas = (*FPDF)(nil)

func NewFPDF() *FPDF {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	return &FPDF{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func FPDFFactory() Canvas {
	return NewFPDF()
}

func (f *FPDF) NewPage() {
	f.pdf.AddPage()
}

func (f *FPDF) SelectPage(n int) error {
	if n < 1 || n > f.pdf.PageCount() {
		return fmt.Errorf("select page %d of %d: %w", n, f.pdf.PageCount(), ErrPageOutOfRange)
	}
	f.pdf.SetPage(n)
	return nil
}

func (f *FPDF) PageCount() int {
	return f.pdf.PageCount()
}

func (f *FPDF) CurrentPage() int {
	return f.pdf.PageNo()
}

func (f *FPDF) PageSize() (float64, float64) {
	return f.pdf.GetPageSize()
}

func (f *FPDF) SetFont(font Font) {
	f.pdf.SetFont(font.Family, font.Style, font.Size)
}

func (f *FPDF) SetTextColor(c Color) {
	f.pdf.SetTextColor(c.R, c.G, c.B)
}

func (f *FPDF) SetFillColor(c Color) {
	f.pdf.SetFillColor(c.R, c.G, c.B)
}

func (f *FPDF) SetDrawColor(c Color) {
	f.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (f *FPDF) SetLineWidth(w float64) {
	f.pdf.SetLineWidth(w)
}

func (f *FPDF) DrawText(x, y float64, text string) {
	f.pdf.Text(x, y, f.encode(text))
}

func (f *FPDF) DrawRect(x, y, w, h float64, style Style) {
	f.pdf.Rect(x, y, w, h, string(style))
}

func (f *FPDF) DrawRoundedRect(x, y, w, h, r float64, style Style) {
	f.pdf.RoundedRect(x, y, w, h, r, "1234", string(style))
}

func (f *FPDF) DrawLine(x1, y1, x2, y2 float64) {
	f.pdf.Line(x1, y1, x2, y2)
}

func (f *FPDF) StringWidth(text string) float64 {
	return f.pdf.GetStringWidth(f.encode(text))
}

func (f *FPDF) MeasureWrappedLines(text string, maxWidth float64) []string {
	return WrapWords(text, maxWidth, f.StringWidth)
}

// WriteTo renders the document on first use; later calls replay the same
// bytes.
func (f *FPDF) WriteTo(w io.Writer) (int64, error) {
	if err := f.render(); err != nil {
		return 0, err
	}
	n, err := w.Write(f.out)
	return int64(n), err
}

func (f *FPDF) Save(path string) error {
	if err := f.render(); err != nil {
		return err
	}
	if err := os.WriteFile(path, f.out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (f *FPDF) render() error {
	if f.out != nil {
		return nil
	}
	if f.pdf.Err() {
		return fmt.Errorf("PDF composition error: %w", f.pdf.Error())
	}
	var buf bytes.Buffer
	if err := f.pdf.Output(&buf); err != nil {
		return fmt.Errorf("PDF output error: %w", err)
	}
	f.out = buf.Bytes()
	return nil
}

func (f *FPDF) encode(text string) string {
	return f.tr(glyphFallbacks.Replace(text))
}
