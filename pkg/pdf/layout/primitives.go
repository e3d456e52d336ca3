package layout

import (
	"math"
	"strings"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
)

const (
	bulletMarker = "•"
	ellipsis     = "..."
)

// WrapLines wraps text in the given font. The font is applied to the canvas
// first because measurement always uses the current font.
func WrapLines(cur *Cursor, font canvas.Font, text string, width float64) []string {
	cur.canvas.SetFont(font)
	return cur.canvas.MeasureWrappedLines(text, width)
}

// Rule draws a divider at the cursor and advances by the rule gap.
func Rule(cur *Cursor) {
	th := cur.theme
	cur.EnsureSpace(th.RuleGap)

	cv := cur.canvas
	cv.SetDrawColor(th.Colors.Border)
	cv.SetLineWidth(0.3)
	cv.DrawLine(cur.Left(), cur.y, cur.Right(), cur.y)
	cur.Advance(th.RuleGap)
}

// Heading draws a section title followed by a rule. It keeps room for one
// tile row below so a heading never ends up alone at the bottom of a page.
func Heading(cur *Cursor, text string) {
	th := cur.theme
	cur.EnsureSpace(th.HeadingHeight + th.RuleGap + th.TileHeight + th.RowGap)

	cv := cur.canvas
	cv.SetFont(th.Fonts.Heading)
	cv.SetTextColor(th.Colors.Primary)
	cv.DrawText(cur.Left(), baseline(cur.y, th.HeadingHeight), text)
	cur.Advance(th.HeadingHeight)
	Rule(cur)
}

// Subheading draws one bold line and keeps it together with the line after.
func Subheading(cur *Cursor, text string) {
	th := cur.theme
	h := th.LineHeight + th.ItemGap
	cur.EnsureSpace(2 * h)

	cv := cur.canvas
	cv.SetFont(th.Fonts.Bold)
	cv.SetTextColor(th.Colors.Text)
	cv.DrawText(cur.Left(), baseline(cur.y, th.LineHeight), text)
	cur.Advance(h)
}

// Title draws a large centred document title.
func Title(cur *Cursor, text string, color canvas.Color) {
	th := cur.theme
	h := th.TitleHeight + th.ParagraphGap
	cur.EnsureSpace(h)

	cv := cur.canvas
	cv.SetFont(th.Fonts.Title)
	cv.SetTextColor(color)
	CenteredText(cv, cur.Left(), cur.ContentWidth(), baseline(cur.y, th.TitleHeight), text)
	cur.Advance(h)
}

// StatTile draws a boxed value with a label underneath. It does not move the
// cursor; rows of tiles advance once.
func StatTile(cur *Cursor, tile Tile, x, y, w float64) {
	th := cur.theme
	cv := cur.canvas

	cv.SetFillColor(th.Colors.TileFill)
	cv.SetDrawColor(th.Colors.Border)
	cv.SetLineWidth(0.2)
	cv.DrawRoundedRect(x, y, w, th.TileHeight, th.CornerRadius, canvas.StyleFillDraw)

	valueColor := tile.Color
	if valueColor.IsZero() {
		valueColor = th.Colors.Primary
	}
	cv.SetFont(th.Fonts.TileValue)
	cv.SetTextColor(valueColor)
	CenteredText(cv, x, w, y+th.TileHeight*0.52, FitText(cv, tile.Value, w-2))

	cv.SetFont(th.Fonts.TileLabel)
	cv.SetTextColor(th.Colors.Muted)
	CenteredText(cv, x, w, y+th.TileHeight*0.82, FitText(cv, tile.Label, w-2))
}

// KeyValue draws a small label above a bold value at an explicit position.
func KeyValue(cur *Cursor, label, value string, x, y float64) {
	keyValue(cur, label, value, x, y, 0)
}

// keyValue clips label and value to maxWidth when it is positive.
func keyValue(cur *Cursor, label, value string, x, y, maxWidth float64) {
	th := cur.theme
	cv := cur.canvas

	cv.SetFont(th.Fonts.Small)
	cv.SetTextColor(th.Colors.Muted)
	if maxWidth > 0 {
		label = FitText(cv, label, maxWidth)
	}
	cv.DrawText(x, y+3.2, label)

	cv.SetFont(th.Fonts.Bold)
	cv.SetTextColor(th.Colors.Text)
	if maxWidth > 0 {
		value = FitText(cv, value, maxWidth)
	}
	cv.DrawText(x, y+8.2, value)
}

// BulletHeight is the height Bullet will consume for text, without drawing.
func BulletHeight(cur *Cursor, text string, indent, rightInset float64) float64 {
	return bulletHeight(cur, text, indent, rightInset, 0)
}

func bulletHeight(cur *Cursor, text string, indent, rightInset float64, maxLines int) float64 {
	lines := bulletLines(cur, text, indent, rightInset, maxLines)
	return float64(len(lines))*cur.theme.LineHeight + cur.theme.ItemGap
}

func bulletTextWidth(cur *Cursor, indent, rightInset float64) float64 {
	return cur.ContentWidth() - indent - rightInset - cur.theme.BulletMarker
}

// bulletLines wraps one item and clips it to maxLines, or to what fits on an
// empty page when maxLines is not positive.
func bulletLines(cur *Cursor, text string, indent, rightInset float64, maxLines int) []string {
	width := bulletTextWidth(cur, indent, rightInset)
	lines := fitLines(cur.canvas, WrapLines(cur, cur.theme.Fonts.Body, text, width), width)
	if fit := LinesFitting(cur, cur.Usable(), cur.theme.ItemGap); maxLines <= 0 || maxLines > fit {
		maxLines = fit
	}
	return clipLines(cur.canvas, lines, maxLines, width)
}

// LinesFitting is the number of body lines that fit in h together with a
// trailing gap. It is never less than one.
func LinesFitting(cur *Cursor, h, gap float64) int {
	n := int(math.Floor((h - gap + epsilon) / cur.theme.LineHeight))
	if n < 1 {
		return 1
	}
	return n
}

// Bullet draws one wrapped list item prefixed with a marker.
func Bullet(cur *Cursor, text string, indent float64) {
	BulletInset(cur, text, indent, 0)
}

func BulletInset(cur *Cursor, text string, indent, rightInset float64) {
	bulletInset(cur, text, indent, rightInset, 0)
}

func bulletInset(cur *Cursor, text string, indent, rightInset float64, maxLines int) {
	th := cur.theme
	lines := bulletLines(cur, text, indent, rightInset, maxLines)
	h := float64(len(lines))*th.LineHeight + th.ItemGap
	cur.EnsureSpace(h)

	cv := cur.canvas
	cv.SetFont(th.Fonts.Body)
	cv.SetTextColor(th.Colors.Text)
	x := cur.Left() + indent
	for i, line := range lines {
		top := cur.y + float64(i)*th.LineHeight
		if i == 0 {
			cv.DrawText(x, baseline(top, th.LineHeight), bulletMarker)
		}
		cv.DrawText(x+th.BulletMarker, baseline(top, th.LineHeight), line)
	}
	cur.Advance(h)
}

// Paragraph draws wrapped body text across the full content width.
func Paragraph(cur *Cursor, text string) {
	paragraph(cur, text, cur.theme.Fonts.Body, cur.theme.Colors.Text)
}

// Placeholder marks a section that has nothing to show yet.
func Placeholder(cur *Cursor, text string) {
	paragraph(cur, text, cur.theme.Fonts.Italic, cur.theme.Colors.Muted)
}

// paragraph keeps a paragraph on one page when it fits there and otherwise
// continues it line by line on the following pages.
func paragraph(cur *Cursor, text string, font canvas.Font, color canvas.Color) {
	th := cur.theme
	width := cur.ContentWidth()
	lines := fitLines(cur.canvas, WrapLines(cur, font, text, width), width)
	if h := float64(len(lines))*th.LineHeight + th.ParagraphGap; h <= cur.Usable() {
		cur.EnsureSpace(h)
	}

	cv := cur.canvas
	for i, line := range lines {
		need := th.LineHeight
		if i == len(lines)-1 {
			need += th.ParagraphGap
		}
		cur.EnsureSpace(need)
		cv.SetFont(font)
		cv.SetTextColor(color)
		cv.DrawText(cur.Left(), baseline(cur.y, th.LineHeight), line)
		cur.Advance(th.LineHeight)
	}
	cur.EnsureSpace(th.ParagraphGap)
	cur.Advance(th.ParagraphGap)
}

// fitLines shortens lines wider than width, which only happens for a single
// word longer than the line.
func fitLines(cv canvas.Canvas, lines []string, width float64) []string {
	for i, line := range lines {
		lines[i] = FitText(cv, line, width)
	}
	return lines
}

// clipLines keeps the first n lines and ends the last kept one with an
// ellipsis.
func clipLines(cv canvas.Canvas, lines []string, n int, width float64) []string {
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	out[n-1] = withEllipsis(cv, out[n-1], width)
	return out
}

// CenteredText draws text horizontally centred inside [x, x+w] on baseline y.
func CenteredText(cv canvas.Canvas, x, w, y float64, text string) {
	cv.DrawText(x+(w-cv.StringWidth(text))/2, y, text)
}

// RightText draws text so that it ends at x.
func RightText(cv canvas.Canvas, x, y float64, text string) {
	cv.DrawText(x-cv.StringWidth(text), y, text)
}

// FitText shortens text with an ellipsis until it fits maxWidth in the
// current font.
func FitText(cv canvas.Canvas, text string, maxWidth float64) string {
	if cv.StringWidth(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	return withEllipsis(cv, string(runes[:len(runes)-1]), maxWidth)
}

// withEllipsis appends an ellipsis to the longest prefix of text that still
// fits maxWidth with it.
func withEllipsis(cv canvas.Canvas, text string, maxWidth float64) string {
	runes := []rune(text)
	for n := len(runes); n >= 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if cv.StringWidth(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
