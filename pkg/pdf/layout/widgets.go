package layout

import (
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
)

// Widget is a block whose height can be computed without drawing it. Measure
// returns the full advance, trailing gap included, and Draw consumes exactly
// that much.
type Widget interface {
	Measure(cur *Cursor) float64
	Draw(cur *Cursor)
}

var (
	_ Widget = TileRow{}
	_ Widget = BulletList{}
	_ Widget = Callout{}
	_ Widget = Banner{}
	_ Widget = KeyValueRow{}
)

type Tile struct {
	Label string
	Value string
	Color canvas.Color // value tint, primary when unset
}

// TileRow places N tiles of equal width side by side.
type TileRow struct {
	Tiles []Tile
}

func (r TileRow) TileWidth(contentWidth, gap float64) float64 {
	n := float64(len(r.Tiles))
	if n == 0 {
		return 0
	}
	return (contentWidth - (n-1)*gap) / n
}

func (r TileRow) Measure(cur *Cursor) float64 {
	if len(r.Tiles) == 0 {
		return 0
	}
	return cur.theme.TileHeight + cur.theme.RowGap
}

func (r TileRow) Draw(cur *Cursor) {
	if len(r.Tiles) == 0 {
		return
	}
	th := cur.theme
	h := r.Measure(cur)
	cur.EnsureSpace(h)

	w := r.TileWidth(cur.ContentWidth(), th.TileGap)
	y := cur.y
	for i, tile := range r.Tiles {
		StatTile(cur, tile, cur.Left()+float64(i)*(w+th.TileGap), y, w)
	}
	cur.Advance(h)
}

type KeyValuePair struct {
	Label string
	Value string
}

// KeyValueRow lays label/value pairs out in equal columns on one line.
type KeyValueRow struct {
	Pairs []KeyValuePair
}

func (r KeyValueRow) Measure(cur *Cursor) float64 {
	if len(r.Pairs) == 0 {
		return 0
	}
	return cur.theme.KeyValueHeight + cur.theme.ParagraphGap
}

func (r KeyValueRow) Draw(cur *Cursor) {
	if len(r.Pairs) == 0 {
		return
	}
	h := r.Measure(cur)
	cur.EnsureSpace(h)

	col := cur.ContentWidth() / float64(len(r.Pairs))
	y := cur.y
	for i, p := range r.Pairs {
		keyValue(cur, p.Label, p.Value, cur.Left()+float64(i)*col, y, col-2)
	}
	cur.Advance(h)
}

// BulletList draws items one bullet at a time; the list may continue on the
// next page but a single item never splits. An item longer than MaxLines
// lines, or than one page when MaxLines is zero, is cut with an ellipsis.
type BulletList struct {
	Items      []string
	Indent     float64
	RightInset float64
	MaxLines   int
}

func (l BulletList) Measure(cur *Cursor) float64 {
	var h float64
	for _, item := range l.Items {
		h += bulletHeight(cur, item, l.Indent, l.RightInset, l.MaxLines)
	}
	return h
}

func (l BulletList) Draw(cur *Cursor) {
	for _, item := range l.Items {
		bulletInset(cur, item, l.Indent, l.RightInset, l.MaxLines)
	}
}

// Callout is a bordered box around a bullet list. The box is sized from the
// measured list before anything is drawn.
type Callout struct {
	Title  string
	Items  []string
	Fill   canvas.Color
	Border canvas.Color
	Accent canvas.Color
}

func (c Callout) list(cur *Cursor) BulletList {
	pad := cur.theme.CalloutPadding
	return BulletList{Items: c.Items, Indent: pad, RightInset: pad, MaxLines: c.itemLines(cur)}
}

// itemLines caps one item so a box holding only that item fits on a page.
func (c Callout) itemLines(cur *Cursor) int {
	th := cur.theme
	room := cur.Usable() - th.RowGap - 2*th.CalloutPadding - c.titleHeight(cur)
	return LinesFitting(cur, room, th.ItemGap)
}

func (c Callout) titleHeight(cur *Cursor) float64 {
	if c.Title == "" {
		return 0
	}
	return cur.theme.CalloutTitle
}

// BoxHeight is the height of the drawn border.
func (c Callout) BoxHeight(cur *Cursor) float64 {
	return 2*cur.theme.CalloutPadding + c.titleHeight(cur) + c.list(cur).Measure(cur)
}

func (c Callout) Measure(cur *Cursor) float64 {
	return c.BoxHeight(cur) + cur.theme.RowGap
}

func (c Callout) Draw(cur *Cursor) {
	th := cur.theme
	total := c.Measure(cur)
	cur.EnsureSpace(total)

	boxHeight := total - th.RowGap
	cv := cur.canvas
	cv.SetFillColor(c.Fill)
	cv.SetDrawColor(c.Border)
	cv.SetLineWidth(0.6)
	cv.DrawRoundedRect(cur.Left(), cur.y, cur.ContentWidth(), boxHeight, th.CornerRadius, canvas.StyleFillDraw)

	cur.Advance(th.CalloutPadding)
	if title := c.titleHeight(cur); title > 0 {
		cv.SetFont(th.Fonts.Bold)
		cv.SetTextColor(c.Accent)
		cv.DrawText(cur.Left()+th.CalloutPadding, baseline(cur.y, title), c.Title)
		cur.Advance(title)
	}
	c.list(cur).Draw(cur)
	cur.Advance(th.CalloutPadding + th.RowGap)
}

// Split breaks a callout whose box would not fit on an empty page into
// consecutive callouts that each do. Items are clipped to what one box can
// hold, so a single item never needs splitting. Every part is still measured and drawn
// as a whole; only the first keeps the original title unchanged.
func (c Callout) Split(cur *Cursor) []Callout {
	th := cur.theme
	limit := cur.Usable() - th.RowGap
	base := 2*th.CalloutPadding + c.titleHeight(cur)
	if c.Measure(cur) <= cur.Usable() || len(c.Items) < 2 {
		return []Callout{c}
	}
	maxLines := c.itemLines(cur)

	var parts []Callout
	part := c
	part.Items = nil
	h := base
	for _, item := range c.Items {
		ih := bulletHeight(cur, item, th.CalloutPadding, th.CalloutPadding, maxLines)
		if len(part.Items) > 0 && h+ih > limit {
			parts = append(parts, part)
			part = c
			part.Items = nil
			if c.Title != "" {
				part.Title = c.Title + " (continued)"
			}
			h = base
		}
		part.Items = append(part.Items, item)
		h += ih
	}
	return append(parts, part)
}

// Banner is a fixed-height filled strip with one centred line of text.
type Banner struct {
	Text      string
	Fill      canvas.Color
	TextColor canvas.Color
}

func (b Banner) Measure(cur *Cursor) float64 {
	return cur.theme.BannerHeight + cur.theme.RowGap
}

func (b Banner) Draw(cur *Cursor) {
	th := cur.theme
	h := b.Measure(cur)
	cur.EnsureSpace(h)

	cv := cur.canvas
	cv.SetFillColor(b.Fill)
	cv.DrawRoundedRect(cur.Left(), cur.y, cur.ContentWidth(), th.BannerHeight, th.CornerRadius, canvas.StyleFill)
	cv.SetFont(th.Fonts.Bold)
	cv.SetTextColor(b.TextColor)
	text := FitText(cv, b.Text, cur.ContentWidth()-2*th.CalloutPadding)
	CenteredText(cv, cur.Left(), cur.ContentWidth(), cur.y+th.BannerHeight*0.6, text)
	cur.Advance(h)
}
