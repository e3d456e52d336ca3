package layout

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
)

const epsilon = 1e-6

// Cursor is the vertical write position inside the content area of the
// current page. It is owned by a single generation call.
type Cursor struct {
	canvas   canvas.Canvas
	theme    Theme
	y        float64
	decorate func(*Cursor)
}

func NewCursor(c canvas.Canvas, theme Theme) *Cursor {
	return &Cursor{
		canvas: c,
		theme:  theme,
		y:      theme.ContentTop,
	}
}

// OnNewPage registers a decorator run on every page the cursor opens. It
// draws at absolute positions above Top and cannot move the cursor.
func (c *Cursor) OnNewPage(fn func(*Cursor)) {
	c.decorate = fn
}

func (c *Cursor) Canvas() canvas.Canvas { return c.canvas }
func (c *Cursor) Theme() Theme { return c.theme }
func (c *Cursor) Y() float64 { return c.y }
func (c *Cursor) Top() float64 { return c.theme.ContentTop }
func (c *Cursor) Left() float64 { return c.theme.MarginLeft }

func (c *Cursor) Right() float64 {
	w, _ := c.canvas.PageSize()
	return w - c.theme.MarginRight
}

func (c *Cursor) ContentWidth() float64 {
	return c.Right() - c.Left()
}

// Bottom is the lowest y any body content may reach.
func (c *Cursor) Bottom() float64 {
	_, h := c.canvas.PageSize()
	return h - c.theme.MarginBottom
}

func (c *Cursor) Usable() float64 {
	return c.Bottom() - c.Top()
}

func (c *Cursor) Remaining() float64 {
	return c.Bottom() - c.y
}

// NewPage opens a page and resets the cursor to the top of the content area.
func (c *Cursor) NewPage() {
	c.canvas.NewPage()
	c.y = c.Top()
	if c.decorate != nil {
		c.decorate(c)
		c.y = c.Top()
	}
}

// EnsureSpace opens a new page unless the next h millimetres fit below the
// cursor. A block taller than a whole page can never fit and is a layout bug.
func (c *Cursor) EnsureSpace(h float64) {
	if h > c.Usable()+epsilon {
		panic(fmt.Sprintf("layout: block of %.2fmm exceeds usable page height %.2fmm", h, c.Usable()))
	}
	if c.canvas.PageCount() == 0 || c.y+h > c.Bottom()+epsilon {
		c.NewPage()
	}
}

// Advance moves the cursor down by the height a block consumed.
func (c *Cursor) Advance(h float64) {
	if h < 0 {
		panic(fmt.Sprintf("layout: negative advance %.2fmm", h))
	}
	if c.y+h > c.Bottom()+epsilon {
		panic(fmt.Sprintf("layout: advance to %.2fmm crosses bottom boundary %.2fmm", c.y+h, c.Bottom()))
	}
	c.y += h
}
