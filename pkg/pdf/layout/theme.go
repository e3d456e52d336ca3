package layout

import (
	"errors"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
)

var ErrInvalidTheme = errors.New("invalid theme")

type Palette struct {
	Primary  canvas.Color
	Accent   canvas.Color
	Text     canvas.Color
	Muted    canvas.Color
	Success  canvas.Color
	Warning  canvas.Color
	Danger   canvas.Color
	TileFill canvas.Color
	Border   canvas.Color
	RiskFill canvas.Color
	SafeFill canvas.Color
	Inverse  canvas.Color
}

type Fonts struct {
	Title     canvas.Font
	Heading   canvas.Font
	Body      canvas.Font
	Bold      canvas.Font
	Italic    canvas.Font
	Small     canvas.Font
	TileValue canvas.Font
	TileLabel canvas.Font
	Footer    canvas.Font
}

// Theme is the immutable styling and geometry shared by every widget of one
// document. All lengths are millimetres.
type Theme struct {
	Colors Palette
	Fonts  Fonts

	MarginLeft   float64
	MarginRight  float64
	HeaderHeight float64 // running header band, drawn above ContentTop
	ContentTop   float64
	MarginBottom float64 // reserved footer strip, never reachable by the cursor

	LineHeight     float64
	ParagraphGap   float64
	ItemGap        float64
	RuleGap        float64
	HeadingHeight  float64
	TitleHeight    float64
	TileHeight     float64
	TileGap        float64
	RowGap         float64
	KeyValueHeight float64
	BannerHeight   float64
	CalloutPadding float64
	CalloutTitle   float64
	BulletMarker   float64
	CornerRadius   float64
}

func DefaultTheme() Theme {
	const family = "Helvetica"
	return Theme{
		Colors: Palette{
			Primary:  canvas.RGB(30, 58, 95),
			Accent:   canvas.RGB(52, 152, 219),
			Text:     canvas.RGB(44, 62, 80),
			Muted:    canvas.RGB(127, 140, 141),
			Success:  canvas.RGB(46, 204, 113),
			Warning:  canvas.RGB(241, 196, 15),
			Danger:   canvas.RGB(231, 76, 60),
			TileFill: canvas.RGB(248, 249, 250),
			Border:   canvas.RGB(220, 220, 220),
			RiskFill: canvas.RGB(253, 237, 236),
			SafeFill: canvas.RGB(232, 248, 240),
			Inverse:  canvas.RGB(255, 255, 255),
		},
		Fonts: Fonts{
			Title:     canvas.Font{Family: family, Style: "B", Size: 20},
			Heading:   canvas.Font{Family: family, Style: "B", Size: 14},
			Body:      canvas.Font{Family: family, Size: 10},
			Bold:      canvas.Font{Family: family, Style: "B", Size: 10},
			Italic:    canvas.Font{Family: family, Style: "I", Size: 10},
			Small:     canvas.Font{Family: family, Size: 8},
			TileValue: canvas.Font{Family: family, Style: "B", Size: 15},
			TileLabel: canvas.Font{Family: family, Size: 7.5},
			Footer:    canvas.Font{Family: family, Size: 7.5},
		},
		MarginLeft:     18,
		MarginRight:    18,
		HeaderHeight:   14,
		ContentTop:     22,
		MarginBottom:   30,
		LineHeight:     5.2,
		ParagraphGap:   2.5,
		ItemGap:        1.2,
		RuleGap:        4,
		HeadingHeight:  9,
		TitleHeight:    12,
		TileHeight:     22,
		TileGap:        4,
		RowGap:         5,
		KeyValueHeight: 11,
		BannerHeight:   14,
		CalloutPadding: 4,
		CalloutTitle:   7,
		BulletMarker:   4,
		CornerRadius:   2,
	}
}

// Validate checks the geometry against a page size.
func (t Theme) Validate(pageWidth, pageHeight float64) error {
	if t.ContentTop < t.HeaderHeight {
		return fmt.Errorf("%w: content top %.1f overlaps header band %.1f", ErrInvalidTheme, t.ContentTop, t.HeaderHeight)
	}
	if footer := FooterHeight(); t.MarginBottom < footer {
		return fmt.Errorf("%w: bottom margin %.1f is shorter than the footer strip %.1f", ErrInvalidTheme, t.MarginBottom, footer)
	}
	if usable := pageHeight - t.MarginBottom - t.ContentTop; usable <= 0 {
		return fmt.Errorf("%w: usable height %.1f is not positive", ErrInvalidTheme, usable)
	}
	if width := pageWidth - t.MarginLeft - t.MarginRight; width <= 0 {
		return fmt.Errorf("%w: content width %.1f is not positive", ErrInvalidTheme, width)
	}
	if t.LineHeight <= 0 || t.TileHeight <= 0 || t.HeadingHeight <= 0 {
		return fmt.Errorf("%w: line, tile and heading heights must be positive", ErrInvalidTheme)
	}
	if usable, section := pageHeight-t.MarginBottom-t.ContentTop, t.HeadingHeight+t.RuleGap+t.TileHeight+t.RowGap; usable < section {
		return fmt.Errorf("%w: usable height %.1f cannot hold a section heading and its first row (%.1f)", ErrInvalidTheme, usable, section)
	}
	return nil
}

// baseline converts the top of a line box into the text baseline.
func baseline(top, lineHeight float64) float64 {
	return top + lineHeight*0.72
}
