package report

import (
	"errors"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
)

var ErrFooterPass = errors.New("footer pass failed")

// StampFooters revisits every page once composition is finished and draws the
// footer with the final page count. It must run exactly once per document.
func StampFooters(cv canvas.Canvas, th layout.Theme, footer layout.Footer) error {
	total := cv.PageCount()
	if total == 0 {
		return fmt.Errorf("%w: document has no pages", ErrFooterPass)
	}
	for page := 1; page <= total; page++ {
		if err := cv.SelectPage(page); err != nil {
			return fmt.Errorf("%w: page %d: %w", ErrFooterPass, page, err)
		}
		footer.Draw(cv, th, page, total)
	}
	return nil
}
