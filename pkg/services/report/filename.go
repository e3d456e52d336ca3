package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafeName = regexp.MustCompile(`[^\p{L}\p{N}_\-]+`)
)

// Filename builds <Product>_Comprehensive_Report_<Subject>_<YYYY-MM-DD>.pdf.
func Filename(product, subject string, generatedAt time.Time) string {
	p := sanitizeName(product)
	if p == "" {
		p = DefaultProduct
	}
	s := sanitizeName(subject)
	if s == "" {
		s = anonymousSubject
	}
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	return fmt.Sprintf("%s_Comprehensive_Report_%s_%s.pdf", p, s, generatedAt.Format("2006-01-02"))
}

func sanitizeName(s string) string {
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.Trim(unsafeName.ReplaceAllString(s, ""), "_")
}
