package canvas

import "strings"

// WrapWords breaks text on whitespace so that every line measures at most
// maxWidth. A single word wider than maxWidth is placed on a line of its own
// rather than split. Explicit newlines always start a new line. Blank input
// produces no lines.
func WrapWords(text string, maxWidth float64, measure func(string) float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}
