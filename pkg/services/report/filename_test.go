package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	at := time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name    string
		product string
		subject string
		want    string
	}{
		{"plain", "MindWell", "Jane Doe", "MindWell_Comprehensive_Report_Jane_Doe_2025-06-30.pdf"},
		{"whitespace runs", "MindWell", "  Jane \t  Doe ", "MindWell_Comprehensive_Report_Jane_Doe_2025-06-30.pdf"},
		{"path separators", "MindWell", "../etc/passwd", "MindWell_Comprehensive_Report_etcpasswd_2025-06-30.pdf"},
		{"unicode letters kept", "MindWell", "Zoë Åkesson", "MindWell_Comprehensive_Report_Zoë_Åkesson_2025-06-30.pdf"},
		{"blank subject", "MindWell", "   ", "MindWell_Comprehensive_Report_Anonymous_2025-06-30.pdf"},
		{"blank product", "", "Jane", "MindWell_Comprehensive_Report_Jane_2025-06-30.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.product, tt.subject, at))
		})
	}
}
