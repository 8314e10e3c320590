package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTemplate(t *testing.T) {
	template := QuickTemplates[0]

	tests := []struct {
		name    string
		caption string
		want    string
	}{
		{"empty caption is replaced", "", template},
		{"whitespace caption is replaced", "   ", template},
		{"appended with a space", "Already writing.", "Already writing. " + template},
		{"trailing space gets no extra", "Already writing. ", "Already writing. " + template},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyTemplate(tt.caption, template))
		})
	}
}
