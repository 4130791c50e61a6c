package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{"Rolex", "%rolex%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.search), tt.search)
	}
}
