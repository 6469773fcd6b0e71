package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Som Tam Heaven", "som-tam-heaven"},
		{"collapses whitespace", "  Cafe   Luna  ", "cafe-luna"},
		{"keeps digits", "Top 10 Eats", "top-10-eats"},
		{"strips latin diacritics", "Café Crème", "cafe-creme"},
		{"keeps thai", "ร้านส้มตำ อร่อย", "ร้านส้มตำ-อร่อย"},
		{"mixed thai latin", "Bangkok ของกิน", "bangkok-ของกิน"},
		{"drops punctuation", "Rock & Roll!", "rock-roll"},
		{"existing hyphens survive", "pre-made slug", "pre-made-slug"},
		{"symbols only", "@#$%", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
