package services

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestConversationTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"short message kept whole", "Hello", "Hello"},
		{"exactly thirty runes kept whole", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"long message truncated", strings.Repeat("a", 31), strings.Repeat("a", 30)},
		{"multibyte runes counted as runes", strings.Repeat("é", 40), strings.Repeat("é", 30)},
		{"empty message", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConversationTitle(tt.message)
			if got != tt.want {
				t.Errorf("ConversationTitle() = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("title %q is not valid UTF-8", got)
			}
		})
	}
}
