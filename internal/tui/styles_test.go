package tui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{
			name:   "short strings pass through",
			in:     "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length passes through",
			in:     "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "long strings get an ellipsis",
			in:     "hello world",
			maxLen: 8,
			want:   "hello...",
		},
		{
			name:   "tiny budget cuts without ellipsis",
			in:     "hello",
			maxLen: 2,
			want:   "he",
		},
		{
			name:   "multi-byte runes stay intact",
			in:     "héllö wörld",
			maxLen: 8,
			want:   "héllö...",
		},
		{
			name:   "rune count not byte count",
			in:     "日本語のプロンプト",
			maxLen: 9,
			want:   "日本語のプロンプト",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}
