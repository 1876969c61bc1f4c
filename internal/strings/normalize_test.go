package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"one", "one"},
		{"one  two", "one two"},
		{"one\ttwo\nthree", "one two three"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\nb", "a\nb"},
	}

	for _, tt := range tests {
		if got := NormalizeNewlines(tt.input); got != tt.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("a\n\r\n"); got != "a" {
		t.Errorf("TrimTrailingNewlines = %q, want %q", got, "a")
	}
	if got := TrimTrailingNewlines("a\nb"); got != "a\nb" {
		t.Errorf("TrimTrailingNewlines = %q, want %q", got, "a\nb")
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	if got := TrimTrailingWhitespace("a \t\n"); got != "a" {
		t.Errorf("TrimTrailingWhitespace = %q, want %q", got, "a")
	}
	if got := TrimTrailingWhitespace(" a"); got != " a" {
		t.Errorf("TrimTrailingWhitespace = %q, want %q", got, " a")
	}
}
