package document

import "testing"

func TestParse_Text(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"round trip", "a\n\tb\n", "a\n\tb\n"},
		{"missing final newline added", "a\nb", "a\nb\n"},
		{"empty", "", ""},
		{"single blank line", "\n", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in).Text(); got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_LineCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a\n", 1},
		{"a\nb\nc\n", 3},
		{"a\n\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Parse(tt.in).LineCount(); got != tt.want {
				t.Errorf("LineCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParse_Version(t *testing.T) {
	if got := Parse("a\n").Version(); got != 1 {
		t.Errorf("Version = %d, want 1", got)
	}
}
