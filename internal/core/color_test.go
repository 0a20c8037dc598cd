package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"default", ColorDefault},
		{"magenta", ColorMagenta},
		{"bright_white", ColorBrightWhite},
		{"gray", ColorGray},
		{"orange", ColorOrange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if err != nil {
				t.Fatalf("ParseColor(%q) returned error: %v", tc.name, err)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}
}

func TestParseColorUnknown(t *testing.T) {
	if _, err := ParseColor("mauve"); err == nil {
		t.Error("ParseColor should reject unknown color names")
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for name, c := range colorNames {
		if got := c.String(); got != name {
			t.Errorf("Color %v String() = %q, expected %q", c, got, name)
		}
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) returned error: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("round trip for %q: got %v, expected %v", name, parsed, c)
		}
	}
}
