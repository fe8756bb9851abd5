package domain

import "testing"

func TestIsResourceFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid png resource", "abcdef0123456789abcdef0123456789.png", true},
		{"valid single-letter extension", "abcdef0123456789abcdef0123456789.a", true},
		{"not a resource name", "not-a-resource.txt", false},
		{"uppercase hex rejected", "ABCDEF0123456789ABCDEF0123456789.png", false},
		{"too short", "abcdef0123456789.png", false},
		{"too long", "abcdef0123456789abcdef0123456789ff.png", false},
		{"missing extension", "abcdef0123456789abcdef0123456789", false},
		{"empty extension", "abcdef0123456789abcdef0123456789.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsResourceFilename(tt.input); got != tt.want {
				t.Errorf("IsResourceFilename(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResourceID(t *testing.T) {
	name := "abcdef0123456789abcdef0123456789.png"
	if got := ResourceID(name); got != "abcdef0123456789abcdef0123456789" {
		t.Errorf("ResourceID(%q) = %q", name, got)
	}
}

func TestIsImageFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"x.png", true},
		{"x.jpg", true},
		{"x.jpeg", true},
		{"x.gif", true},
		{"x.bmp", true},
		{"x.svg", true},
		{"x.webp", true},
		{"x.PNG", true},
		{"x.pdf", false},
		{"x.txt", false},
		{"x", false},
	}

	for _, tt := range tests {
		if got := IsImageFilename(tt.name); got != tt.want {
			t.Errorf("IsImageFilename(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
