package utils

import (
	"strings"
	"testing"
)

func TestIsAllowedImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        bool
	}{
		{"jpeg", "dal-lake.jpg", "image/jpeg", true},
		{"png uppercase ext", "GULMARG.PNG", "image/png", true},
		{"webp without content type", "hero.webp", "", true},
		{"pdf rejected", "brochure.pdf", "application/pdf", false},
		{"executable rejected", "malware.exe", "application/octet-stream", false},
		{"image ext but wrong content type", "fake.jpg", "text/html", false},
		{"no extension", "README", "image/png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAllowedImage(tt.filename, tt.contentType); got != tt.want {
				t.Errorf("IsAllowedImage(%q, %q) = %v, want %v", tt.filename, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestUniqueFilename(t *testing.T) {
	a := UniqueFilename("photo.JPG")
	b := UniqueFilename("photo.JPG")

	if a == b {
		t.Errorf("two generated names collided: %q", a)
	}
	if !strings.HasSuffix(a, ".jpg") {
		t.Errorf("UniqueFilename() = %q, want .jpg suffix", a)
	}
}
