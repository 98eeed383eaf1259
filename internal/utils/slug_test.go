package utils

import (
	"strings"
	"testing"
	"time"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Srinagar Houseboats", "srinagar-houseboats"},
		{"punctuation and digits", "My Trip! To Kashmir 2024", "my-trip-to-kashmir-2024"},
		{"underscores collapse", "gulmarg__winter_guide", "gulmarg-winter-guide"},
		{"mixed separators", "Dal  Lake -- at_dawn", "dal-lake-at-dawn"},
		{"leading and trailing noise", "  ...Pahalgam!  ", "pahalgam"},
		{"already clean", "sonamarg-day-trip", "sonamarg-day-trip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeSlug(tt.title); got != tt.want {
				t.Errorf("MakeSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeSlugEmptyTitle(t *testing.T) {
	want := DefaultSlugPrefix + "-" + time.Now().Format("20060102")

	for _, title := range []string{"", "   ", "!!!", "???"} {
		got := MakeSlug(title)
		if got != want {
			t.Errorf("MakeSlug(%q) = %q, want %q", title, got, want)
		}
		if len(got) > MaxSlugLength {
			t.Errorf("MakeSlug(%q) length = %d, want <= %d", title, len(got), MaxSlugLength)
		}
	}
}

func TestMakeSlugCapsLength(t *testing.T) {
	long := strings.Repeat("kashmir ", 20)

	got := MakeSlug(long)
	if len(got) > MaxSlugLength {
		t.Fatalf("slug length = %d, want <= %d", len(got), MaxSlugLength)
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Errorf("slug %q has a dangling hyphen", got)
	}
}
