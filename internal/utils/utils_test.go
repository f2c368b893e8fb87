package utils

import "testing"

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}

	for _, c := range cases {
		if got := FormatFileSize(c.size); got != c.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestShouldIgnore(t *testing.T) {
	if !ShouldIgnore("node_modules") {
		t.Error("node_modules should be ignored")
	}
	if !ShouldIgnore(".git") {
		t.Error(".git should be ignored")
	}
	if ShouldIgnore("src") {
		t.Error("src should not be ignored")
	}
}

func TestIsImageFile(t *testing.T) {
	if !IsImageFile("photo.PNG") {
		t.Error("extension match should be case-insensitive")
	}
	if IsImageFile("notes.md") {
		t.Error("markdown is not an image")
	}
}
