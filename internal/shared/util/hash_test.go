package util

import "testing"

func TestHashOwnerKey(t *testing.T) {
	id := "3f1c9a52-6a7e-4d0b-9d0e-1f2a3b4c5d6e"
	got := HashOwnerKey(id)
	if got != HashOwnerKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if HashOwnerKey("other") == got {
		t.Fatalf("expected distinct owners to hash differently")
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":        "resume.pdf",
		" dir/resume.pdf ":  "dir_resume.pdf",
		`win\path\cv.docx`:  "win_path_cv.docx",
	}
	for in, want := range cases {
		got, err := SanitizeFileName(in)
		if err != nil || got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "   ", "../x.pdf"} {
		if _, err := SanitizeFileName(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
