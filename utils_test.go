package sacristy

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"scan.pdf":            "scan.pdf",
		"../../../etc/passwd": "passwd",
		"dir\\file.PDF":       "file.PDF",
		"my scan (1).pdf":     "my_scan__1_.pdf",
		"":                    "file",
		"..":                  "file",
	}
	for in, want := range cases {
		if got := SanitizeFileName(in); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCertificateFileName(t *testing.T) {
	name := CertificateFileName("GROOM", "baptism", "scan.pdf", []byte("content"))
	if !strings.HasPrefix(name, "groom-baptism-") {
		t.Fatalf("expected role/kind prefix, got %q", name)
	}
	if !strings.HasSuffix(name, "-scan.pdf") {
		t.Fatalf("expected sanitized original suffix, got %q", name)
	}

	// role and kind are optional
	bare := CertificateFileName("", "", "scan.pdf", []byte("content"))
	if strings.HasPrefix(bare, "-") {
		t.Fatalf("unexpected leading separator in %q", bare)
	}

	// different content yields a different key even for the same name
	other := CertificateFileName("", "", "scan.pdf", []byte("different"))
	hashOf := func(s string) string {
		parts := strings.Split(s, "-")
		return parts[len(parts)-2]
	}
	if hashOf(bare) == hashOf(other) {
		t.Fatalf("expected content hash to differ: %q vs %q", bare, other)
	}
}

func TestIsEmailAddress(t *testing.T) {
	valid := []string{"jane@example.com", "j.doe@parish.org.uk", "a@b.co"}
	for _, s := range valid {
		if !IsEmailAddress(s) {
			t.Errorf("expected %q to be accepted", s)
		}
	}

	invalid := []string{"", "jane", "@example.com", "jane@", "jane@example", "jane doe@example.com", "jane@@example.com", "jane@example."}
	for _, s := range invalid {
		if IsEmailAddress(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
