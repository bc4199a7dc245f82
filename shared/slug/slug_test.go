package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"viasol/shared/slug"
)

var urlSafe = regexp.MustCompile(`^[a-z0-9-]+$`)

func TestMake_URLSafe(t *testing.T) {
	titles := []string{
		"Buzios 7 noches",
		"Escapada a Miami!",
		"Córdoba + Cataratas (promo) ✈️",
		"RÍO DE JANEIRO — Año Nuevo",
		"   espacios    por  todos lados   ",
		"日本 tour",
	}

	for _, title := range titles {
		got := slug.Make(title)
		if !urlSafe.MatchString(got) {
			t.Errorf("Make(%q) = %q, not URL-safe", title, got)
		}
	}
}

func TestMake_UniqueForSameTitle(t *testing.T) {
	title := "Buzios 7 noches"

	seen := map[string]bool{}
	for range 50 {
		got := slug.Make(title)
		if seen[got] {
			t.Fatalf("Make(%q) produced duplicate slug %q", title, got)
		}
		seen[got] = true
	}
}

func TestMake_EmptyTitle(t *testing.T) {
	got := slug.Make("")

	if len(got) != 6 {
		t.Errorf("Make(\"\") = %q, want suffix-only slug of length 6", got)
	}
	if strings.HasPrefix(got, "-") {
		t.Errorf("Make(\"\") = %q, must not start with a dash", got)
	}
	if !urlSafe.MatchString(got) {
		t.Errorf("Make(\"\") = %q, not URL-safe", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Escapada a Miami!", "escapada-a-miami"},
		{"Córdoba y Neuquén", "cordoba-y-neuquen"},
		{"ya--con---guiones", "ya-con-guiones"},
		{"  trim me  ", "trim-me"},
		{"", ""},
		{"€€€", ""},
	}

	for _, tt := range tests {
		if got := slug.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
