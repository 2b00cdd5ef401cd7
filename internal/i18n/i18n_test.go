package i18n

import "testing"

func TestNegotiate(t *testing.T) {
	cases := map[string]string{
		"":                           "en",
		"fr":                         "fr",
		"fr-FR,fr;q=0.9,en;q=0.8":    "fr",
		"en-US,en;q=0.9":             "en",
		"de-DE,de;q=0.9":             "en",
		"es;q=0.9,fr;q=0.8":          "fr",
		"not a valid header ;; ,,,,": "en",
	}
	for header, want := range cases {
		if got := Negotiate(header); got != want {
			t.Fatalf("Negotiate(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestTranslationFallback(t *testing.T) {
	if got := T("fr", "not_found"); got != "introuvable" {
		t.Fatalf("fr not_found = %q", got)
	}
	if got := T("de", "not_found"); got != "not found" {
		t.Fatalf("unknown locale should fall back to english, got %q", got)
	}
	if got := T("en", "no_such_key"); got != "no_such_key" {
		t.Fatalf("unknown key should echo the key, got %q", got)
	}
}
