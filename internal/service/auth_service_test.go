package service

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Alice@Example.COM":   "alice@example.com",
		"  bob@shop.fr  ":     "bob@shop.fr",
		"charlie@watch.store": "charlie@watch.store",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrincipalIsAdmin(t *testing.T) {
	var nilPrincipal *Principal
	if nilPrincipal.IsAdmin() {
		t.Fatal("nil principal must not be admin")
	}
	if (&Principal{Role: "user"}).IsAdmin() {
		t.Fatal("user role must not be admin")
	}
	if !(&Principal{Role: "admin"}).IsAdmin() {
		t.Fatal("admin role must be admin")
	}
}
