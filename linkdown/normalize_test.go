package linkdown

import "testing"

func TestNormalize_AddsSchemeToBareHost(t *testing.T) {
	if got := Normalize("vc.ru"); got != "http://vc.ru" {
		t.Fatalf("expected http://vc.ru, got %q", got)
	}
}

func TestNormalize_KeepsInternalReferenceShapes(t *testing.T) {
	inputs := []string{
		"/general",
		"/",
		"#results",
		"//cdn.example.com/x",
		"[token]",
	}
	for _, in := range inputs {
		if got := Normalize(in); string(got) != in {
			t.Fatalf("Normalize(%q) = %q, expected unchanged", in, got)
		}
	}
}

func TestNormalize_KeepsExplicitSchemes(t *testing.T) {
	inputs := []string{
		"http://vc.ru",
		"https://example.com/page",
		"mailto:user@example.com",
		"ftp://files.example.com",
		"tel:+1234567890",
	}
	for _, in := range inputs {
		if got := Normalize(in); string(got) != in {
			t.Fatalf("Normalize(%q) = %q, expected unchanged", in, got)
		}
	}
}

func TestNormalize_TrimsSurroundingWhitespace(t *testing.T) {
	if got := Normalize("  vc.ru\t"); got != "http://vc.ru" {
		t.Fatalf("expected http://vc.ru, got %q", got)
	}
	if got := Normalize(" /general "); got != "/general" {
		t.Fatalf("expected /general, got %q", got)
	}
}

func TestNormalize_PrependsSchemeToExternalValues(t *testing.T) {
	// no scheme and no internal shape means http:// is prepended verbatim
	inputs := []string{"vc.ru", "example.com/path", "localhost:8080", "x"}
	for _, in := range inputs {
		want := "http://" + in
		if in == "localhost:8080" {
			// "localhost:" parses as a scheme prefix, so it stays unchanged
			want = in
		}
		if got := Normalize(in); string(got) != want {
			t.Fatalf("Normalize(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"vc.ru", "/general", "/", "#results", "//cdn.example.com/x",
		"[token]", "http://vc.ru", "mailto:user@example.com",
		"  padded.example  ", "", "example.com/path?q=1#frag",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(string(once))
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestValidate_RejectsWhitespace(t *testing.T) {
	inputs := []string{
		"go to site", " leading", "trailing ", "tab\tinside",
		"new\nline", "no-break space",
	}
	for _, in := range inputs {
		if Validate(in) {
			t.Fatalf("Validate(%q) = true, expected false", in)
		}
	}
}

func TestValidate_AcceptsAnythingWithoutWhitespace(t *testing.T) {
	// deliberately permissive: scheme and host correctness are not checked
	inputs := []string{"vc.ru", "not-a-url", "#", "!!!", "http://x", "[token]"}
	for _, in := range inputs {
		if !Validate(in) {
			t.Fatalf("Validate(%q) = false, expected true", in)
		}
	}
}
