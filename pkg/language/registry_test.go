package language

import "testing"

func TestRegistry_Supported(t *testing.T) {
	r := NewRegistry()

	for _, code := range []string{"en", "es", "fr", "de", "it", "pt", "ru", "zh", "ar", "tr", "ja", "ko", "hi"} {
		if !r.Supported(code) {
			t.Errorf("Supported(%q) = false, want true", code)
		}
	}

	for _, code := range []string{"", "xx", "EN", "english", "nl", "sv"} {
		if r.Supported(code) {
			t.Errorf("Supported(%q) = true, want false", code)
		}
	}
}

func TestRegistry_NameOf(t *testing.T) {
	r := NewRegistry()

	name, ok := r.NameOf("zh")
	if !ok || name != "Chinese" {
		t.Errorf("NameOf(zh) = %q, %v; want Chinese, true", name, ok)
	}

	if _, ok := r.NameOf("xx"); ok {
		t.Error("NameOf(xx) reported ok for unknown code")
	}
}

func TestRegistry_ReverseLookupIsInverse(t *testing.T) {
	r := NewRegistry()

	for _, l := range r.Languages() {
		name, ok := r.NameOf(l.Code)
		if !ok {
			t.Fatalf("NameOf(%q) missing", l.Code)
		}
		code, ok := r.CodeOf(name)
		if !ok {
			t.Fatalf("CodeOf(%q) missing", name)
		}
		if code != l.Code {
			t.Errorf("CodeOf(NameOf(%q)) = %q, want %q", l.Code, code, l.Code)
		}
	}

	if _, ok := r.CodeOf("Klingon"); ok {
		t.Error("CodeOf(Klingon) reported ok for unknown display name")
	}
}

func TestRegistry_LanguagesOrder(t *testing.T) {
	r := NewRegistry()

	langs := r.Languages()
	if len(langs) != 13 {
		t.Fatalf("got %d languages, want 13", len(langs))
	}
	if langs[0].Code != "en" || langs[0].Name != "English" {
		t.Errorf("first entry = %+v, want en/English", langs[0])
	}
	if langs[len(langs)-1].Code != "hi" {
		t.Errorf("last entry = %+v, want hi/Hindi", langs[len(langs)-1])
	}

	// Mutating the returned slice must not affect the registry.
	langs[0] = Language{"xx", "Bogus"}
	if fresh := r.Languages(); fresh[0].Code != "en" {
		t.Error("Languages() returned a shared slice")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	if len(names) != 13 {
		t.Fatalf("got %d names, want 13", len(names))
	}
	if names[0] != "English" || names[1] != "Spanish" {
		t.Errorf("names start with %v, want English, Spanish", names[:2])
	}
}
