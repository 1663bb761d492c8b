package language

import (
	"fmt"

	xlang "golang.org/x/text/language"
)

// Language pairs a short ISO 639-1 code with its human-readable display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// supported is the fixed set of languages the relay accepts. Order matters:
// it is the order the UI presents choices in.
var supported = []Language{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ru", "Russian"},
	{"zh", "Chinese"},
	{"ar", "Arabic"},
	{"tr", "Turkish"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"hi", "Hindi"},
}

// Registry is an immutable bidirectional mapping between language codes and
// display names. It is built once at startup and is safe for concurrent use
// without locking.
type Registry struct {
	languages  []Language
	nameByCode map[string]string
	codeByName map[string]string
}

// NewRegistry builds the registry from the fixed language table. It panics if
// the table contains duplicate codes or display names, or a code that is not a
// valid BCP 47 tag — all programming errors in the static table, not runtime
// conditions.
func NewRegistry() *Registry {
	r := &Registry{
		languages:  supported,
		nameByCode: make(map[string]string, len(supported)),
		codeByName: make(map[string]string, len(supported)),
	}

	for _, l := range supported {
		if _, err := xlang.Parse(l.Code); err != nil {
			panic(fmt.Sprintf("language: invalid code %q: %v", l.Code, err))
		}
		if _, dup := r.nameByCode[l.Code]; dup {
			panic(fmt.Sprintf("language: duplicate code %q", l.Code))
		}
		if _, dup := r.codeByName[l.Name]; dup {
			panic(fmt.Sprintf("language: duplicate display name %q", l.Name))
		}
		r.nameByCode[l.Code] = l.Name
		r.codeByName[l.Name] = l.Code
	}

	return r
}

// Supported reports whether code is a known language code.
func (r *Registry) Supported(code string) bool {
	_, ok := r.nameByCode[code]
	return ok
}

// NameOf returns the display name for code.
func (r *Registry) NameOf(code string) (string, bool) {
	name, ok := r.nameByCode[code]
	return name, ok
}

// CodeOf returns the language code for a display name. This is the exact
// inverse of NameOf for every registry entry.
func (r *Registry) CodeOf(displayName string) (string, bool) {
	code, ok := r.codeByName[displayName]
	return code, ok
}

// Languages returns all (code, name) pairs in table order. The returned slice
// is a copy; callers may reorder it freely.
func (r *Registry) Languages() []Language {
	out := make([]Language, len(r.languages))
	copy(out, r.languages)
	return out
}

// Names returns all display names in table order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.languages))
	for i, l := range r.languages {
		names[i] = l.Name
	}
	return names
}
