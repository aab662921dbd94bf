// manifest.go repurposes the teacher's TOML package-manifest pattern for
// per-project lexer tuning. Grounded on
// _examples/boergens-gotypst/syntax/package.go's PackageManifest (a
// toml-tagged struct decoded with github.com/BurntSushi/toml), but for an
// entirely different payload: Typst package metadata (name, version,
// compiler requirement) has no place here, so ProjectManifest instead
// carries the two knobs SPEC_FULL.md's DOMAIN STACK section calls out —
// indentation tab width and extra reserved words.
package syntax

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ProjectManifest is the optional `helios.toml` a project root may carry,
// tuning how its source files are lexed before parsing.
type ProjectManifest struct {
	// Lexer holds the lexer-tuning knobs. It's a nested table (`[lexer]`
	// in the TOML file) rather than flattened, mirroring the teacher's
	// PackageManifest nesting package/template/tool under their own keys.
	Lexer LexerConfig `toml:"lexer"`
}

// LexerConfig tunes the lexer and indentation rewriter for one project.
type LexerConfig struct {
	// TabWidth is how many columns a tab byte counts for when measuring a
	// line's leading-whitespace indentation width. Zero (the Go zero
	// value, and this field's default when absent from the TOML file)
	// means "use the literal byte count", matching spec §4.2's default
	// behavior exactly.
	TabWidth int `toml:"tab_width"`
	// ExtraReservedWords names identifiers that should lex as
	// ReservedIdentifier (like the built-in `_`) for this project, without
	// being given a dedicated keyword kind or grammar role.
	ExtraReservedWords []string `toml:"extra_reserved_words"`
}

// LoadManifest reads and decodes a `helios.toml` file from path.
func LoadManifest(path string) (*ProjectManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m ProjectManifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// reservedWordSet returns the manifest's extra reserved words as a lookup
// set, or nil for a nil manifest (ParseTextWithManifest then behaves
// exactly like ParseText).
func (m *ProjectManifest) reservedWordSet() map[string]bool {
	if m == nil || len(m.Lexer.ExtraReservedWords) == 0 {
		return nil
	}
	set := make(map[string]bool, len(m.Lexer.ExtraReservedWords))
	for _, w := range m.Lexer.ExtraReservedWords {
		set[w] = true
	}
	return set
}

// tabWidth returns the manifest's configured tab width, or 1 (the
// byte-literal default) for a nil manifest or an unset field.
func (m *ProjectManifest) tabWidth() int {
	if m == nil || m.Lexer.TabWidth <= 0 {
		return 1
	}
	return m.Lexer.TabWidth
}
