// Package typetoken parses KBase workspace type strings such as
// "KBaseGenomes.Genome-4.0" or "kb_hisat2.Hisat2Params".
package typetoken

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Token is a parsed `Module.Name[-Major.Minor]` type string.
// Module and Name are case-sensitive, as in the workspace.
type Token struct {
	Module string
	Name   string
	// Versioned is false when the type string carried no `-Major.Minor` suffix.
	Versioned bool
	Major     int
	Minor     int
}

var tokenRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\.([A-Za-z][A-Za-z0-9_]*)(?:-(\d+)\.(\d+))?$`)

// Parse parses a type string.
func Parse(s string) (Token, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Token{}, errors.New("type token: empty")
	}
	m := tokenRe.FindStringSubmatch(s)
	if m == nil {
		return Token{}, fmt.Errorf("type token: invalid %q", s)
	}
	t := Token{Module: m[1], Name: m[2]}
	if m[3] == "" {
		return t, nil
	}
	var err error
	if t.Major, err = strconv.Atoi(m[3]); err != nil {
		return Token{}, fmt.Errorf("type token: invalid major version in %q", s)
	}
	if t.Minor, err = strconv.Atoi(m[4]); err != nil {
		return Token{}, fmt.Errorf("type token: invalid minor version in %q", s)
	}
	t.Versioned = true
	return t, nil
}

// MustParse is like Parse but panics on error. Use it for package-level constants.
func MustParse(s string) Token {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Token) String() string {
	if t.Module == "" || t.Name == "" {
		return ""
	}
	if !t.Versioned {
		return t.Module + "." + t.Name
	}
	return fmt.Sprintf("%s.%s-%d.%d", t.Module, t.Name, t.Major, t.Minor)
}

// Unversioned returns the token without its version suffix.
func (t Token) Unversioned() Token {
	return Token{Module: t.Module, Name: t.Name}
}

// SameType reports whether a and b name the same type, ignoring versions.
func SameType(a, b Token) bool {
	return a.Module == b.Module && a.Name == b.Name
}

// Compare orders tokens by module, name, then version. An unversioned token
// sorts before every versioned token of the same type.
func Compare(a, b Token) int {
	if c := cmp.Compare(a.Module, b.Module); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if a.Versioned != b.Versioned {
		if a.Versioned {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	return cmp.Compare(a.Minor, b.Minor)
}

// MatchesAny reports whether any of allowed is a substring of the full type
// string, e.g. "KBaseFile.PairedEndLibrary" matches
// "KBaseFile.PairedEndLibrary-2.1". This is how the aligner app screens
// workspace objects by type.
func (t Token) MatchesAny(allowed ...string) bool {
	s := t.String()
	for _, a := range allowed {
		if a != "" && strings.Contains(s, a) {
			return true
		}
	}
	return false
}
