package grade

import (
	"regexp"
	"strings"
)

// patternKind records how a checklist pattern is evaluated after the
// one-time compile decision.
type patternKind int

const (
	patternRegex   patternKind = iota // compiled case-insensitive regexp
	patternLiteral                    // case-insensitive substring fallback
)

// CompiledPattern is the eagerly-decided form of one checklist pattern
// string. Patterns are regular expressions first; a string that fails to
// compile falls back to literal substring search on the raw text. The
// fallback decision is fixed at compile time so a malformed pattern is
// data-quality noise, never an error at match time.
type CompiledPattern struct {
	raw     string
	kind    patternKind
	re      *regexp.Regexp
	literal string // lower-cased raw text, literal mode only
}

// CompilePattern decides regex vs literal for one pattern string.
func CompilePattern(raw string) CompiledPattern {
	re, err := regexp.Compile("(?i)" + raw)
	if err != nil {
		return CompiledPattern{
			raw:     raw,
			kind:    patternLiteral,
			literal: strings.ToLower(raw),
		}
	}
	return CompiledPattern{raw: raw, kind: patternRegex, re: re}
}

// Raw returns the original pattern string as written in the ground truth.
func (p CompiledPattern) Raw() string { return p.raw }

// IsLiteral reports whether the pattern fell back to substring matching.
func (p CompiledPattern) IsLiteral() bool { return p.kind == patternLiteral }

// Matches evaluates the pattern against a report document. Pure function
// of its inputs; no side effects.
func (p CompiledPattern) Matches(doc Document) bool {
	switch p.kind {
	case patternRegex:
		return p.re.MatchString(doc.text)
	default:
		return strings.Contains(doc.lower, p.literal)
	}
}

// Document is an immutable report text prepared for matching. The
// lower-cased form is computed once so literal patterns don't re-fold the
// whole report per check.
type Document struct {
	text  string
	lower string
}

// NewDocument wraps raw report text for matching.
func NewDocument(text string) Document {
	return Document{text: text, lower: strings.ToLower(text)}
}

// Text returns the raw report content.
func (d Document) Text() string { return d.text }

// Len returns the report length in bytes.
func (d Document) Len() int { return len(d.text) }
