// Package selector implements the constrained CSS-subset grammar used by the
// template mapping tables: `tag`, `tag[attr]`, `tag[attr="v"]` and
// `tag[attr*="v"]`, with any number of bracketed predicates ANDed together.
//
// Descendant selectors collapse to their rightmost simple selector; ancestor
// constraints are accepted but not enforced, so `table td a` selects exactly
// what `a` selects. Existing mapping tables are authored assuming this.
package selector

import (
	"regexp"
	"strings"
)

// MatchOp is the comparison a predicate applies to an attribute.
type MatchOp int

const (
	// OpPresent matches when the attribute exists on the tag.
	OpPresent MatchOp = iota
	// OpEquals matches when the attribute value equals the predicate value.
	OpEquals
	// OpContains matches when the attribute value contains the predicate value.
	OpContains
)

// Predicate is one `[...]` group of a selector.
type Predicate struct {
	Attribute string
	Op        MatchOp
	Value     string
}

// Selector is the parsed form of a mapping selector: a tag name plus zero or
// more attribute predicates.
type Selector struct {
	Tag        string
	Predicates []Predicate
}

var (
	simpleSelectorRe = regexp.MustCompile(`^(\w+)((?:\[[^\]]+\])*)$`)
	predicateRe      = regexp.MustCompile(`\[([^\]]+)\]`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// Parse parses a selector string. Parsing never fails: input that does not
// match the grammar is treated as a bare tag name with no predicates.
func Parse(raw string) Selector {
	simple := rightmostSimple(strings.TrimSpace(raw))

	m := simpleSelectorRe.FindStringSubmatch(simple)
	if m == nil {
		return Selector{Tag: simple}
	}

	sel := Selector{Tag: strings.ToLower(m[1])}
	for _, g := range predicateRe.FindAllStringSubmatch(m[2], -1) {
		sel.Predicates = append(sel.Predicates, parsePredicate(g[1]))
	}
	return sel
}

// rightmostSimple keeps only the substring after the last top-level space.
// Bracket depth is tracked so spaces inside `[...]` do not split the selector.
func rightmostSimple(raw string) string {
	last := -1
	depth := 0
	for i, r := range raw {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ' ':
			if depth == 0 {
				last = i
			}
		}
	}
	if last < 0 {
		return raw
	}
	return raw[last+1:]
}

// parsePredicate parses one bracket group body. Forms are tried in order:
// `attr*="v"`, `attr="v"`, then bare `attr`.
func parsePredicate(body string) Predicate {
	body = strings.TrimSpace(body)
	if idx := strings.Index(body, `*="`); idx >= 0 && strings.HasSuffix(body, `"`) {
		return Predicate{
			Attribute: strings.TrimSpace(body[:idx]),
			Op:        OpContains,
			Value:     body[idx+3 : len(body)-1],
		}
	}
	if idx := strings.Index(body, `="`); idx >= 0 && strings.HasSuffix(body, `"`) {
		return Predicate{
			Attribute: strings.TrimSpace(body[:idx]),
			Op:        OpEquals,
			Value:     body[idx+2 : len(body)-1],
		}
	}
	return Predicate{Attribute: body, Op: OpPresent}
}

// MatchesTag reports whether a raw open tag satisfies every predicate.
// Whitespace runs are collapsed first so multi-line attributes compare like
// single-line ones. Attribute names are case-insensitive.
func (s Selector) MatchesTag(openTag string) bool {
	normalized := whitespaceRe.ReplaceAllString(openTag, " ")
	for _, p := range s.Predicates {
		if !p.matches(normalized) {
			return false
		}
	}
	return true
}

func (p Predicate) matches(tag string) bool {
	switch p.Op {
	case OpPresent:
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p.Attribute) + `\s*=`)
		return re.MatchString(tag)
	case OpEquals:
		value, ok := attributeValue(tag, p.Attribute)
		return ok && value == p.Value
	case OpContains:
		value, ok := attributeValue(tag, p.Attribute)
		return ok && strings.Contains(value, p.Value)
	}
	return false
}

// attributeValue extracts the quoted value of an attribute from normalized
// open tag text.
func attributeValue(tag, attr string) (string, bool) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(attr) + `\s*=\s*"([^"]*)"`)
	m := re.FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}
	return m[1], true
}
