// Package htmlscan locates and rewrites elements inside hand-authored HTML
// templates using string scanning with explicit byte-offset bookkeeping.
//
// It is not an HTML parser. The templates it runs against are a curated,
// well-formed set; the scanner only needs to find open tags, evaluate
// selector predicates against them, and pair them with the right close tag
// via depth tracking. Malformed input degrades to dropped matches, never a
// panic.
package htmlscan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Blockmail/blockmail/pkg/logger"
	"github.com/Blockmail/blockmail/pkg/selector"
)

// Match is one located element: the exact substring and its byte span in the
// buffer it was scanned from. A span is only valid against that exact buffer
// state; callers re-scan after every splice because earlier splices shift
// offsets.
type Match struct {
	HTML  string
	Tag   string
	Start int
	End   int
}

// nonNestable tags cannot legally contain themselves, so the first close tag
// after the open tag always terminates the element and no depth tracking is
// needed. br and hr are void; templates author them self-closing.
var nonNestable = map[string]bool{
	"a":      true,
	"button": true,
	"img":    true,
	"input":  true,
	"br":     true,
	"hr":     true,
}

// FindElements returns every element in html matching sel, in document
// order. Elements with no matching close tag are dropped with a warning.
func FindElements(html string, sel selector.Selector, log logger.Logger) []Match {
	openRe := openTagRe(sel.Tag)
	closeRe := closeTagRe(sel.Tag)

	var matches []Match
	for _, loc := range openRe.FindAllStringIndex(html, -1) {
		openTag := html[loc[0]:loc[1]]
		if !sel.MatchesTag(openTag) {
			continue
		}
		end, ok := elementEnd(html, sel.Tag, loc[0], loc[1], openTag, openRe, closeRe)
		if !ok {
			log.Warn(fmt.Sprintf("htmlscan: no closing tag for <%s> at offset %d, dropping element", sel.Tag, loc[0]))
			continue
		}
		matches = append(matches, Match{
			HTML:  html[loc[0]:end],
			Tag:   sel.Tag,
			Start: loc[0],
			End:   end,
		})
	}
	return matches
}

// openTagRe matches every `<tag ...>` occurrence of the given tag,
// case-insensitively. `[^>]*` crosses newlines, so multi-line attribute
// lists are covered.
func openTagRe(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<` + regexp.QuoteMeta(tag) + `(?:[\s/][^>]*)?>`)
}

func closeTagRe(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(tag) + `\s*>`)
}

// elementEnd computes the exclusive end offset of the element whose open tag
// spans [openStart, openEnd).
func elementEnd(html, tag string, openStart, openEnd int, openTag string, openRe, closeRe *regexp.Regexp) (int, bool) {
	if strings.HasSuffix(strings.TrimSpace(openTag), "/>") {
		return openEnd, true
	}

	if nonNestable[strings.ToLower(tag)] {
		cl := closeRe.FindStringIndex(html[openEnd:])
		if cl == nil {
			return 0, false
		}
		return openEnd + cl[1], true
	}

	// Nestable: depth starts at 1 for the open tag already consumed.
	// Whichever of the next same-name open or close occurs first moves the
	// depth; the close that brings it to 0 ends the element.
	depth := 1
	pos := openEnd
	for {
		next := closeRe.FindStringIndex(html[pos:])
		if next == nil {
			return 0, false
		}
		open := openRe.FindStringIndex(html[pos:])
		if open != nil && open[0] < next[0] {
			depth++
			pos += open[1]
			continue
		}
		depth--
		pos += next[1]
		if depth == 0 {
			return pos, true
		}
	}
}
