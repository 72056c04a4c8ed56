package htmlscan

import (
	"html"
	"regexp"
	"strings"
)

var (
	// leafSpanRe matches spans with no nested tags inside; any match is by
	// construction an innermost span.
	leafSpanRe = regexp.MustCompile(`(?is)<span[^>]*>([^<]*)</span>`)

	// conditionalRe matches Outlook/MSO conditional comment shims, e.g.
	// <!--[if mso]> ... <![endif]-->.
	conditionalRe = regexp.MustCompile(`(?s)<!--\[if[^\]]*\]>.*?<!\[endif\]-->`)
)

// UpdateAttribute returns elementHTML with attr set to value on its open
// tag. An existing assignment is rewritten in place (case-insensitive);
// otherwise the attribute is injected before the tag's closing '>'. The
// value is HTML-escaped.
func UpdateAttribute(elementHTML, attr, value string) string {
	gt := strings.Index(elementHTML, ">")
	if gt < 0 {
		return elementHTML
	}
	escaped := html.EscapeString(value)
	openTag := elementHTML[:gt+1]
	rest := elementHTML[gt+1:]

	re := regexp.MustCompile(`(?i)(` + regexp.QuoteMeta(attr) + `\s*=\s*")[^"]*"`)
	if m := re.FindStringSubmatchIndex(openTag); m != nil {
		// m[3] is the end of the group capturing up to the opening quote;
		// the old value runs from there to the closing quote at m[1]-1.
		return openTag[:m[3]] + escaped + openTag[m[1]-1:] + rest
	}

	insert := ` ` + attr + `="` + escaped + `"`
	if strings.HasSuffix(openTag, "/>") {
		return openTag[:len(openTag)-2] + insert + "/>" + rest
	}
	return openTag[:len(openTag)-1] + insert + ">" + rest
}

// UpdateContent returns elementHTML with its text content replaced by the
// HTML-escaped value.
//
// Elements carrying nested span wrappers (hand-authored button markup nests
// the label in a span inside Outlook conditional shims) have only the inner
// text of the innermost non-empty span replaced, skipping spans inside MSO
// conditional comments. Simple elements have everything between the first
// '>' and the last matching close tag replaced.
func UpdateContent(elementHTML, tag, value string) string {
	escaped := html.EscapeString(value)

	if span := innermostSpanText(elementHTML); span != nil {
		return elementHTML[:span[0]] + escaped + elementHTML[span[1]:]
	}

	gt := strings.Index(elementHTML, ">")
	if gt < 0 {
		return elementHTML
	}
	locs := closeTagRe(tag).FindAllStringIndex(elementHTML, -1)
	if locs == nil {
		return elementHTML
	}
	last := locs[len(locs)-1]
	return elementHTML[:gt+1] + escaped + elementHTML[last[0]:]
}

// innermostSpanText returns the [start, end) span of the inner text of the
// first leaf span with non-empty content outside MSO conditional comments,
// or nil when the element has no such span.
func innermostSpanText(elementHTML string) []int {
	conditionals := conditionalRe.FindAllStringIndex(elementHTML, -1)
	for _, m := range leafSpanRe.FindAllStringSubmatchIndex(elementHTML, -1) {
		if strings.TrimSpace(elementHTML[m[2]:m[3]]) == "" {
			continue
		}
		if insideAny(conditionals, m[0]) {
			continue
		}
		return []int{m[2], m[3]}
	}
	return nil
}

func insideAny(ranges [][]int, offset int) bool {
	for _, r := range ranges {
		if offset >= r[0] && offset < r[1] {
			return true
		}
	}
	return false
}
