package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTag   string
		wantPreds []Predicate
	}{
		{
			name:    "bare tag",
			input:   "a",
			wantTag: "a",
		},
		{
			name:    "equals predicate",
			input:   `img[data-slot="hero-image"]`,
			wantTag: "img",
			wantPreds: []Predicate{
				{Attribute: "data-slot", Op: OpEquals, Value: "hero-image"},
			},
		},
		{
			name:    "contains predicate",
			input:   `td[class*="feature"]`,
			wantTag: "td",
			wantPreds: []Predicate{
				{Attribute: "class", Op: OpContains, Value: "feature"},
			},
		},
		{
			name:    "presence predicate",
			input:   `a[href]`,
			wantTag: "a",
			wantPreds: []Predicate{
				{Attribute: "href", Op: OpPresent},
			},
		},
		{
			name:    "multiple predicates",
			input:   `a[href][class*="btn"]`,
			wantTag: "a",
			wantPreds: []Predicate{
				{Attribute: "href", Op: OpPresent},
				{Attribute: "class", Op: OpContains, Value: "btn"},
			},
		},
		{
			name:    "descendant selector collapses to rightmost",
			input:   "table td a",
			wantTag: "a",
		},
		{
			name:    "space inside brackets does not split",
			input:   `table td[data-x="a b"]`,
			wantTag: "td",
			wantPreds: []Predicate{
				{Attribute: "data-x", Op: OpEquals, Value: "a b"},
			},
		},
		{
			name:    "grammar mismatch falls back to bare tag",
			input:   "div.foo",
			wantTag: "div.foo",
		},
		{
			name:    "uppercase tag is lowered",
			input:   "IMG[src]",
			wantTag: "img",
			wantPreds: []Predicate{
				{Attribute: "src", Op: OpPresent},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Parse(tt.input)
			assert.Equal(t, tt.wantTag, sel.Tag)
			assert.Equal(t, tt.wantPreds, sel.Predicates)
		})
	}
}

func TestMatchesTag(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		openTag  string
		want     bool
	}{
		{
			name:     "equals match",
			selector: `img[data-slot="hero-image"]`,
			openTag:  `<img src="x.png" data-slot="hero-image">`,
			want:     true,
		},
		{
			name:     "equals mismatch",
			selector: `img[data-slot="hero-image"]`,
			openTag:  `<img src="x.png" data-slot="hero-title">`,
			want:     false,
		},
		{
			name:     "contains match",
			selector: `td[class*="feature"]`,
			openTag:  `<td class="cell feature-title">`,
			want:     true,
		},
		{
			name:     "contains mismatch",
			selector: `td[class*="feature"]`,
			openTag:  `<td class="cell plan-name">`,
			want:     false,
		},
		{
			name:     "presence match",
			selector: `a[href]`,
			openTag:  `<a href="#">`,
			want:     true,
		},
		{
			name:     "presence mismatch",
			selector: `a[href]`,
			openTag:  `<a name="anchor">`,
			want:     false,
		},
		{
			name:     "multi-line attributes are normalized",
			selector: `img[data-slot="hero-image"]`,
			openTag:  "<img\n  src=\"x.png\"\n  data-slot=\"hero-image\"\n/>",
			want:     true,
		},
		{
			name:     "attribute names compare case-insensitively",
			selector: `img[data-slot="hero-image"]`,
			openTag:  `<img DATA-SLOT="hero-image">`,
			want:     true,
		},
		{
			name:     "all predicates must hold",
			selector: `a[href][class*="btn"]`,
			openTag:  `<a href="#" class="link">`,
			want:     false,
		},
		{
			name:     "no predicates always matches",
			selector: "p",
			openTag:  `<p style="margin:0">`,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Parse(tt.selector)
			require.NotEmpty(t, sel.Tag)
			assert.Equal(t, tt.want, sel.MatchesTag(tt.openTag))
		})
	}
}
