package htmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateAttribute(t *testing.T) {
	tests := []struct {
		name    string
		element string
		attr    string
		value   string
		want    string
	}{
		{
			name:    "rewrites existing attribute",
			element: `<img src="old.png" alt="Old" />`,
			attr:    "src",
			value:   "https://cdn.example.com/new.png",
			want:    `<img src="https://cdn.example.com/new.png" alt="Old" />`,
		},
		{
			name:    "injects missing attribute",
			element: `<p style="margin:0">hi</p>`,
			attr:    "align",
			value:   "center",
			want:    `<p style="margin:0" align="center">hi</p>`,
		},
		{
			name:    "rewrites case-insensitively",
			element: `<img SRC="old.png">`,
			attr:    "src",
			value:   "new.png",
			want:    `<img SRC="new.png">`,
		},
		{
			name:    "escapes the value",
			element: `<a href="#">x</a>`,
			attr:    "href",
			value:   `https://example.com/?a=1&b="2"`,
			want:    `<a href="https://example.com/?a=1&amp;b=&#34;2&#34;">x</a>`,
		},
		{
			name:    "dollar signs survive verbatim",
			element: `<img src="old.png">`,
			attr:    "src",
			value:   "https://example.com/$1${2}",
			want:    `<img src="https://example.com/$1${2}">`,
		},
		{
			name:    "only the open tag is touched",
			element: `<td bgcolor="#fff"><img bgcolor="#000"></td>`,
			attr:    "bgcolor",
			value:   "#e5e7eb",
			want:    `<td bgcolor="#e5e7eb"><img bgcolor="#000"></td>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpdateAttribute(tt.element, tt.attr, tt.value))
		})
	}
}

func TestUpdateContent(t *testing.T) {
	tests := []struct {
		name    string
		element string
		tag     string
		value   string
		want    string
	}{
		{
			name:    "replaces simple text content",
			element: `<p style="margin:0">PLACEHOLDER</p>`,
			tag:     "p",
			value:   "Acme Corp",
			want:    `<p style="margin:0">Acme Corp</p>`,
		},
		{
			name:    "replaces nested markup wholesale",
			element: `<p><b>old</b> text</p>`,
			tag:     "p",
			value:   "new",
			want:    `<p>new</p>`,
		},
		{
			name:    "targets the label span in button markup",
			element: `<a href="#" style="color:#ffffff;"><span style="mso-hide:all;">Get started</span></a>`,
			tag:     "a",
			value:   "Start free trial",
			want:    `<a href="#" style="color:#ffffff;"><span style="mso-hide:all;">Start free trial</span></a>`,
		},
		{
			name:    "skips spans inside outlook conditionals",
			element: `<a href="#"><!--[if mso]><span>shim</span><![endif]--><span>Label</span></a>`,
			tag:     "a",
			value:   "Buy now",
			want:    `<a href="#"><!--[if mso]><span>shim</span><![endif]--><span>Buy now</span></a>`,
		},
		{
			name:    "skips empty spans",
			element: `<a href="#"><span></span><span>Label</span></a>`,
			tag:     "a",
			value:   "Go",
			want:    `<a href="#"><span></span><span>Go</span></a>`,
		},
		{
			name:    "escapes markup in the value",
			element: `<p>x</p>`,
			tag:     "p",
			value:   `<script>alert(1)</script>`,
			want:    `<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>`,
		},
		{
			name:    "uses the last close tag for nested same-name elements",
			element: `<div><div>a</div><div>b</div></div>`,
			tag:     "div",
			value:   "flat",
			want:    `<div>flat</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpdateContent(tt.element, tt.tag, tt.value))
		})
	}
}
