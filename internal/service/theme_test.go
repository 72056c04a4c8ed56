package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyThemeFontSwap(t *testing.T) {
	in := `<p style="font-family:'Helvetica Neue',Helvetica,Arial,sans-serif;font-size:15px;">x</p>`
	got := applyTheme(in, testSettings())

	assert.Contains(t, got, "font-family:'Inter',Helvetica,Arial,sans-serif")
	assert.NotContains(t, got, "Helvetica Neue")
}

func TestSwapAnchorAccents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "whitelisted anchor background is swapped",
			in:   `<a href="#" style="background-color:#4f46e5;color:#ffffff;">Go</a>`,
			want: `<a href="#" style="background-color:#ff0000;color:#ffffff;">Go</a>`,
		},
		{
			name: "secondary accent is swapped too",
			in:   `<a href="#" style="background-color:#6366f1;">Go</a>`,
			want: `<a href="#" style="background-color:#ff0000;">Go</a>`,
		},
		{
			name: "non-whitelisted anchor background stays",
			in:   `<a href="#" style="background-color:#123456;">Go</a>`,
			want: `<a href="#" style="background-color:#123456;">Go</a>`,
		},
		{
			name: "accent hex outside anchors stays",
			in:   `<p style="color:#4f46e5;">x</p>`,
			want: `<p style="color:#4f46e5;">x</p>`,
		},
		{
			name: "text color inside anchor stays",
			in:   `<a href="#" style="color:#4f46e5;text-decoration:underline;">link</a>`,
			want: `<a href="#" style="color:#4f46e5;text-decoration:underline;">link</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, swapAnchorAccents(tt.in, "#ff0000"))
		})
	}
}

func TestBackfillCellBackgrounds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "style without background gets white",
			in:   `<td style="padding:8px;">x</td>`,
			want: `<td style="padding:8px;background-color:#ffffff;">x</td>`,
		},
		{
			name: "missing trailing semicolon is handled",
			in:   `<td style="padding:8px">x</td>`,
			want: `<td style="padding:8px;background-color:#ffffff;">x</td>`,
		},
		{
			name: "existing background is kept",
			in:   `<td style="padding:8px;background-color:#111827;">x</td>`,
			want: `<td style="padding:8px;background-color:#111827;">x</td>`,
		},
		{
			name: "cell without a style attribute stays",
			in:   `<td align="center">x</td>`,
			want: `<td align="center">x</td>`,
		},
		{
			name: "bare cell stays",
			in:   `<td>x</td>`,
			want: `<td>x</td>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backfillCellBackgrounds(tt.in))
		})
	}
}
