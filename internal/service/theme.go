package service

import (
	"regexp"
	"strings"

	"github.com/Blockmail/blockmail/internal/domain"
)

// defaultAccentHexes are the accent colors the shipped templates use for
// button backgrounds. Only these values are ever swapped for the caller's
// primary color; any other color in a template is authored intent and is
// left alone.
var defaultAccentHexes = map[string]bool{
	"#4f46e5": true,
	"#6366f1": true,
	"#4338ca": true,
}

var (
	fontFamilyRe = regexp.MustCompile(`font-family:\s*'[^']*'`)
	anchorTagRe  = regexp.MustCompile(`(?i)<a\s[^>]*>`)
	tdTagRe      = regexp.MustCompile(`(?i)<td\s[^>]*>`)
	bgColorRe    = regexp.MustCompile(`(?i)(background-color:\s*)(#[0-9a-f]{6}|#[0-9a-f]{3})`)
	styleAttrRe  = regexp.MustCompile(`(?i)(style\s*=\s*")([^"]*)"`)
)

// applyTheme is the conservative post-pass run once per block after all
// mappings: global font swap, whitelisted accent swap on anchor backgrounds,
// and white backfill on content cells so a colored outer background does
// not bleed through.
func applyTheme(html string, settings domain.GlobalEmailSettings) string {
	out := fontFamilyRe.ReplaceAllStringFunc(html, func(string) string {
		return "font-family:'" + settings.FontFamily + "'"
	})
	out = swapAnchorAccents(out, settings.PrimaryColor)
	out = backfillCellBackgrounds(out)
	return out
}

// swapAnchorAccents replaces background-color values inside <a> open tags
// with primary, but only when the current value is a known template default.
func swapAnchorAccents(html, primary string) string {
	return anchorTagRe.ReplaceAllStringFunc(html, func(tag string) string {
		return bgColorRe.ReplaceAllStringFunc(tag, func(decl string) string {
			m := bgColorRe.FindStringSubmatch(decl)
			if m == nil || !defaultAccentHexes[strings.ToLower(m[2])] {
				return decl
			}
			return m[1] + primary
		})
	})
}

// backfillCellBackgrounds appends background-color:#ffffff to every
// <td style="..."> whose style declares no background-color of its own.
func backfillCellBackgrounds(html string) string {
	return tdTagRe.ReplaceAllStringFunc(html, func(tag string) string {
		m := styleAttrRe.FindStringSubmatchIndex(tag)
		if m == nil {
			return tag
		}
		style := tag[m[4]:m[5]]
		if strings.Contains(strings.ToLower(style), "background-color") {
			return tag
		}
		appended := style
		if appended != "" && !strings.HasSuffix(appended, ";") {
			appended += ";"
		}
		appended += "background-color:#ffffff;"
		return tag[:m[4]] + appended + tag[m[5]:]
	})
}
