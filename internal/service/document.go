package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/Blockmail/blockmail/internal/domain"
)

const defaultBodyBackground = "#f4f4f7"

// assembleDocument wraps rendered block fragments in the fixed document
// shell: head boilerplate, an optional hidden preheader, and a centered
// container at the configured max width. Fragment order is block order.
func assembleDocument(fragments []string, settings domain.GlobalEmailSettings, previewText string) string {
	background := settings.BackgroundColor
	if background == "" {
		background = defaultBodyBackground
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(`<html lang="en" xmlns="http://www.w3.org/1999/xhtml">` + "\n")
	sb.WriteString("<head>\n")
	sb.WriteString(`<meta charset="utf-8" />` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0" />` + "\n")
	sb.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge" />` + "\n")
	sb.WriteString(`<meta name="x-apple-disable-message-reformatting" />` + "\n")
	sb.WriteString("<title></title>\n")
	sb.WriteString("</head>\n")
	fmt.Fprintf(&sb, `<body style="margin:0;padding:0;background-color:%s;">`+"\n", background)

	if previewText != "" {
		// Preheader: visible in inbox previews, hidden in the rendered email.
		fmt.Fprintf(&sb,
			`<div style="display:none;font-size:1px;color:%s;line-height:1px;max-height:0px;max-width:0px;opacity:0;overflow:hidden;">%s</div>`+"\n",
			background, html.EscapeString(previewText))
	}

	sb.WriteString("<center>\n")
	fmt.Fprintf(&sb,
		`<table role="presentation" width="%d" cellpadding="0" cellspacing="0" border="0" style="width:100%%;max-width:%dpx;background-color:#ffffff;">`+"\n",
		settings.MaxWidth, settings.MaxWidth)
	sb.WriteString("<tr><td>\n")
	for _, fragment := range fragments {
		sb.WriteString(fragment)
		sb.WriteString("\n")
	}
	sb.WriteString("</td></tr>\n")
	sb.WriteString("</table>\n")
	sb.WriteString("</center>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}

// minifyDocument shrinks the final document. It runs on whole documents
// only, never on fragments, so per-fragment guarantees are unaffected.
func minifyDocument(doc string) (string, error) {
	m := minify.New()
	m.AddFunc("text/html", mhtml.Minify)
	return m.String("text/html", doc)
}
