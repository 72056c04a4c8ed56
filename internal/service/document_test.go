package service

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blockmail/blockmail/internal/domain"
	"github.com/Blockmail/blockmail/internal/repository"
	"github.com/Blockmail/blockmail/pkg/logger"
)

func TestAssembleDocument(t *testing.T) {
	doc := assembleDocument([]string{"<p>first</p>", "<p>second</p>"}, testSettings(), "Inside: 3 new features & more")

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "max-width:600px")
	assert.Contains(t, doc, "background-color:#f4f4f7")
	assert.Contains(t, doc, "Inside: 3 new features &amp; more")
	assert.Less(t, strings.Index(doc, "first"), strings.Index(doc, "second"))

	// The preheader sits before the visible content.
	assert.Less(t, strings.Index(doc, "display:none"), strings.Index(doc, "<center>"))
}

func TestAssembleDocumentNoPreviewText(t *testing.T) {
	doc := assembleDocument([]string{"<p>only</p>"}, testSettings(), "")
	assert.NotContains(t, doc, "display:none")
}

func TestAssembleDocumentDefaultBackground(t *testing.T) {
	settings := testSettings()
	settings.BackgroundColor = ""
	doc := assembleDocument(nil, settings, "")
	assert.Contains(t, doc, "background-color:"+defaultBodyBackground)
}

func TestRenderBlocksFullDocument(t *testing.T) {
	repo := repository.NewTemplateRepository("", logger.NewTestLogger(t))
	svc := NewRenderService(repo, logger.NewTestLogger(t), false)

	blocks := []domain.SemanticBlock{
		{
			ID:   "b1",
			Kind: domain.BlockKindHero,
			Data: map[string]interface{}{
				"title":    "Big launch",
				"subtitle": "Everything shipped at once",
				"imageUrl": "https://cdn.example.com/hero.png",
				"cta":      map[string]string{"label": "See what's new", "url": "https://example.com/start"},
			},
		},
		{
			ID:   "b2",
			Kind: domain.BlockKindFeatures,
			Data: map[string]interface{}{
				"heading": "Highlights",
				"items": []map[string]string{
					{"title": "Faster sends", "description": "Queues drained twice as fast"},
					{"title": "New editor", "description": "Rewritten from scratch"},
				},
			},
		},
		{
			ID:   "b3",
			Kind: domain.BlockKindCTA,
			Data: map[string]interface{}{
				"style":   "secondary",
				"heading": "Try it today",
				"button":  map[string]string{"label": "Start free trial", "url": "https://example.com/buy"},
			},
		},
		{
			ID:   "b4",
			Kind: domain.BlockKindFooter,
			Data: map[string]interface{}{
				"companyName":    "Acme Corp",
				"address":        "1 Acme Way, Springfield",
				"unsubscribeUrl": "https://example.com/unsub",
				"links": []map[string]string{
					{"label": "Privacy", "url": "https://example.com/privacy"},
					{"label": "Terms", "url": "https://example.com/terms"},
				},
			},
		},
	}

	html := svc.RenderBlocksToHTML(blocks, testSettings(), "Big launch inside")

	// Theme ran over every fragment.
	assert.Contains(t, html, "font-family:'Inter'")
	assert.NotContains(t, html, "Helvetica Neue")
	assert.Contains(t, html, "background-color:#ff0000")
	assert.Contains(t, html, "Big launch inside")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Big launch", doc.Find(`h1[data-slot='hero-title']`).Text())
	assert.Equal(t, "https://example.com/start", doc.Find(`a[data-slot='hero-cta']`).AttrOr("href", ""))
	assert.Equal(t, "See what's new", strings.TrimSpace(doc.Find(`a[data-slot='hero-cta']`).Text()))

	assert.Equal(t, "https://example.com/buy", doc.Find(`a[data-slot='cta-button']`).AttrOr("href", ""))
	assert.Contains(t, doc.Find(`a[data-slot='cta-button']`).Text(), "Start free trial")

	footerLinks := doc.Find("a.footer-link")
	assert.Equal(t, 5, footerLinks.Length(), "templates ship the maximum slot count")
	assert.Equal(t, "Privacy", footerLinks.Eq(0).Text())
	assert.Equal(t, "https://example.com/privacy", footerLinks.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "Terms", footerLinks.Eq(1).Text())
	assert.Equal(t, "Link", footerLinks.Eq(2).Text(), "unpopulated slots keep authored content")

	assert.Equal(t, "https://example.com/unsub", doc.Find(`a[data-slot='footer-unsubscribe']`).AttrOr("href", ""))
	assert.Equal(t, "Unsubscribe", doc.Find(`a[data-slot='footer-unsubscribe']`).Text())
}

func TestRenderBlocksMinified(t *testing.T) {
	repo := repository.NewTemplateRepository("", logger.NewTestLogger(t))
	plain := NewRenderService(repo, logger.NewTestLogger(t), false)
	minified := NewRenderService(repo, logger.NewTestLogger(t), true)

	blocks := []domain.SemanticBlock{
		{ID: "b1", Kind: domain.BlockKindText, Data: map[string]interface{}{"body": "Acme news"}},
	}

	full := plain.RenderBlocksToHTML(blocks, testSettings(), "")
	small := minified.RenderBlocksToHTML(blocks, testSettings(), "")

	assert.Contains(t, small, "Acme news")
	assert.Less(t, len(small), len(full))
}

func TestRenderBlockDeterministic(t *testing.T) {
	repo := repository.NewTemplateRepository("", logger.NewTestLogger(t))
	svc := NewRenderService(repo, logger.NewTestLogger(t), false)

	faker := gofakeit.New(7)
	body := faker.Sentence(12) + ` with "quotes" & <angles>`

	block := domain.SemanticBlock{
		ID:   "b1",
		Kind: domain.BlockKindText,
		Data: map[string]interface{}{"body": body},
	}

	first, err := svc.RenderBlockToHTML(block, testSettings())
	require.NoError(t, err)
	second, err := svc.RenderBlockToHTML(block, testSettings())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "&lt;angles&gt;")
	assert.NotContains(t, first, "<angles>")
}
