package repository

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Blockmail/blockmail/internal/domain"
	"github.com/Blockmail/blockmail/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

type registryKey struct {
	Kind    domain.BlockKind
	Variant string
}

// templateRegistry is the static compile-time table of shipped templates.
// Every repeating slot inside a template is present at the maximum count its
// block data allows; the engine never clones new rows.
var templateRegistry = map[registryKey]string{
	{domain.BlockKindHero, "centered"}:       "templates/hero/centered.html",
	{domain.BlockKindHero, "split"}:          "templates/hero/split.html",
	{domain.BlockKindHeader, "default"}:      "templates/header/default.html",
	{domain.BlockKindFooter, "default"}:      "templates/footer/default.html",
	{domain.BlockKindFeatures, "grid"}:       "templates/features/grid.html",
	{domain.BlockKindFeatures, "list"}:       "templates/features/list.html",
	{domain.BlockKindGallery, "default"}:     "templates/gallery/default.html",
	{domain.BlockKindStats, "default"}:       "templates/stats/default.html",
	{domain.BlockKindPricing, "default"}:     "templates/pricing/default.html",
	{domain.BlockKindCTA, "primary"}:         "templates/cta/primary.html",
	{domain.BlockKindCTA, "secondary"}:       "templates/cta/secondary.html",
	{domain.BlockKindCTA, "outline"}:         "templates/cta/outline.html",
	{domain.BlockKindTestimonial, "default"}: "templates/testimonial/default.html",
	{domain.BlockKindLogos, "default"}:       "templates/logos/default.html",
	{domain.BlockKindText, "default"}:        "templates/text/default.html",
	{domain.BlockKindImage, "default"}:       "templates/image/default.html",
	{domain.BlockKindButton, "default"}:      "templates/button/default.html",
	{domain.BlockKindDivider, "default"}:     "templates/divider/default.html",
	{domain.BlockKindSpacer, "default"}:      "templates/spacer/default.html",
	{domain.BlockKindSocial, "default"}:      "templates/social/default.html",
	{domain.BlockKindList, "default"}:        "templates/list/default.html",
	{domain.BlockKindProduct, "default"}:     "templates/product/default.html",
	{domain.BlockKindQuote, "default"}:       "templates/quote/default.html",
	{domain.BlockKindVideo, "default"}:       "templates/video/default.html",
}

// TemplateRepository serves the embedded template set, optionally shadowed
// by an on-disk directory so operators can restyle templates without a
// rebuild. Only registered (kind, variant) pairs can ever be loaded.
type TemplateRepository struct {
	overrideDir string
	logger      logger.Logger
}

func NewTemplateRepository(overrideDir string, log logger.Logger) *TemplateRepository {
	return &TemplateRepository{
		overrideDir: overrideDir,
		logger:      log,
	}
}

// LoadTemplate returns the raw template HTML for (kind, variant).
func (r *TemplateRepository) LoadTemplate(kind domain.BlockKind, variant string) (string, error) {
	path, ok := templateRegistry[registryKey{Kind: kind, Variant: variant}]
	if !ok {
		return "", fmt.Errorf("no template registered for %s/%s: %w", kind, variant, domain.ErrTemplateNotFound)
	}

	if r.overrideDir != "" {
		rel := strings.TrimPrefix(path, "templates/")
		if content, err := os.ReadFile(filepath.Join(r.overrideDir, filepath.FromSlash(rel))); err == nil {
			return string(content), nil
		}
	}

	content, err := templateFS.ReadFile(path)
	if err != nil {
		r.logger.WithField("path", path).Error(fmt.Sprintf("failed to read embedded template: %v", err))
		return "", fmt.Errorf("failed to load template %s/%s: %w", kind, variant, domain.ErrTemplateNotFound)
	}
	return string(content), nil
}

// RegisteredVariants returns the variants shipped for a block kind, used by
// tests to exercise every registry entry.
func RegisteredVariants(kind domain.BlockKind) []string {
	var variants []string
	for key := range templateRegistry {
		if key.Kind == kind {
			variants = append(variants, key.Variant)
		}
	}
	return variants
}
