package service

import (
	"github.com/Blockmail/blockmail/internal/domain"
)

// defaultVariants picks the template used when a block declares none.
var defaultVariants = map[domain.BlockKind]string{
	domain.BlockKindHero:        "centered",
	domain.BlockKindHeader:      "default",
	domain.BlockKindFooter:      "default",
	domain.BlockKindFeatures:    "grid",
	domain.BlockKindGallery:     "default",
	domain.BlockKindStats:       "default",
	domain.BlockKindPricing:     "default",
	domain.BlockKindCTA:         "primary",
	domain.BlockKindTestimonial: "default",
	domain.BlockKindLogos:       "default",
	domain.BlockKindText:        "default",
	domain.BlockKindImage:       "default",
	domain.BlockKindButton:      "default",
	domain.BlockKindDivider:     "default",
	domain.BlockKindSpacer:      "default",
	domain.BlockKindSocial:      "default",
	domain.BlockKindList:        "default",
	domain.BlockKindProduct:     "default",
	domain.BlockKindQuote:       "default",
	domain.BlockKindVideo:       "default",
}

// resolveVariants returns the template-lookup variant and the mapping-lookup
// variant for a block. The two differ only through aliasing: the CTA style
// selects one of three template files while all three share the "default"
// mapping table.
func resolveVariants(block domain.SemanticBlock) (templateVariant, mappingVariant string) {
	templateVariant = block.Variant

	if templateVariant == "" && block.Kind == domain.BlockKindCTA {
		if data, err := block.BlockData(); err == nil {
			if cta, ok := data.(domain.CTABlockData); ok && cta.Style != "" {
				templateVariant = cta.Style
			}
		}
	}
	if templateVariant == "" {
		templateVariant = defaultVariants[block.Kind]
	}

	mappingVariant = templateVariant
	if block.Kind == domain.BlockKindCTA {
		mappingVariant = "default"
	}
	return templateVariant, mappingVariant
}
