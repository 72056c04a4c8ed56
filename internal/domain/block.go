package domain

import (
	"encoding/json"
	"fmt"
)

// BlockKind discriminates the semantic block union. It is immutable for the
// lifetime of a block and selects the applicable mapping set.
type BlockKind string

const (
	BlockKindHero        BlockKind = "hero"
	BlockKindHeader      BlockKind = "header"
	BlockKindFooter      BlockKind = "footer"
	BlockKindFeatures    BlockKind = "features"
	BlockKindGallery     BlockKind = "gallery"
	BlockKindStats       BlockKind = "stats"
	BlockKindPricing     BlockKind = "pricing"
	BlockKindCTA         BlockKind = "cta"
	BlockKindTestimonial BlockKind = "testimonial"
	BlockKindLogos       BlockKind = "logos"
	BlockKindText        BlockKind = "text"
	BlockKindImage       BlockKind = "image"
	BlockKindButton      BlockKind = "button"
	BlockKindDivider     BlockKind = "divider"
	BlockKindSpacer      BlockKind = "spacer"
	BlockKindSocial      BlockKind = "social"
	BlockKindList        BlockKind = "list"
	BlockKindProduct     BlockKind = "product"
	BlockKindQuote       BlockKind = "quote"
	BlockKindVideo       BlockKind = "video"
)

func (k BlockKind) Validate() error {
	switch k {
	case BlockKindHero, BlockKindHeader, BlockKindFooter, BlockKindFeatures,
		BlockKindGallery, BlockKindStats, BlockKindPricing, BlockKindCTA,
		BlockKindTestimonial, BlockKindLogos, BlockKindText, BlockKindImage,
		BlockKindButton, BlockKindDivider, BlockKindSpacer, BlockKindSocial,
		BlockKindList, BlockKindProduct, BlockKindQuote, BlockKindVideo:
		return nil
	}
	return fmt.Errorf("invalid block kind: %s", k)
}

// SemanticBlock is one semantic content unit. Data holds the kind-specific
// payload; use BlockData to access it as the typed struct for the kind.
// Blocks are constructed upstream as fully validated, immutable values and
// are read-only inside the engine.
type SemanticBlock struct {
	ID      string      `json:"id"`
	Kind    BlockKind   `json:"kind"`
	Variant string      `json:"variant,omitempty"`
	Data    interface{} `json:"data"`
}

// DataJSON marshals the block payload once so mapping paths can be resolved
// against it with gjson.
func (b *SemanticBlock) DataJSON() ([]byte, error) {
	if b.Data == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(b.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal block data (ID: %s, Kind: %s): %w", b.ID, b.Kind, err)
	}
	return data, nil
}

// decodeData round-trips Data through JSON into the typed struct for the
// kind; Data usually arrives as map[string]interface{} from an API payload.
func (b *SemanticBlock) decodeData(target interface{}) error {
	if b.Data == nil {
		return nil
	}
	raw, err := json.Marshal(b.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal block data (ID: %s, Kind: %s): %w", b.ID, b.Kind, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal block data into %T (ID: %s, Kind: %s): %w", target, b.ID, b.Kind, err)
	}
	return nil
}

// BlockData returns the payload as the typed data struct for the block kind.
func (b *SemanticBlock) BlockData() (interface{}, error) {
	switch b.Kind {
	case BlockKindHero:
		var d HeroBlockData
		return d, b.decodeData(&d)
	case BlockKindHeader:
		var d HeaderBlockData
		return d, b.decodeData(&d)
	case BlockKindFooter:
		var d FooterBlockData
		return d, b.decodeData(&d)
	case BlockKindFeatures:
		var d FeaturesBlockData
		return d, b.decodeData(&d)
	case BlockKindGallery:
		var d GalleryBlockData
		return d, b.decodeData(&d)
	case BlockKindStats:
		var d StatsBlockData
		return d, b.decodeData(&d)
	case BlockKindPricing:
		var d PricingBlockData
		return d, b.decodeData(&d)
	case BlockKindCTA:
		var d CTABlockData
		return d, b.decodeData(&d)
	case BlockKindTestimonial:
		var d TestimonialBlockData
		return d, b.decodeData(&d)
	case BlockKindLogos:
		var d LogosBlockData
		return d, b.decodeData(&d)
	case BlockKindText:
		var d TextBlockData
		return d, b.decodeData(&d)
	case BlockKindImage:
		var d ImageBlockData
		return d, b.decodeData(&d)
	case BlockKindButton:
		var d ButtonBlockData
		return d, b.decodeData(&d)
	case BlockKindDivider:
		var d DividerBlockData
		return d, b.decodeData(&d)
	case BlockKindSpacer:
		var d SpacerBlockData
		return d, b.decodeData(&d)
	case BlockKindSocial:
		var d SocialBlockData
		return d, b.decodeData(&d)
	case BlockKindList:
		var d ListBlockData
		return d, b.decodeData(&d)
	case BlockKindProduct:
		var d ProductBlockData
		return d, b.decodeData(&d)
	case BlockKindQuote:
		var d QuoteBlockData
		return d, b.decodeData(&d)
	case BlockKindVideo:
		var d VideoBlockData
		return d, b.decodeData(&d)
	default:
		return nil, fmt.Errorf("invalid block kind: %s", b.Kind)
	}
}

// Validate checks the discriminant and the kind-specific payload. This is
// the single exhaustive dispatch over block kinds; everything downstream of
// it is kind-agnostic over path-addressable data.
func (b *SemanticBlock) Validate() error {
	if err := b.Kind.Validate(); err != nil {
		return err
	}
	data, err := b.BlockData()
	if err != nil {
		return err
	}
	if v, ok := data.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid %s block: %w", b.Kind, err)
		}
	}
	return nil
}
