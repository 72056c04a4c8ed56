package service

import (
	"github.com/Blockmail/blockmail/internal/domain"
)

// ref and lit keep the mapping tables readable.
func ref(path string) *domain.ValueRef {
	r := domain.PathRef(path)
	return &r
}

func lit(value string) *domain.ValueRef {
	r := domain.LiteralRef(value)
	return &r
}

// The mapping tables below are authored once, design-time, against the
// shipped template set. Order matters: mappings apply in declaration order
// against the running buffer, so later mappings observe earlier output.

var heroMappings = []domain.ElementMapping{
	{Selector: `img[data-slot="hero-image"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "src", Value: domain.PathRef("imageUrl")},
		{Attribute: "alt", Value: domain.PathRef("title")},
	}},
	{Selector: `h1[data-slot="hero-title"]`, Content: ref("title")},
	{Selector: `p[data-slot="hero-subtitle"]`, Content: ref("subtitle")},
	{Selector: `a[data-slot="hero-cta"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("cta.url")},
	}, Content: ref("cta.label")},
}

var headerMappings = []domain.ElementMapping{
	{Selector: `img[data-slot="header-logo"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "src", Value: domain.PathRef("logoUrl")},
		{Attribute: "alt", Value: domain.PathRef("companyName")},
	}},
	{Selector: `p[data-slot="header-tagline"]`, Content: ref("tagline")},
	{Selector: `a[class*="nav-link"]`, Repeat: true, ArrayPath: "navLinks", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{{Attribute: "href", Value: domain.PathRef("url")}},
		Content:    ref("label"),
	}},
}

var footerMappings = []domain.ElementMapping{
	{Selector: `p[data-slot="footer-company"]`, Content: ref("companyName")},
	{Selector: `p[data-slot="footer-address"]`, Content: ref("address")},
	{Selector: `a[data-slot="footer-unsubscribe"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("unsubscribeUrl")},
	}, Content: lit("Unsubscribe")},
	{Selector: `a[class*="footer-link"]`, Repeat: true, ArrayPath: "links", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{{Attribute: "href", Value: domain.PathRef("url")}},
		Content:    ref("label"),
	}},
}

var featuresMappings = []domain.ElementMapping{
	{Selector: `h2[data-slot="features-heading"]`, Content: ref("heading")},
	{Selector: `img[class*="feature-icon"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{
			{Attribute: "src", Value: domain.PathRef("iconUrl")},
			{Attribute: "alt", Value: domain.PathRef("title")},
		},
	}},
	{Selector: `p[class*="feature-title"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Content: ref("title"),
	}},
	{Selector: `p[class*="feature-desc"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Content: ref("description"),
	}},
}

var galleryMappings = []domain.ElementMapping{
	{Selector: `img[class*="gallery-img"]`, Repeat: true, ArrayPath: "images", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{
			{Attribute: "src", Value: domain.PathRef("url")},
			{Attribute: "alt", Value: domain.PathRef("alt")},
		},
	}},
	{Selector: `p[class*="gallery-caption"]`, Repeat: true, ArrayPath: "images", Item: &domain.ItemMapping{
		Content: ref("caption"),
	}},
}

var statsMappings = []domain.ElementMapping{
	{Selector: `h2[data-slot="stats-heading"]`, Content: ref("heading")},
	{Selector: `p[class*="stat-value"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Content: ref("value"),
	}},
	{Selector: `p[class*="stat-label"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Content: ref("label"),
	}},
}

var pricingMappings = []domain.ElementMapping{
	{Selector: `h2[data-slot="pricing-heading"]`, Content: ref("heading")},
	{Selector: `p[class*="plan-name"]`, Repeat: true, ArrayPath: "plans", Item: &domain.ItemMapping{
		Content: ref("name"),
	}},
	{Selector: `p[class*="plan-price"]`, Repeat: true, ArrayPath: "plans", Item: &domain.ItemMapping{
		Content: ref("price"),
	}},
	{Selector: `p[class*="plan-period"]`, Repeat: true, ArrayPath: "plans", Item: &domain.ItemMapping{
		Content: ref("period"),
	}},
	{Selector: `p[class*="plan-desc"]`, Repeat: true, ArrayPath: "plans", Item: &domain.ItemMapping{
		Content: ref("description"),
	}},
	{Selector: `a[class*="plan-button"]`, Repeat: true, ArrayPath: "plans", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{{Attribute: "href", Value: domain.PathRef("cta.url")}},
		Content:    ref("cta.label"),
	}},
}

// ctaMappings is shared by all three CTA styles; the style only selects the
// template file.
var ctaMappings = []domain.ElementMapping{
	{Selector: `h2[data-slot="cta-heading"]`, Content: ref("heading")},
	{Selector: `p[data-slot="cta-body"]`, Content: ref("body")},
	{Selector: `a[data-slot="cta-button"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("button.url")},
	}, Content: ref("button.label")},
}

var testimonialMappings = []domain.ElementMapping{
	{Selector: `img[data-slot="testimonial-avatar"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "src", Value: domain.PathRef("avatarUrl")},
		{Attribute: "alt", Value: domain.PathRef("author")},
	}},
	{Selector: `p[data-slot="testimonial-quote"]`, Content: ref("quote")},
	{Selector: `p[data-slot="testimonial-author"]`, Content: ref("author")},
	{Selector: `p[data-slot="testimonial-role"]`, Content: ref("role")},
}

var logosMappings = []domain.ElementMapping{
	{Selector: `p[data-slot="logos-heading"]`, Content: ref("heading")},
	{Selector: `img[class*="logo-img"]`, Repeat: true, ArrayPath: "logos", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{
			{Attribute: "src", Value: domain.PathRef("url")},
			{Attribute: "alt", Value: domain.PathRef("alt")},
		},
	}},
}

var textMappings = []domain.ElementMapping{
	{Selector: `p[data-slot="text-body"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "align", Value: domain.PathRef("align")},
	}, Content: ref("body")},
}

var imageMappings = []domain.ElementMapping{
	{Selector: `a[data-slot="image-link"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("linkUrl")},
	}},
	{Selector: `img[data-slot="image-img"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "src", Value: domain.PathRef("url")},
		{Attribute: "alt", Value: domain.PathRef("alt")},
	}},
}

var buttonMappings = []domain.ElementMapping{
	{Selector: `a[data-slot="button-link"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("url")},
	}, Content: ref("label")},
}

var dividerMappings = []domain.ElementMapping{
	{Selector: `td[data-slot="divider-line"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "bgcolor", Value: domain.PathRef("color")},
	}},
}

var spacerMappings = []domain.ElementMapping{
	{Selector: `td[data-slot="spacer-cell"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "height", Value: domain.PathRef("height")},
	}},
}

var socialMappings = []domain.ElementMapping{
	{Selector: `a[class*="social-link"]`, Repeat: true, ArrayPath: "links", Item: &domain.ItemMapping{
		Attributes: []domain.AttributeMapping{{Attribute: "href", Value: domain.PathRef("url")}},
		Content:    ref("network"),
	}},
}

var listMappings = []domain.ElementMapping{
	{Selector: `h2[data-slot="list-heading"]`, Content: ref("heading")},
	{Selector: `td[class*="list-number"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Content: ref(domain.IndexPath),
	}},
	{Selector: `p[class*="list-text"]`, Repeat: true, ArrayPath: "items", Item: &domain.ItemMapping{
		Content: ref("text"),
	}},
}

var productMappings = []domain.ElementMapping{
	{Selector: `img[data-slot="product-img"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "src", Value: domain.PathRef("imageUrl")},
		{Attribute: "alt", Value: domain.PathRef("name")},
	}},
	{Selector: `p[data-slot="product-name"]`, Content: ref("name")},
	{Selector: `p[data-slot="product-price"]`, Content: ref("price")},
	{Selector: `p[data-slot="product-desc"]`, Content: ref("description")},
	{Selector: `a[data-slot="product-buy"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("buy.url")},
	}, Content: ref("buy.label")},
}

var quoteMappings = []domain.ElementMapping{
	{Selector: `p[data-slot="quote-text"]`, Content: ref("text")},
	{Selector: `p[data-slot="quote-attribution"]`, Content: ref("attribution")},
}

var videoMappings = []domain.ElementMapping{
	{Selector: `a[data-slot="video-link"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "href", Value: domain.PathRef("videoUrl")},
	}},
	{Selector: `img[data-slot="video-thumb"]`, Attributes: []domain.AttributeMapping{
		{Attribute: "src", Value: domain.PathRef("thumbnailUrl")},
		{Attribute: "alt", Value: domain.PathRef("caption")},
	}},
	{Selector: `p[data-slot="video-caption"]`, Content: ref("caption")},
}

var mappingTables = map[domain.BlockKind]map[string][]domain.ElementMapping{
	domain.BlockKindHero:        {"centered": heroMappings, "split": heroMappings},
	domain.BlockKindHeader:      {"default": headerMappings},
	domain.BlockKindFooter:      {"default": footerMappings},
	domain.BlockKindFeatures:    {"grid": featuresMappings, "list": featuresMappings},
	domain.BlockKindGallery:     {"default": galleryMappings},
	domain.BlockKindStats:       {"default": statsMappings},
	domain.BlockKindPricing:     {"default": pricingMappings},
	domain.BlockKindCTA:         {"default": ctaMappings},
	domain.BlockKindTestimonial: {"default": testimonialMappings},
	domain.BlockKindLogos:       {"default": logosMappings},
	domain.BlockKindText:        {"default": textMappings},
	domain.BlockKindImage:       {"default": imageMappings},
	domain.BlockKindButton:      {"default": buttonMappings},
	domain.BlockKindDivider:     {"default": dividerMappings},
	domain.BlockKindSpacer:      {"default": spacerMappings},
	domain.BlockKindSocial:      {"default": socialMappings},
	domain.BlockKindList:        {"default": listMappings},
	domain.BlockKindProduct:     {"default": productMappings},
	domain.BlockKindQuote:       {"default": quoteMappings},
	domain.BlockKindVideo:       {"default": videoMappings},
}

// MappingsFor returns the authored mapping table for (kind, variant).
func MappingsFor(kind domain.BlockKind, variant string) ([]domain.ElementMapping, bool) {
	variants, ok := mappingTables[kind]
	if !ok {
		return nil, false
	}
	mappings, ok := variants[variant]
	return mappings, ok
}
