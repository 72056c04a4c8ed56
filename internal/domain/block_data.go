package domain

import (
	"fmt"

	"github.com/asaskevich/govalidator"
)

// Repeating arrays are bounded: the engine never clones new template rows,
// so templates ship with the maximum supported repeat count and validation
// rejects anything beyond it.
const (
	MaxNavLinks      = 5
	MaxFooterLinks   = 5
	MaxFeatureItems  = 6
	MaxGalleryImages = 6
	MaxStatItems     = 4
	MaxPricingPlans  = 3
	MaxLogoItems     = 6
	MaxSocialLinks   = 5
	MaxListItems     = 8
)

// LinkData is a labelled URL used by several block kinds.
type LinkData struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (l LinkData) Validate() error {
	if l.Label == "" {
		return fmt.Errorf("link label is required")
	}
	if l.URL == "" || !govalidator.IsURL(l.URL) {
		return fmt.Errorf("link url is invalid: %q", l.URL)
	}
	return nil
}

type HeroBlockData struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	ImageURL string    `json:"imageUrl,omitempty"`
	CTA      *LinkData `json:"cta,omitempty"`
}

func (d HeroBlockData) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if d.ImageURL != "" && !govalidator.IsURL(d.ImageURL) {
		return fmt.Errorf("imageUrl is invalid: %q", d.ImageURL)
	}
	if d.CTA != nil {
		return d.CTA.Validate()
	}
	return nil
}

type HeaderBlockData struct {
	CompanyName string     `json:"companyName"`
	LogoURL     string     `json:"logoUrl,omitempty"`
	Tagline     string     `json:"tagline,omitempty"`
	NavLinks    []LinkData `json:"navLinks,omitempty"`
}

func (d HeaderBlockData) Validate() error {
	if d.CompanyName == "" {
		return fmt.Errorf("companyName is required")
	}
	if d.LogoURL != "" && !govalidator.IsURL(d.LogoURL) {
		return fmt.Errorf("logoUrl is invalid: %q", d.LogoURL)
	}
	if len(d.NavLinks) > MaxNavLinks {
		return fmt.Errorf("navLinks length must be at most %d", MaxNavLinks)
	}
	for i, l := range d.NavLinks {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("navLinks[%d]: %w", i, err)
		}
	}
	return nil
}

type FooterBlockData struct {
	CompanyName    string     `json:"companyName"`
	Address        string     `json:"address,omitempty"`
	UnsubscribeURL string     `json:"unsubscribeUrl,omitempty"`
	Links          []LinkData `json:"links,omitempty"`
}

func (d FooterBlockData) Validate() error {
	if d.CompanyName == "" {
		return fmt.Errorf("companyName is required")
	}
	if d.UnsubscribeURL != "" && !govalidator.IsURL(d.UnsubscribeURL) {
		return fmt.Errorf("unsubscribeUrl is invalid: %q", d.UnsubscribeURL)
	}
	if len(d.Links) > MaxFooterLinks {
		return fmt.Errorf("links length must be at most %d", MaxFooterLinks)
	}
	for i, l := range d.Links {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("links[%d]: %w", i, err)
		}
	}
	return nil
}

type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
}

type FeaturesBlockData struct {
	Heading string        `json:"heading,omitempty"`
	Items   []FeatureItem `json:"items"`
}

func (d FeaturesBlockData) Validate() error {
	if len(d.Items) == 0 {
		return fmt.Errorf("items is required")
	}
	if len(d.Items) > MaxFeatureItems {
		return fmt.Errorf("items length must be at most %d", MaxFeatureItems)
	}
	for i, item := range d.Items {
		if item.Title == "" {
			return fmt.Errorf("items[%d]: title is required", i)
		}
		if item.IconURL != "" && !govalidator.IsURL(item.IconURL) {
			return fmt.Errorf("items[%d]: iconUrl is invalid: %q", i, item.IconURL)
		}
	}
	return nil
}

type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type GalleryBlockData struct {
	Images []GalleryImage `json:"images"`
}

func (d GalleryBlockData) Validate() error {
	if len(d.Images) == 0 {
		return fmt.Errorf("images is required")
	}
	if len(d.Images) > MaxGalleryImages {
		return fmt.Errorf("images length must be at most %d", MaxGalleryImages)
	}
	for i, img := range d.Images {
		if img.URL == "" || !govalidator.IsURL(img.URL) {
			return fmt.Errorf("images[%d]: url is invalid: %q", i, img.URL)
		}
	}
	return nil
}

type StatItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type StatsBlockData struct {
	Heading string     `json:"heading,omitempty"`
	Items   []StatItem `json:"items"`
}

func (d StatsBlockData) Validate() error {
	if len(d.Items) == 0 {
		return fmt.Errorf("items is required")
	}
	if len(d.Items) > MaxStatItems {
		return fmt.Errorf("items length must be at most %d", MaxStatItems)
	}
	for i, item := range d.Items {
		if item.Value == "" || item.Label == "" {
			return fmt.Errorf("items[%d]: value and label are required", i)
		}
	}
	return nil
}

type PricingPlan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description,omitempty"`
	CTA         LinkData `json:"cta"`
}

type PricingBlockData struct {
	Heading string        `json:"heading,omitempty"`
	Plans   []PricingPlan `json:"plans"`
}

func (d PricingBlockData) Validate() error {
	if len(d.Plans) == 0 {
		return fmt.Errorf("plans is required")
	}
	if len(d.Plans) > MaxPricingPlans {
		return fmt.Errorf("plans length must be at most %d", MaxPricingPlans)
	}
	for i, plan := range d.Plans {
		if plan.Name == "" || plan.Price == "" {
			return fmt.Errorf("plans[%d]: name and price are required", i)
		}
		if err := plan.CTA.Validate(); err != nil {
			return fmt.Errorf("plans[%d]: %w", i, err)
		}
	}
	return nil
}

// CTAStyle values are external names; all three share one mapping internally.
const (
	CTAStylePrimary   = "primary"
	CTAStyleSecondary = "secondary"
	CTAStyleOutline   = "outline"
)

type CTABlockData struct {
	Style   string   `json:"style,omitempty"`
	Heading string   `json:"heading"`
	Body    string   `json:"body,omitempty"`
	Button  LinkData `json:"button"`
}

func (d CTABlockData) Validate() error {
	switch d.Style {
	case "", CTAStylePrimary, CTAStyleSecondary, CTAStyleOutline:
	default:
		return fmt.Errorf("style must be one of primary, secondary, outline: %q", d.Style)
	}
	if d.Heading == "" {
		return fmt.Errorf("heading is required")
	}
	return d.Button.Validate()
}

type TestimonialBlockData struct {
	Quote     string `json:"quote"`
	Author    string `json:"author"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (d TestimonialBlockData) Validate() error {
	if d.Quote == "" || d.Author == "" {
		return fmt.Errorf("quote and author are required")
	}
	if d.AvatarURL != "" && !govalidator.IsURL(d.AvatarURL) {
		return fmt.Errorf("avatarUrl is invalid: %q", d.AvatarURL)
	}
	return nil
}

type LogoItem struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type LogosBlockData struct {
	Heading string     `json:"heading,omitempty"`
	Logos   []LogoItem `json:"logos"`
}

func (d LogosBlockData) Validate() error {
	if len(d.Logos) == 0 {
		return fmt.Errorf("logos is required")
	}
	if len(d.Logos) > MaxLogoItems {
		return fmt.Errorf("logos length must be at most %d", MaxLogoItems)
	}
	for i, logo := range d.Logos {
		if logo.URL == "" || !govalidator.IsURL(logo.URL) {
			return fmt.Errorf("logos[%d]: url is invalid: %q", i, logo.URL)
		}
	}
	return nil
}

type TextBlockData struct {
	Body  string `json:"body"`
	Align string `json:"align,omitempty"`
}

func (d TextBlockData) Validate() error {
	if d.Body == "" {
		return fmt.Errorf("body is required")
	}
	switch d.Align {
	case "", "left", "center", "right":
		return nil
	}
	return fmt.Errorf("align must be one of left, center, right: %q", d.Align)
}

type ImageBlockData struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	LinkURL string `json:"linkUrl,omitempty"`
}

func (d ImageBlockData) Validate() error {
	if d.URL == "" || !govalidator.IsURL(d.URL) {
		return fmt.Errorf("url is invalid: %q", d.URL)
	}
	if d.LinkURL != "" && !govalidator.IsURL(d.LinkURL) {
		return fmt.Errorf("linkUrl is invalid: %q", d.LinkURL)
	}
	return nil
}

type ButtonBlockData struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (d ButtonBlockData) Validate() error {
	return LinkData{Label: d.Label, URL: d.URL}.Validate()
}

type DividerBlockData struct {
	Color string `json:"color,omitempty"`
}

func (d DividerBlockData) Validate() error {
	if d.Color != "" && !govalidator.IsHexcolor(d.Color) {
		return fmt.Errorf("color must be a hex color: %q", d.Color)
	}
	return nil
}

type SpacerBlockData struct {
	Height int `json:"height"`
}

func (d SpacerBlockData) Validate() error {
	if d.Height < 4 || d.Height > 160 {
		return fmt.Errorf("height must be between 4 and 160: %d", d.Height)
	}
	return nil
}

type SocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type SocialBlockData struct {
	Links []SocialLink `json:"links"`
}

func (d SocialBlockData) Validate() error {
	if len(d.Links) == 0 {
		return fmt.Errorf("links is required")
	}
	if len(d.Links) > MaxSocialLinks {
		return fmt.Errorf("links length must be at most %d", MaxSocialLinks)
	}
	for i, l := range d.Links {
		if l.Network == "" {
			return fmt.Errorf("links[%d]: network is required", i)
		}
		if l.URL == "" || !govalidator.IsURL(l.URL) {
			return fmt.Errorf("links[%d]: url is invalid: %q", i, l.URL)
		}
	}
	return nil
}

type ListItem struct {
	Text string `json:"text"`
}

type ListBlockData struct {
	Heading string     `json:"heading,omitempty"`
	Items   []ListItem `json:"items"`
}

func (d ListBlockData) Validate() error {
	if len(d.Items) == 0 {
		return fmt.Errorf("items is required")
	}
	if len(d.Items) > MaxListItems {
		return fmt.Errorf("items length must be at most %d", MaxListItems)
	}
	for i, item := range d.Items {
		if item.Text == "" {
			return fmt.Errorf("items[%d]: text is required", i)
		}
	}
	return nil
}

type ProductBlockData struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Buy         LinkData `json:"buy"`
}

func (d ProductBlockData) Validate() error {
	if d.Name == "" || d.Price == "" {
		return fmt.Errorf("name and price are required")
	}
	if d.ImageURL != "" && !govalidator.IsURL(d.ImageURL) {
		return fmt.Errorf("imageUrl is invalid: %q", d.ImageURL)
	}
	return d.Buy.Validate()
}

type QuoteBlockData struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution,omitempty"`
}

func (d QuoteBlockData) Validate() error {
	if d.Text == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

type VideoBlockData struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	VideoURL     string `json:"videoUrl"`
	Caption      string `json:"caption,omitempty"`
}

func (d VideoBlockData) Validate() error {
	if d.ThumbnailURL == "" || !govalidator.IsURL(d.ThumbnailURL) {
		return fmt.Errorf("thumbnailUrl is invalid: %q", d.ThumbnailURL)
	}
	if d.VideoURL == "" || !govalidator.IsURL(d.VideoURL) {
		return fmt.Errorf("videoUrl is invalid: %q", d.VideoURL)
	}
	return nil
}
