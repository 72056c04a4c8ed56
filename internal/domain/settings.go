package domain

import (
	"fmt"

	"github.com/asaskevich/govalidator"
)

// GlobalEmailSettings carries the theme applied across every block of a
// rendered email.
type GlobalEmailSettings struct {
	FontFamily      string `json:"fontFamily"`
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	MaxWidth        int    `json:"maxWidth"`
}

func (s GlobalEmailSettings) Validate() error {
	if s.FontFamily == "" {
		return fmt.Errorf("invalid settings: fontFamily is required")
	}
	if s.PrimaryColor == "" || !govalidator.IsHexcolor(s.PrimaryColor) {
		return fmt.Errorf("invalid settings: primaryColor must be a hex color: %q", s.PrimaryColor)
	}
	if s.BackgroundColor != "" && !govalidator.IsHexcolor(s.BackgroundColor) {
		return fmt.Errorf("invalid settings: backgroundColor must be a hex color: %q", s.BackgroundColor)
	}
	if s.MaxWidth < 320 || s.MaxWidth > 800 {
		return fmt.Errorf("invalid settings: maxWidth must be between 320 and 800: %d", s.MaxWidth)
	}
	return nil
}
