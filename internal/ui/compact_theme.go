package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/video-tracker/internal/model"
)

// Status indicator colors, matching the selector highlight of each status
var (
	ColorNotStarted = color.RGBA{R: 255, G: 87, B: 34, A: 255}  // Deep orange
	ColorInProgress = color.RGBA{R: 33, G: 150, B: 243, A: 255} // Blue
	ColorCompleted  = color.RGBA{R: 76, G: 175, B: 80, A: 255}  // Green
)

// StatusColor returns the indicator color of a status
func StatusColor(status model.WatchStatus) color.Color {
	switch status {
	case model.StatusInProgress:
		return ColorInProgress
	case model.StatusCompleted:
		return ColorCompleted
	default:
		return ColorNotStarted
	}
}

// CompactTheme defines a compact dark-friendly theme with reduced padding
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorCompleted
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return ColorInProgress
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 30, G: 30, B: 30, A: 255} // #1e1e1e
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 45, G: 45, B: 45, A: 255} // #2d2d2d
		}
	case theme.ColorNameHover:
		if variant == theme.VariantDark {
			return color.RGBA{R: 58, G: 58, B: 58, A: 255} // #3a3a3a
		}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	return theme.DefaultTheme().Size(name)
}
