package theme

import (
	"github.com/pterm/pterm"
)

// Theme defines the colour scheme and styling for the application
type Theme struct {
	// Log key colours
	Info  *pterm.Style
	Muted *pterm.Style

	// Component colours
	Success   *pterm.Style
	Highlight *pterm.Style
	URL       *pterm.Style
	Token     *pterm.Style

	// HTTP status colours
	StatusOK          pterm.Color
	StatusRedirect    pterm.Color
	StatusClientError pterm.Color
	StatusServerError pterm.Color
}

// Default returns the default application theme
func Default() *Theme {
	return &Theme{
		Info:  pterm.NewStyle(pterm.FgGreen),
		Muted: pterm.NewStyle(pterm.FgGray),

		Success:   pterm.NewStyle(pterm.FgGreen, pterm.Bold),
		Highlight: pterm.NewStyle(pterm.FgCyan, pterm.Bold),
		URL:       pterm.NewStyle(pterm.FgLightBlue, pterm.Underscore),
		Token:     pterm.NewStyle(pterm.FgYellow),

		StatusOK:          pterm.FgGreen,
		StatusRedirect:    pterm.FgCyan,
		StatusClientError: pterm.FgYellow,
		StatusServerError: pterm.FgRed,
	}
}

// Dark returns a dark theme variant
func Dark() *Theme {
	return &Theme{
		Info:  pterm.NewStyle(pterm.FgLightGreen),
		Muted: pterm.NewStyle(pterm.FgGray),

		Success:   pterm.NewStyle(pterm.FgLightGreen, pterm.Bold),
		Highlight: pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
		URL:       pterm.NewStyle(pterm.FgLightBlue, pterm.Underscore),
		Token:     pterm.NewStyle(pterm.FgLightYellow),

		StatusOK:          pterm.FgLightGreen,
		StatusRedirect:    pterm.FgLightCyan,
		StatusClientError: pterm.FgLightYellow,
		StatusServerError: pterm.FgLightRed,
	}
}

// Light returns a light theme variant
func Light() *Theme {
	return &Theme{
		Info:  pterm.NewStyle(pterm.FgBlack),
		Muted: pterm.NewStyle(pterm.FgGray),

		Success:   pterm.NewStyle(pterm.FgGreen, pterm.Bold),
		Highlight: pterm.NewStyle(pterm.FgBlue, pterm.Bold),
		URL:       pterm.NewStyle(pterm.FgBlue, pterm.Underscore),
		Token:     pterm.NewStyle(pterm.FgMagenta),

		StatusOK:          pterm.FgGreen,
		StatusRedirect:    pterm.FgBlue,
		StatusClientError: pterm.FgRed,
		StatusServerError: pterm.FgRed,
	}
}

// GetTheme returns the appropriate theme based on environment or preference
func GetTheme(name string) *Theme {
	switch name {
	case "dark":
		return Dark()
	case "light":
		return Light()
	default:
		return Default()
	}
}

// ForStatus picks the colour for an HTTP status code
func (t *Theme) ForStatus(code int) pterm.Color {
	switch {
	case code >= 500:
		return t.StatusServerError
	case code >= 400:
		return t.StatusClientError
	case code >= 300:
		return t.StatusRedirect
	default:
		return t.StatusOK
	}
}

// ColourSplash Colours for the splash screen
func ColourSplash(message ...any) string {
	return pterm.LightCyan(message...)
}

// ColourVersion Colours Version numbers, used for the splash screen
func ColourVersion(message ...any) string {
	return pterm.LightYellow(message...)
}

// StyleUrl Colours for URLs and hyperlinks
func StyleUrl(message ...any) string {
	return pterm.LightBlue(message...)
}

// Hyperlink creates a hyperlink in the terminal
func Hyperlink(uri string, text string) string {
	return "\x1b]8;;" + uri + "\x07" + text + "\x1b]8;;\x07" + "\u001b[0m"
}
