package version

import (
	"fmt"
	"log"
	"strings"

	"github.com/thushan/ctoken/theme"
)

var (
	Name        = "ctoken"
	ShortName   = "ctoken"
	Authors     = "Thushan Fernando"
	Description = "Custom Translator access token client"
	Version     = "v0.0.1"
	Commit      = "none"
	Date        = "nowish"
	User        = "local"
)

const (
	GithubHomeText  = "github.com/thushan/ctoken"
	GithubHomeUri   = "https://github.com/thushan/ctoken"
	GithubLatestUri = "https://github.com/thushan/ctoken/releases/latest"

	bannerWidth = 46
)

func PrintVersionInfo(extendedInfo bool, vlog *log.Logger) {
	githubUri := theme.Hyperlink(GithubHomeUri, GithubHomeText)
	latestUri := theme.Hyperlink(GithubLatestUri, Version)

	// hyperlink escapes have no visible width so pad on the plain text
	padding := bannerWidth - len(GithubHomeText) - len(Version) - 2
	if padding < 1 {
		padding = 1
	}

	var b strings.Builder

	b.WriteString(theme.ColourSplash(`
╔──────────────────────────────────────────────╗
│        __        __                          │
│   ____/ /_____  / /_____  ____               │
│  / __/ __/ __ \/ //_/ _ \/ __ \              │
│ / /_/ /_/ /_/ / ,< /  __/ / / /              │
│ \__/\__/\____/_/|_|\___/_/ /_/               │` + "\n"))

	b.WriteString(theme.ColourSplash("│ "))
	b.WriteString(theme.StyleUrl(githubUri))
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(theme.ColourVersion(latestUri))
	b.WriteString(theme.ColourSplash(" │\n"))
	b.WriteString(theme.ColourSplash("╚──────────────────────────────────────────────╝"))

	if extendedInfo {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(" Commit: %s\n", Commit))
		b.WriteString(fmt.Sprintf("  Built: %s\n", Date))
		b.WriteString(fmt.Sprintf("  Using: %s\n", User))
	}

	vlog.Println(b.String())
}

// UserAgent is sent with every API request
func UserAgent() string {
	return fmt.Sprintf("%s/%s", ShortName, Version)
}
