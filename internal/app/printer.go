package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/theme"
)

const (
	tokenAcquiredMessage = "Id token Acquired Successfully. Use http://jwt.ms/ to inspect the token."
	exitPrompt           = "Press any key to exit."
)

// Printer writes the human readable console output. Headings are themed
// when styled is set, everything else is printed verbatim.
type Printer struct {
	out    io.Writer
	theme  *theme.Theme
	styled bool
}

func NewPrinter(out io.Writer, appTheme *theme.Theme, styled bool) *Printer {
	return &Printer{
		out:    out,
		theme:  appTheme,
		styled: styled,
	}
}

func (p *Printer) Token(idToken string) {
	fmt.Fprintln(p.out, p.style(p.theme.Success, tokenAcquiredMessage))
	fmt.Fprintln(p.out, "Token:")
	fmt.Fprintln(p.out, p.style(p.theme.Token, idToken))
	fmt.Fprintln(p.out)
}

func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.style(p.theme.Highlight, title))
}

func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Response prints one status/description/headers/content block
func (p *Printer) Response(resp *domain.Response) {
	status := fmt.Sprintf("%d", resp.StatusCode)
	if p.styled {
		status = pterm.NewStyle(p.theme.ForStatus(resp.StatusCode)).Sprint(status)
	}

	fmt.Fprintf(p.out, "StatusCode: %s\n", status)
	fmt.Fprintf(p.out, "Description: %s\n", resp.Description)
	fmt.Fprintf(p.out, "Headers: %s\n", formatHeaders(resp.Headers))
	fmt.Fprintf(p.out, "Content: %s\n", resp.Body)
}

func (p *Printer) style(s *pterm.Style, text string) string {
	if !p.styled || s == nil {
		return text
	}
	return s.Sprint(text)
}

// formatHeaders renders headers sorted by name so output is stable
func formatHeaders(h map[string][]string) string {
	if len(h) == 0 {
		return ""
	}
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+strings.Join(h[name], ","))
	}
	return strings.Join(parts, "; ")
}
