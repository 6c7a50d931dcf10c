package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/theme"
)

func TestPrinter_Token(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, theme.Default(), false).Token("eyJ.abc.def")

	assert.Equal(t, tokenAcquiredMessage+"\nToken:\neyJ.abc.def\n\n", out.String())
}

func TestPrinter_Response(t *testing.T) {
	var out bytes.Buffer
	resp := &domain.Response{
		StatusCode:  404,
		Description: "Not Found",
		Headers: map[string][]string{
			"X-Request-Id": {"abc"},
			"Content-Type": {"application/json"},
			"Vary":         {"Accept", "Origin"},
		},
		Body: []byte(`{"error":{"message":"nope"}}`),
	}

	NewPrinter(&out, theme.Default(), false).Response(resp)

	want := "StatusCode: 404\n" +
		"Description: Not Found\n" +
		"Headers: Content-Type=application/json; Vary=Accept,Origin; X-Request-Id=abc\n" +
		`Content: {"error":{"message":"nope"}}` + "\n"
	assert.Equal(t, want, out.String())
}

func TestPrinter_StyledTokenKeepsValue(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, theme.Default(), true).Token("eyJ.abc.def")

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Token:", lines[1])
	assert.Contains(t, lines[2], "eyJ.abc.def")
}

func TestPrinter_StyledHeadingKeepsText(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, theme.Default(), true).Heading("Get workspace list")

	assert.Contains(t, out.String(), "Get workspace list")
}

func TestFormatHeaders_Empty(t *testing.T) {
	assert.Equal(t, "", formatHeaders(nil))
}
