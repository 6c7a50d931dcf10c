package ports

import (
	"context"

	"github.com/thushan/ctoken/internal/core/domain"
)

// TranslatorAPI performs single authenticated calls against the Custom Translator API.
// Any HTTP status comes back as a Response, only transport failures are errors.
type TranslatorAPI interface {
	Get(ctx context.Context, token, path string) (*domain.Response, error)
	Post(ctx context.Context, token, path string, body any) (*domain.Response, error)
}
