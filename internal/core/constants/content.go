package constants

const (
	ContentTypeJSON = "application/json"

	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-ID"

	BearerPrefix = "Bearer "
)
