package domain

import "time"

// TokenSource records which acquisition path produced a token
type TokenSource string

const (
	TokenSourceSilent      TokenSource = "silent"
	TokenSourceInteractive TokenSource = "interactive"
	TokenSourceDeviceCode  TokenSource = "device_code"
)

// Token is the result of a successful sign-in. IDToken is what the API
// receives as the bearer credential.
type Token struct {
	ExpiresOn   time.Time
	IDToken     string
	AccessToken string
	Username    string
	Source      TokenSource
}

// Bearer returns the credential sent in the Authorization header
func (t *Token) Bearer() string {
	if t == nil {
		return ""
	}
	return t.IDToken
}

// IsValid reports whether the token can be used for API calls
func (t *Token) IsValid() bool {
	return t != nil && t.IDToken != ""
}
