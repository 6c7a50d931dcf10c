package util

import (
	"net/url"
	"path"
)

// ResolveURLPath resolves a path or absolute URL against a base URL.
// If pathOrURL is already an absolute URL (has a scheme like https://), it is returned as-is.
// Otherwise, the path part of pathOrURL is joined with the base URL's path, preserving any
// path prefix in the base URL, and a query string on pathOrURL replaces the base's query.
//
// url.ResolveReference() is avoided because a relative reference resolved against a base
// without a trailing slash drops the last base segment, and one with a leading "/" replaces
// the whole path (RFC 3986).
//
// Examples:
//   - ResolveURLPath("https://host/api/v1.0/", "workspaces") -> "https://host/api/v1.0/workspaces"
//   - ResolveURLPath("https://host/api/v1.0", "projects?pageIndex=1") -> "https://host/api/v1.0/projects?pageIndex=1"
func ResolveURLPath(baseURL, pathOrURL string) string {
	if baseURL == "" {
		return pathOrURL
	}
	if pathOrURL == "" {
		return baseURL
	}

	ref, err := url.Parse(pathOrURL)
	if err != nil {
		return pathOrURL
	}
	if ref.IsAbs() {
		return pathOrURL
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return pathOrURL
	}

	base.Path = path.Join(base.Path, ref.Path)
	base.RawPath = ""
	if ref.RawQuery != "" {
		base.RawQuery = ref.RawQuery
	}
	return base.String()
}
