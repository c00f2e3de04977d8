package catalog

import "strings"

// PathFor derives a path-only identifier from a tag's absolute URL by
// removing the given origin if present as a literal prefix. URLs from
// other origins pass through unchanged; this is never an error.
func PathFor(url, origin string) string {
	if origin != "" && strings.HasPrefix(url, origin) {
		return url[len(origin):]
	}
	return url
}

// TagPath derives a path using the default catalog origin.
func TagPath(url string) string {
	return PathFor(url, DefaultOrigin)
}
