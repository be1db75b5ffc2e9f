package recipeclip

import (
	"net/url"
	"strings"
)

// CanonicalURL maps an arbitrary input string to the stable dedup key used
// as recipe identity. Fragments are dropped and a trailing slash is removed
// (except for the root path); scheme, host, path and query are preserved.
//
// Inputs that fail URL parsing fall back to a best-effort string transform
// (trim, strip trailing slash) rather than an error: extraction must not be
// blocked by cosmetic malformation. The fallback key is only a soft dedup
// key.
func CanonicalURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil {
		if trimmed != "/" {
			trimmed = strings.TrimSuffix(trimmed, "/")
		}
		return trimmed
	}

	u.Fragment = ""
	u.RawFragment = ""
	if u.Path != "/" && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = ""
	}

	return u.String()
}
