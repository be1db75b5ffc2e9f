package recipeclip

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered pages.
type Fetcher interface {
	// Fetch performs a single retrieval of the URL and returns the page
	// HTML. The context controls timeout and cancellation. Failures are
	// classified as EUNAVAILABLE (DNS, connection, timeout), EUPSTREAM
	// (non-2xx status) or ETOOLARGE (response exceeded the size cap).
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
