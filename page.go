package brochure

// Placeholder strings used when extraction yields no usable content.
// The LLM stages depend on non-empty indicative text, so missing content
// is represented explicitly rather than as an empty string.
const (
	NoTitle = "No title found"
	NoBody  = "No body content found"
)

// FetchStatus classifies the outcome of loading a page.
type FetchStatus int

// Fetch outcomes.
const (
	FetchOK FetchStatus = iota
	FetchHTTPError
	FetchNetworkError
	FetchParseError
)

// String returns a short human-readable name for the status.
func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchHTTPError:
		return "http_error"
	case FetchNetworkError:
		return "network_error"
	case FetchParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Page represents a fetched web page. A Page is immutable once constructed
// and is never retried within a single pipeline run; a failed load is
// recorded in Status with placeholder Title/Text instead of propagating
// an error.
type Page struct {
	URL    string
	Title  string
	Text   string
	Links  []string // raw href values in document order, unresolved
	Status FetchStatus
}

// Contents serializes the page for LLM consumption.
func (p *Page) Contents() string {
	return "Webpage Title:\n" + p.Title + "\nWebpage Contents:\n" + p.Text + "\n\n"
}

// FetchStatusFromError maps a fetch or extraction error to a FetchStatus.
// A nil error maps to FetchOK. Errors without a recognized code are
// treated as network failures.
func FetchStatusFromError(err error) FetchStatus {
	if err == nil {
		return FetchOK
	}
	switch ErrorCode(err) {
	case EHTTP:
		return FetchHTTPError
	case EINVALID:
		return FetchParseError
	default:
		return FetchNetworkError
	}
}
