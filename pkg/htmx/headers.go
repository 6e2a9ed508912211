package htmx

// Response headers.
const (
	HeaderHXRedirect   = "HX-Redirect"
	HeaderHXReplaceURL = "HX-Replace-Url"
	HeaderHXPushURL    = "HX-Push-Url"
)

// Request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXBoosted    = "HX-Boosted"
	HeaderHXCurrentURL = "HX-Current-URL"
)
