package layouts

// SiteName is appended to every page title.
const SiteName = "Actor Kit"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + SiteName
	}
	return SiteName
}

// CanonicalURL joins the configured base URL and a request path. It returns
// an empty string when no base URL is configured.
func CanonicalURL(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	if path == "" || path == "/" {
		return baseURL + "/"
	}
	return baseURL + path
}
