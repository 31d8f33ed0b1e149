package openapi

import (
	"net/url"

	"github.com/sudoDevesh/swagger2jmeter/internal/models"
)

// Placeholder tokens emitted when the base URL cannot be resolved or parsed.
// They match the user-defined variables of the generated plan, so the
// consuming tool can substitute them at run time.
const (
	PlaceholderBaseURL  = "${BASE_URL}"
	PlaceholderProtocol = "${PROTOCOL}"
	PlaceholderHost     = "${SERVER_NAME}"
	PlaceholderPort     = "${PORT}"
)

// ResolveBaseURL picks the base URL for the plan. An explicit override wins;
// otherwise the first v3 server entry, then the v2 host/schemes/basePath
// triple, and finally the placeholder token.
func ResolveBaseURL(override string, doc *Document) string {
	if override != "" {
		return override
	}
	if doc != nil {
		if len(doc.Servers) > 0 {
			return doc.Servers[0].URL
		}
		if doc.Host != "" {
			scheme := "http"
			if len(doc.Schemes) > 0 {
				scheme = doc.Schemes[0]
			}
			return scheme + "://" + doc.Host + doc.BasePath
		}
	}
	return PlaceholderBaseURL
}

// SplitBaseURL breaks a base URL into protocol, host and port. The port
// defaults to 443 for https and 80 otherwise when not explicit. Anything
// that does not parse into a scheme and a host (placeholder tokens
// included) falls back to the three placeholder tokens.
func SplitBaseURL(baseURL string) models.BaseURL {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return models.BaseURL{
			Protocol: PlaceholderProtocol,
			Host:     PlaceholderHost,
			Port:     PlaceholderPort,
		}
	}
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	return models.BaseURL{Protocol: u.Scheme, Host: u.Hostname(), Port: port}
}
