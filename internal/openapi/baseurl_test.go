package openapi

import "testing"

func TestResolveBaseURLOverrideWins(t *testing.T) {
	doc := mustDoc(t, `{"servers": [{"url": "https://api.x.com/v1"}]}`)
	got := ResolveBaseURL("https://staging.x.com", doc)
	if got != "https://staging.x.com" {
		t.Errorf("Expected override to win, got %q", got)
	}
}

func TestResolveBaseURLFromServers(t *testing.T) {
	doc := mustDoc(t, `{"servers": [{"url": "https://api.x.com/v1"}, {"url": "https://b.x.com"}]}`)
	got := ResolveBaseURL("", doc)
	if got != "https://api.x.com/v1" {
		t.Errorf("Expected first server URL, got %q", got)
	}
}

func TestResolveBaseURLFromHost(t *testing.T) {
	doc := mustDoc(t, `{"host": "api.x.com", "schemes": ["https"], "basePath": "/v1"}`)
	got := ResolveBaseURL("", doc)
	if got != "https://api.x.com/v1" {
		t.Errorf("Expected composed v2 URL, got %q", got)
	}
}

func TestResolveBaseURLDefaultScheme(t *testing.T) {
	doc := mustDoc(t, `{"host": "api.x.com", "basePath": "/v1"}`)
	got := ResolveBaseURL("", doc)
	if got != "http://api.x.com/v1" {
		t.Errorf("Expected http default scheme, got %q", got)
	}
}

func TestResolveBaseURLUnresolved(t *testing.T) {
	for name, doc := range map[string]*Document{
		"nil":   nil,
		"empty": mustDoc(t, `{}`),
	} {
		got := ResolveBaseURL("", doc)
		if got != PlaceholderBaseURL {
			t.Errorf("%s document: expected placeholder, got %q", name, got)
		}
	}
}

func TestSplitBaseURL(t *testing.T) {
	tests := []struct {
		name                 string
		baseURL              string
		protocol, host, port string
	}{
		{"explicit port", "https://api.x.com:8443/v1", "https", "api.x.com", "8443"},
		{"https default port", "https://api.x.com/v1", "https", "api.x.com", "443"},
		{"http default port", "http://api.x.com", "http", "api.x.com", "80"},
		{"not a url", "not a url", PlaceholderProtocol, PlaceholderHost, PlaceholderPort},
		{"placeholder", PlaceholderBaseURL, PlaceholderProtocol, PlaceholderHost, PlaceholderPort},
		{"empty", "", PlaceholderProtocol, PlaceholderHost, PlaceholderPort},
		{"missing scheme", "api.x.com/v1", PlaceholderProtocol, PlaceholderHost, PlaceholderPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitBaseURL(tt.baseURL)
			if got.Protocol != tt.protocol || got.Host != tt.host || got.Port != tt.port {
				t.Errorf("SplitBaseURL(%q) = %+v, expected {%s %s %s}",
					tt.baseURL, got, tt.protocol, tt.host, tt.port)
			}
		})
	}
}
