package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestLoadFile(t *testing.T) {
	loader := NewLoader(5 * time.Second)

	doc, err := loader.Load(context.Background(), "../../tests/pet-store.json")
	if err != nil {
		t.Fatalf("Failed to load file: %v", err)
	}
	if !doc.IsV3() {
		t.Error("Expected pet-store.json to be detected as v3")
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		t.Error("Expected paths to be decoded")
	}
}

func TestLoadFileNotFound(t *testing.T) {
	loader := NewLoader(5 * time.Second)

	_, err := loader.Load(context.Background(), "nonexistent.json")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadURL(t *testing.T) {
	spec, err := os.ReadFile("../../tests/pet-store-v2.json")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(spec)
	}))
	defer server.Close()

	loader := NewLoader(5 * time.Second)
	doc, err := loader.Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Failed to load URL: %v", err)
	}
	if doc.IsV3() {
		t.Error("Expected v2 document")
	}
	if doc.Host != "petstore.swagger.io" {
		t.Errorf("Expected host petstore.swagger.io, got %q", doc.Host)
	}
}

func TestLoadURLErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	loader := NewLoader(5 * time.Second)
	if _, err := loader.Load(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	loader := NewLoader(5 * time.Second)
	if _, err := loader.Load(context.Background(), server.URL); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
