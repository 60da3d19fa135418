package bio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestFetchProfile(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "profile.html"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("id")
		w.Write(fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	html, err := client.FetchProfile(context.Background(), 8471675)
	if err != nil {
		t.Fatalf("FetchProfile() error: %v", err)
	}

	if gotID != "8471675" {
		t.Errorf("id query = %q, want %q", gotID, "8471675")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fetched html: %v", err)
	}
	profile, err := ParseProfile(doc)
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}
	if profile.Name != "Sidney Crosby" {
		t.Errorf("Name = %q, want %q", profile.Name, "Sidney Crosby")
	}
}

func TestFetchProfileServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	if _, err := client.FetchProfile(context.Background(), 1); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestFetchProfileEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	if _, err := client.FetchProfile(context.Background(), 1); err == nil {
		t.Fatal("expected error for empty body")
	}
}
