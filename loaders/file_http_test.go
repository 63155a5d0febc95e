package loaders

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleList = `# frequently used links
https://vc.ru

/general
`

func TestFetchSuggestions_FromLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.txt")
	if err := os.WriteFile(path, []byte(sampleList), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	f := &FileHTTP{}
	got, err := f.FetchSuggestions(path)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	want := []string{"https://vc.ru", "/general"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFetchSuggestions_FromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleList))
	}))
	defer server.Close()

	f := &FileHTTP{Client: server.Client()}
	got, err := f.FetchSuggestions(server.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	want := []string{"https://vc.ru", "/general"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFetchSuggestions_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := &FileHTTP{Client: server.Client()}
	if _, err := f.FetchSuggestions(server.URL); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFetchSuggestions_EmptySource(t *testing.T) {
	f := &FileHTTP{}
	got, err := f.FetchSuggestions("")
	if err != nil {
		t.Fatalf("empty source should not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}

func TestFetchSuggestions_MissingLocalFile(t *testing.T) {
	f := &FileHTTP{}
	if _, err := f.FetchSuggestions(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
