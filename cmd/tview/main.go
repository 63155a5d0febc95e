package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rivo/tview"

	"github.com/boolean-maybe/linkdown/linkdown"
	tviewAdapter "github.com/boolean-maybe/linkdown/linkdown/tview"
	"github.com/boolean-maybe/linkdown/loaders"
)

const sampleFragment = "Check out [Editor Basics](https://example.com/basics \"Getting started\") " +
	"and the community wiki before filing a bug."

func main() {
	// parse arguments: [fragment-file-or-url] [suggestions-file-or-url]
	fragment := sampleFragment
	if len(os.Args) > 1 {
		content, err := loadContent(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading content: %v\n", err)
			os.Exit(1)
		}
		fragment = content
	}

	var suggestions []string
	if len(os.Args) > 2 {
		provider := &loaders.FileHTTP{}
		loaded, err := provider.FetchSuggestions(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading suggestions: %v\n", err)
			os.Exit(1)
		}
		suggestions = loaded
	}

	doc, err := linkdown.ParseDocument(strings.TrimSpace(fragment))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing fragment: %v\n", err)
		os.Exit(1)
	}

	app := tview.NewApplication()

	editor := tviewAdapter.NewLinkEditor(linkdown.Options{
		Document:        doc,
		LinkSuggestions: suggestions,
	})
	editor.SetApplication(app)

	if err := app.SetRoot(editor, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running application: %v\n", err)
		os.Exit(1)
	}

	// print the edited fragment on exit so the result is usable in a pipeline
	fmt.Println(linkdown.FormatDocument(doc))
}

// loadContent loads a markdown fragment from a file path or URL.
func loadContent(arg string) (string, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		resp, err := http.Get(arg)
		if err != nil {
			return "", fmt.Errorf("failed to fetch URL: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read response body: %w", err)
		}
		return string(body), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
