package loaders

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/boolean-maybe/linkdown/linkdown"
)

// FileHTTP implements linkdown.SuggestionProvider, loading link suggestion
// lists from HTTP(S) URLs or local files. Lists are plain text: one
// suggestion per line, blank lines and lines starting with '#' are skipped.
type FileHTTP struct {
	// Client is used for HTTP(S) requests; if nil, http.DefaultClient is used.
	Client *http.Client
}

var _ linkdown.SuggestionProvider = (*FileHTTP)(nil)

func (f *FileHTTP) FetchSuggestions(source string) ([]string, error) {
	if source == "" {
		return nil, nil
	}

	var (
		content string
		err     error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		content, err = f.fetchFromWeb(source)
	} else {
		content, err = f.fetchFromLocal(source)
	}
	if err != nil {
		return nil, err
	}

	return parseSuggestions(content), nil
}

func (f *FileHTTP) fetchFromWeb(url string) (content string, err error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func (f *FileHTTP) fetchFromLocal(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read local file: %w", err)
	}
	return string(content), nil
}

func parseSuggestions(content string) []string {
	var out []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
