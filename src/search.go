package src

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"
)

const (
	githubAPIBase    = "https://api.github.com"
	composeSamples   = "android/compose-samples"
	maxExampleBytes  = 64 * 1024
	searchHTTPBudget = 10 * time.Second
)

var composableFuncRe = regexp.MustCompile(`@Composable\s+fun\s+(\w+)`)

// stopWords are dropped from queries before they become search keywords.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "with": true, "and": true,
	"or": true, "for": true, "to": true, "of": true, "in": true,
}

// ExampleSearcher finds real Jetpack Compose snippets on GitHub to use as
// generation references. Strictly best-effort: every failure path returns
// an empty list, never an error.
type ExampleSearcher struct {
	AccessToken string
	HTTPClient  *http.Client
	BaseURL     string
	Repo        string
}

func NewExampleSearcher(accessToken string) *ExampleSearcher {
	return &ExampleSearcher{
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: searchHTTPBudget},
		BaseURL:     githubAPIBase,
		Repo:        composeSamples,
	}
}

// SearchExamples queries the code-search API for Kotlin files matching the
// description's keywords, keeping only files that define composables.
func (s *ExampleSearcher) SearchExamples(ctx context.Context, query string, maxResults int) []ComposeExample {
	keywords := extractKeywords(query)
	if len(keywords) == 0 || maxResults <= 0 {
		return nil
	}

	items, err := s.searchCode(ctx, keywords)
	if err != nil {
		return nil
	}

	var examples []ComposeExample
	for _, item := range items {
		if len(examples) >= maxResults {
			break
		}
		code, err := s.fetchRaw(ctx, item.Path)
		if err != nil || !strings.Contains(code, "@Composable") {
			continue
		}
		examples = append(examples, ComposeExample{
			Code:        code,
			Description: describeExample(code, item.Path),
			Path:        item.Path,
			SourceURL:   "https://github.com/" + s.Repo,
		})
	}
	return examples
}

// extractKeywords drops stop words and short tokens from a natural-language
// query.
func extractKeywords(query string) []string {
	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if stopWords[w] || len(w) <= 2 {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

type searchItem struct {
	Path string `json:"path"`
}

func (s *ExampleSearcher) searchCode(ctx context.Context, keywords []string) ([]searchItem, error) {
	q := strings.Join(keywords, " ") + " repo:" + s.Repo + " extension:kt"
	endpoint := s.BaseURL + "/search/code?q=" + url.QueryEscape(q)

	body, err := s.get(ctx, endpoint, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}

	var result struct {
		Items []searchItem `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (s *ExampleSearcher) fetchRaw(ctx context.Context, filePath string) (string, error) {
	endpoint := s.BaseURL + "/repos/" + s.Repo + "/contents/" + filePath
	body, err := s.get(ctx, endpoint, "application/vnd.github.raw+json")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (s *ExampleSearcher) get(ctx context.Context, endpoint, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxExampleBytes))
}

// describeExample names an example by the composables it defines.
func describeExample(code, filePath string) string {
	matches := composableFuncRe.FindAllStringSubmatch(code, 3)
	if len(matches) > 0 {
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m[1])
		}
		return "Compose UI: " + strings.Join(names, ", ")
	}
	return "Compose example from " + path.Base(filePath)
}
