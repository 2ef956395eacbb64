package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const ollamaTagsPath = "/api/tags"

// OllamaChecker lists the models of a local Ollama server. Any 2xx answer
// counts as reachable.
type OllamaChecker struct {
	BaseURL string
	Client  *http.Client
}

func NewOllamaChecker(baseURL string) *OllamaChecker {
	return &OllamaChecker{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{},
	}
}

func (o *OllamaChecker) Name() string { return "ollama" }

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (o *OllamaChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	if o.BaseURL == "" {
		return failed(o.Name(), start, errors.New("OLLAMA_BASE_URL is not set"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.BaseURL+ollamaTagsPath, nil)
	if err != nil {
		return failed(o.Name(), start, err)
	}
	resp, err := o.Client.Do(req)
	if err != nil {
		return failed(o.Name(), start, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return failed(o.Name(), start, fmt.Errorf("GET %s: unexpected status %s", ollamaTagsPath, resp.Status))
	}

	out := passed(o.Name(), start, resp.Status)
	var tags tagsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&tags); err == nil && tags.Models != nil {
		out.Detail = fmt.Sprintf("%d models", len(tags.Models))
	}
	return out
}
