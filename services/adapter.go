package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// AIAdapter calls the adaptation service, which rewrites source content for
// the cluster's language, constraints and grade range.
type AIAdapter struct {
	baseURL string
	client  *resty.Client
}

// NewAIAdapter builds an adapter client against the given service URL.
func NewAIAdapter(baseURL string) *AIAdapter {
	return &AIAdapter{
		baseURL: baseURL,
		client:  resty.New(),
	}
}

func (a *AIAdapter) Adapt(ctx context.Context, sourceContent string, profile ClusterProfile, topic string) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"source_content":  sourceContent,
			"cluster_profile": profile,
			"topic":           topic,
		}).
		Post(a.baseURL + "/adapt")
	if err != nil {
		return "", fmt.Errorf("adaptation request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("adaptation service error: %s", resp.String())
	}

	var body struct {
		AdaptedContent string `json:"adapted_content"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("failed to parse adaptation response: %v", err)
	}
	if body.AdaptedContent == "" {
		return "", fmt.Errorf("adaptation service returned empty content")
	}

	return body.AdaptedContent, nil
}
