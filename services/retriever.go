package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// RagRetriever queries the retrieval service for manual excerpts relevant to
// a topic. The service answers 404 when the manual has no matching content.
type RagRetriever struct {
	baseURL string
	client  *resty.Client
}

// NewRagRetriever builds a retriever client against the given service URL.
func NewRagRetriever(baseURL string) *RagRetriever {
	return &RagRetriever{
		baseURL: baseURL,
		client:  resty.New(),
	}
}

func (r *RagRetriever) Retrieve(ctx context.Context, topic string, manualID uint, maxExcerpts int) (string, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"topic":      topic,
			"manual_id":  manualID,
			"max_chunks": maxExcerpts,
		}).
		Post(r.baseURL + "/context")
	if err != nil {
		return "", fmt.Errorf("retrieval request failed: %v", err)
	}

	if resp.StatusCode() == 404 {
		return "", nil
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("retrieval service error: %s", resp.String())
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("failed to parse retrieval response: %v", err)
	}

	return body.Content, nil
}
