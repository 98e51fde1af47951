package services

import "context"

// ClusterProfile is the audience profile handed to the adaptation service.
// Optional fields carry explicit sentinels ("None specified"/"Not specified")
// instead of being omitted, so the adaptation prompt is always complete.
type ClusterProfile struct {
	Name                      string `json:"name"`
	RegionType                string `json:"region_type"`
	Language                  string `json:"language"`
	InfrastructureConstraints string `json:"infrastructure_constraints"`
	KeyIssues                 string `json:"key_issues"`
	GradeRange                string `json:"grade_range"`
}

// ContentRetriever returns the most relevant excerpt text from an indexed
// manual for a topic. An empty string means no relevant content was found.
type ContentRetriever interface {
	Retrieve(ctx context.Context, topic string, manualID uint, maxExcerpts int) (string, error)
}

// ContentAdapter rewrites source text for the given audience profile.
type ContentAdapter interface {
	Adapt(ctx context.Context, sourceContent string, profile ClusterProfile, topic string) (string, error)
}

// RenderResult describes a freshly rendered PDF on durable storage.
type RenderResult struct {
	Filename     string
	FilePath     string
	DownloadPath string
}

// DocumentRenderer turns title+content+language into a PDF file on disk.
type DocumentRenderer interface {
	Render(ctx context.Context, title, content, language string) (*RenderResult, error)
}

// SendResult is the per-message outcome reported by the messaging gateway.
// Delivery failures are data, not errors: a failed send fills Error and
// leaves Success false.
type SendResult struct {
	Success    bool
	MessageSID string
	Status     string
	Error      string
}

// MessageSender delivers a text-plus-optional-media message to a phone
// number. mediaURL may be empty, in which case only the body is sent.
type MessageSender interface {
	Send(ctx context.Context, toNumber, body, mediaURL string) SendResult
	IsConfigured() bool
}
