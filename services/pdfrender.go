package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PDFRenderer renders module content to PDF through the render service and
// stores the result in the local exports directory.
type PDFRenderer struct {
	baseURL   string
	exportDir string
	client    *resty.Client
}

// NewPDFRenderer builds a renderer client. Rendered files are written under
// exportDir, which is also served statically at /exports.
func NewPDFRenderer(baseURL, exportDir string) *PDFRenderer {
	return &PDFRenderer{
		baseURL:   baseURL,
		exportDir: exportDir,
		client:    resty.New(),
	}
}

func (p *PDFRenderer) Render(ctx context.Context, title, content, language string) (*RenderResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"title":    title,
			"content":  content,
			"language": language,
		}).
		Post(p.baseURL + "/render")
	if err != nil {
		return nil, fmt.Errorf("render request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("render service error: %s", resp.String())
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("render service returned an empty document")
	}

	if err := os.MkdirAll(p.exportDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %v", err)
	}

	filename := fmt.Sprintf(
		"module_%s_%s_%s.pdf",
		slugify(title),
		time.Now().Format("20060102150405"),
		uuid.NewString()[:8],
	)
	filePath := filepath.Join(p.exportDir, filename)

	if err := os.WriteFile(filePath, resp.Body(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write exported PDF: %v", err)
	}

	return &RenderResult{
		Filename:     filename,
		FilePath:     filePath,
		DownloadPath: "/exports/" + filename,
	}, nil
}

// slugify reduces a module title to a short filesystem-safe fragment.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	s := b.String()
	if len(s) > 40 {
		s = s[:40]
	}
	if s == "" {
		s = "module"
	}
	return s
}
