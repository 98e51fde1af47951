package pipeline

import (
	"context"
	"errors"
	"os"

	"gorm.io/gorm"

	"setu/models"
	"setu/services"
)

// Exporter owns ExportedPDF records. Export always renders a fresh artifact;
// EnsureArtifact reuses the newest intact one. Approval calls Export so that
// sign-off is always backed by a fresh render, while dispatch goes through
// EnsureArtifact and never forces a regeneration.
type Exporter struct {
	DB       *gorm.DB
	Renderer services.DocumentRenderer
}

// EnsureArtifact returns the newest exported PDF for the module whose file is
// still present on disk, rendering a new one only when no usable record
// exists. This is the single place export idempotency is enforced.
func (e *Exporter) EnsureArtifact(ctx context.Context, module *models.Module) (*models.ExportedPDF, error) {
	var record models.ExportedPDF
	err := e.DB.
		Where("module_id = ?", module.ID).
		Order("id desc").
		First(&record).Error
	if err == nil && fileExists(record.FilePath) {
		return &record, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return e.Export(ctx, module)
}

// Export renders the module to PDF and appends a new artifact record.
// Records are append-only history; nothing is updated or deleted here.
func (e *Exporter) Export(ctx context.Context, module *models.Module) (*models.ExportedPDF, error) {
	language := module.Language
	if language == "" {
		language = "unknown"
	}

	result, err := e.Renderer.Render(ctx, module.Title, module.AdaptedContent, language)
	if err != nil {
		return nil, &ExportError{Err: err}
	}

	record := models.ExportedPDF{
		ModuleID:     module.ID,
		Filename:     result.Filename,
		FilePath:     result.FilePath,
		DownloadPath: result.DownloadPath,
		Language:     module.Language,
	}
	if err := e.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
