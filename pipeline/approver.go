package pipeline

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"setu/models"
)

// Approver transitions a module to approved and exports its PDF.
type Approver struct {
	DB       *gorm.DB
	Exporter *Exporter

	// Notify, when set, is called after a successful approval+export.
	// It runs in its own goroutine; failures there never affect approval.
	Notify func(module *models.Module, pdf *models.ExportedPDF)
}

// Approve marks the module approved and renders a fresh PDF for it. The flag
// transition is idempotent (re-approving is allowed) but every call appends a
// new artifact record, so sign-off is always backed by a current render.
//
// The flag commits before the export runs. If rendering fails the module is
// returned approved alongside the export error; callers can retry the export
// through the dispatch path, which tolerates a missing artifact.
func (a *Approver) Approve(ctx context.Context, moduleID uint) (*models.Module, *models.ExportedPDF, error) {
	var module models.Module
	if err := a.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Entity: "Module", ID: moduleID}
		}
		return nil, nil, err
	}

	now := time.Now()
	module.Approved = true
	if module.ApprovedAt == nil {
		module.ApprovedAt = &now
	}
	if err := a.DB.Save(&module).Error; err != nil {
		return nil, nil, err
	}

	pdf, err := a.Exporter.Export(ctx, &module)
	if err != nil {
		// Approval already committed; surface the export failure as-is.
		return &module, nil, err
	}

	log.Printf("Module %d approved, exported PDF %s", module.ID, pdf.Filename)

	if a.Notify != nil {
		go a.Notify(&module, pdf)
	}

	return &module, pdf, nil
}
