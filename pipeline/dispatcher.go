package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"setu/models"
	"setu/services"
)

// RecipientResult is the delivery outcome for one teacher contact.
type RecipientResult struct {
	TeacherID   uint   `json:"teacher_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Success     bool   `json:"success"`
	MessageSID  string `json:"message_sid,omitempty"`
	Status      string `json:"status,omitempty"`
	Error       string `json:"error,omitempty"`
}

// DispatchResult aggregates one dispatch call. Enabled reflects whether the
// messaging gateway holds credentials at all; individual failures live in
// Results and never fail the call itself.
type DispatchResult struct {
	ModuleID uint              `json:"module_id"`
	PDFID    uint              `json:"pdf_id"`
	Enabled  bool              `json:"enabled"`
	Results  []RecipientResult `json:"results"`
}

// Dispatcher sends a module's PDF to every teacher contact registered for the
// module's cluster. Sends fan out with bounded parallelism; one recipient's
// failure never aborts the rest of the batch.
type Dispatcher struct {
	DB       *gorm.DB
	Exporter *Exporter
	Sender   services.MessageSender

	BaseURL     string
	Concurrency int
	SendTimeout time.Duration
}

// Dispatch delivers the module's current artifact to the cluster's contacts.
// The recipient list is read at dispatch time, not snapshotted; an empty list
// succeeds trivially. Results come back in recipient-list order regardless of
// completion order.
func (d *Dispatcher) Dispatch(ctx context.Context, moduleID uint) (*DispatchResult, error) {
	var module models.Module
	if err := d.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Module", ID: moduleID}
		}
		return nil, err
	}

	// Reuse-or-regenerate: dispatch never forces a fresh artifact.
	pdf, err := d.Exporter.EnsureArtifact(ctx, &module)
	if err != nil {
		return nil, err
	}

	var contacts []models.TeacherContact
	if err := d.DB.
		Where("cluster_id = ?", module.ClusterID).
		Order("id asc").
		Find(&contacts).Error; err != nil {
		return nil, err
	}

	if len(contacts) == 0 {
		log.Printf("No teacher contacts registered for cluster %d; WhatsApp send skipped", module.ClusterID)
	}

	downloadURL := BuildDownloadURL(pdf.Filename, pdf.DownloadPath, d.BaseURL)
	mediaURL := ResolveMediaURL(pdf.Filename, pdf.DownloadPath, d.BaseURL)

	results := make([]RecipientResult, len(contacts))

	g := new(errgroup.Group)
	g.SetLimit(d.concurrency())

	for i, contact := range contacts {
		// On cancellation stop issuing new sends; already-issued sends run to
		// completion below so no provider-side message goes unrecorded.
		if ctx.Err() != nil {
			results[i] = RecipientResult{
				TeacherID:   contact.ID,
				Name:        contact.Name,
				PhoneNumber: contact.PhoneNumber,
				Success:     false,
				Error:       "dispatch cancelled before send",
			}
			continue
		}

		i, contact := i, contact
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.sendTimeout())
			defer cancel()

			body := messageBody(contact.Name, module.Title, downloadURL, mediaURL != "")
			res := d.Sender.Send(sendCtx, contact.PhoneNumber, body, mediaURL)

			results[i] = RecipientResult{
				TeacherID:   contact.ID,
				Name:        contact.Name,
				PhoneNumber: contact.PhoneNumber,
				Success:     res.Success,
				MessageSID:  res.MessageSID,
				Status:      res.Status,
				Error:       res.Error,
			}
			return nil
		})
	}
	g.Wait()

	return &DispatchResult{
		ModuleID: module.ID,
		PDFID:    pdf.ID,
		Enabled:  d.Sender.IsConfigured(),
		Results:  results,
	}, nil
}

// messageBody builds the per-recipient text. In attachment mode the PDF rides
// along as media and the body stays short; otherwise the download link is
// embedded directly in the text.
func messageBody(name, title, downloadURL string, hasMedia bool) string {
	if name == "" {
		name = "Teacher"
	}
	if hasMedia {
		return fmt.Sprintf(
			"Dear %s, your training module '%s' is now approved. Please find the PDF attached.",
			name, title,
		)
	}
	return fmt.Sprintf(
		"Dear %s, your training module '%s' is now approved. Download your PDF here: %s",
		name, title, downloadURL,
	)
}

func (d *Dispatcher) concurrency() int {
	if d.Concurrency > 0 {
		return d.Concurrency
	}
	return 5
}

func (d *Dispatcher) sendTimeout() time.Duration {
	if d.SendTimeout > 0 {
		return d.SendTimeout
	}
	return 15 * time.Second
}
