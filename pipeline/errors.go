package pipeline

import (
	"errors"
	"fmt"
)

// ErrManualNotIndexed rejects generation from a manual the retrieval service
// has not indexed yet.
var ErrManualNotIndexed = errors.New("manual must be indexed before generating modules")

// NotFoundError reports a missing Manual, Cluster or Module.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// NoContentError reports that retrieval found nothing relevant for a topic.
// This is a terminal user-facing condition, not a retry target.
type NoContentError struct {
	Topic string
}

func (e *NoContentError) Error() string {
	return fmt.Sprintf("no relevant content found for topic '%s' in manual", e.Topic)
}

// AdaptationError wraps a failure from the adaptation service.
type AdaptationError struct {
	Err error
}

func (e *AdaptationError) Error() string {
	return fmt.Sprintf("error generating module: %v", e.Err)
}

func (e *AdaptationError) Unwrap() error { return e.Err }

// ExportError wraps a failure from the PDF render step. When it is returned
// from approval the module is already marked approved; the flag transition is
// never rolled back.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export module PDF: %v", e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
