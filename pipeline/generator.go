package pipeline

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"setu/models"
	"setu/services"
)

const (
	// originalContentCap bounds the stored source excerpt. The prefix is kept
	// for audit/display only; the adapter always receives the full text.
	originalContentCap = 5000

	// maxExcerpts is how many manual chunks retrieval may stitch together.
	maxExcerpts = 3
)

// Profile sentinels used when a cluster leaves optional fields empty.
const (
	noneSpecified = "None specified"
	notSpecified  = "Not specified"
)

// Generator drives retrieval and adaptation into a persisted draft Module.
type Generator struct {
	DB        *gorm.DB
	Retriever services.ContentRetriever
	Adapter   services.ContentAdapter
}

// Generate produces an adapted training module for a cluster from an indexed
// manual. It is deliberately not idempotent: repeated calls with the same
// arguments create distinct modules.
func (g *Generator) Generate(ctx context.Context, topic string, manualID, clusterID uint) (*models.Module, error) {
	var manual models.Manual
	if err := g.DB.First(&manual, manualID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Manual", ID: manualID}
		}
		return nil, err
	}

	if !manual.IsIndexed {
		return nil, ErrManualNotIndexed
	}

	var cluster models.Cluster
	if err := g.DB.First(&cluster, clusterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Cluster", ID: clusterID}
		}
		return nil, err
	}

	log.Printf("Retrieving context for topic: %s", topic)
	originalContent, err := g.Retriever.Retrieve(ctx, topic, manualID, maxExcerpts)
	if err != nil {
		return nil, &AdaptationError{Err: err}
	}
	if originalContent == "" {
		return nil, &NoContentError{Topic: topic}
	}

	profile := buildClusterProfile(&cluster)

	log.Printf("Generating adapted content for cluster: %s", cluster.Name)
	adaptedContent, err := g.Adapter.Adapt(ctx, originalContent, profile, topic)
	if err != nil {
		return nil, &AdaptationError{Err: err}
	}

	module := models.Module{
		Title:           topic,
		ClusterID:       clusterID,
		ManualID:        &manualID,
		OriginalContent: truncate(originalContent, originalContentCap),
		AdaptedContent:  adaptedContent,
		Language:        cluster.Language,
		Approved:        false,
	}

	if err := g.DB.Create(&module).Error; err != nil {
		return nil, err
	}

	log.Printf("Module generated successfully with ID: %d", module.ID)
	return &module, nil
}

func buildClusterProfile(cluster *models.Cluster) services.ClusterProfile {
	profile := services.ClusterProfile{
		Name:                      cluster.Name,
		RegionType:                cluster.RegionType,
		Language:                  cluster.Language,
		InfrastructureConstraints: cluster.InfrastructureConstraints,
		KeyIssues:                 cluster.KeyIssues,
		GradeRange:                cluster.GradeRange,
	}
	if profile.InfrastructureConstraints == "" {
		profile.InfrastructureConstraints = noneSpecified
	}
	if profile.KeyIssues == "" {
		profile.KeyIssues = noneSpecified
	}
	if profile.GradeRange == "" {
		profile.GradeRange = notSpecified
	}
	return profile
}

// truncate caps s at max characters without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
