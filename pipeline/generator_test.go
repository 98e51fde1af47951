package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setu/models"
)

func TestGenerateCreatesDraftModule(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, true)

	retriever := &fakeRetriever{content: "source excerpt about water"}
	adapter := &fakeAdapter{result: "adapted lesson in hindi"}
	g := &Generator{DB: db, Retriever: retriever, Adapter: adapter}

	module, err := g.Generate(context.Background(), "Water Conservation", manual.ID, cluster.ID)
	require.NoError(t, err)

	assert.Equal(t, "Water Conservation", module.Title)
	assert.Equal(t, cluster.ID, module.ClusterID)
	require.NotNil(t, module.ManualID)
	assert.Equal(t, manual.ID, *module.ManualID)
	assert.Equal(t, "source excerpt about water", module.OriginalContent)
	assert.Equal(t, "adapted lesson in hindi", module.AdaptedContent)
	assert.Equal(t, cluster.Language, module.Language)
	assert.False(t, module.Approved)

	var stored models.Module
	require.NoError(t, db.First(&stored, module.ID).Error)
	assert.NotEmpty(t, stored.AdaptedContent)
	assert.False(t, stored.Approved)
}

func TestGenerateTruncatesOriginalContent(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, true)

	long := strings.Repeat("x", 6000)
	retriever := &fakeRetriever{content: long}
	adapter := &fakeAdapter{result: "adapted"}
	g := &Generator{DB: db, Retriever: retriever, Adapter: adapter}

	module, err := g.Generate(context.Background(), "Topic", manual.ID, cluster.ID)
	require.NoError(t, err)

	assert.Len(t, module.OriginalContent, 5000)
	assert.Equal(t, long[:5000], module.OriginalContent)
	// The adapter always sees the full excerpt
	assert.Equal(t, long, adapter.lastSource)
}

func TestGenerateManualNotFound(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)

	retriever := &fakeRetriever{content: "some"}
	adapter := &fakeAdapter{result: "adapted"}
	g := &Generator{DB: db, Retriever: retriever, Adapter: adapter}

	_, err := g.Generate(context.Background(), "Topic", 999, cluster.ID)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Manual", notFound.Entity)
	assert.Zero(t, retriever.calls)
	assert.Zero(t, adapter.calls)
}

func TestGenerateManualNotIndexed(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, false)

	retriever := &fakeRetriever{content: "some"}
	adapter := &fakeAdapter{result: "adapted"}
	g := &Generator{DB: db, Retriever: retriever, Adapter: adapter}

	_, err := g.Generate(context.Background(), "Topic", manual.ID, cluster.ID)

	require.ErrorIs(t, err, ErrManualNotIndexed)
	assert.Zero(t, retriever.calls)
	assert.Zero(t, adapter.calls)
}

func TestGenerateClusterNotFound(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, true)

	g := &Generator{DB: db, Retriever: &fakeRetriever{content: "some"}, Adapter: &fakeAdapter{result: "adapted"}}

	_, err := g.Generate(context.Background(), "Topic", manual.ID, 999)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Cluster", notFound.Entity)
}

func TestGenerateNoRelevantContent(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, true)

	retriever := &fakeRetriever{content: ""}
	adapter := &fakeAdapter{result: "adapted"}
	g := &Generator{DB: db, Retriever: retriever, Adapter: adapter}

	_, err := g.Generate(context.Background(), "Obscure Topic", manual.ID, cluster.ID)

	var noContent *NoContentError
	require.ErrorAs(t, err, &noContent)
	assert.Equal(t, "Obscure Topic", noContent.Topic)
	assert.Zero(t, adapter.calls)

	var count int64
	db.Model(&models.Module{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerateAdapterFailureIsWrapped(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, true)

	upstream := errors.New("adaptation service error: model timeout")
	g := &Generator{DB: db, Retriever: &fakeRetriever{content: "some"}, Adapter: &fakeAdapter{err: upstream}}

	_, err := g.Generate(context.Background(), "Topic", manual.ID, cluster.ID)

	var adaptErr *AdaptationError
	require.ErrorAs(t, err, &adaptErr)
	assert.ErrorIs(t, err, upstream)
	assert.Contains(t, err.Error(), "model timeout")

	var count int64
	db.Model(&models.Module{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerateProfileSentinels(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, func(c *models.Cluster) {
		c.InfrastructureConstraints = ""
		c.KeyIssues = ""
		c.GradeRange = ""
	})
	manual := seedManual(t, db, cluster.ID, true)

	adapter := &fakeAdapter{result: "adapted"}
	g := &Generator{DB: db, Retriever: &fakeRetriever{content: "some"}, Adapter: adapter}

	_, err := g.Generate(context.Background(), "Topic", manual.ID, cluster.ID)
	require.NoError(t, err)

	assert.Equal(t, "None specified", adapter.lastProfile.InfrastructureConstraints)
	assert.Equal(t, "None specified", adapter.lastProfile.KeyIssues)
	assert.Equal(t, "Not specified", adapter.lastProfile.GradeRange)
	assert.Equal(t, cluster.Name, adapter.lastProfile.Name)
	assert.Equal(t, "rural", adapter.lastProfile.RegionType)
	assert.Equal(t, "hi", adapter.lastProfile.Language)
}

func TestGenerateIsNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	manual := seedManual(t, db, cluster.ID, true)

	g := &Generator{DB: db, Retriever: &fakeRetriever{content: "some"}, Adapter: &fakeAdapter{result: "adapted"}}

	first, err := g.Generate(context.Background(), "Topic", manual.ID, cluster.ID)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), "Topic", manual.ID, cluster.ID)
	require.NoError(t, err)

	// Duplicate-topic detection is deliberately not enforced
	assert.NotEqual(t, first.ID, second.ID)
}
