package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setu/models"
)

func TestApproveMarksModuleAndExports(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	module := seedModule(t, db, cluster.ID, nil)

	renderer := &fakeRenderer{dir: t.TempDir()}
	a := &Approver{DB: db, Exporter: &Exporter{DB: db, Renderer: renderer}}

	approved, pdf, err := a.Approve(context.Background(), module.ID)
	require.NoError(t, err)

	assert.True(t, approved.Approved)
	require.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, pdf)
	assert.Equal(t, module.ID, pdf.ModuleID)
	assert.Equal(t, module.Language, pdf.Language)
}

func TestApproveTwiceAppendsTwoArtifacts(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	module := seedModule(t, db, cluster.ID, nil)

	renderer := &fakeRenderer{dir: t.TempDir()}
	a := &Approver{DB: db, Exporter: &Exporter{DB: db, Renderer: renderer}}

	_, first, err := a.Approve(context.Background(), module.ID)
	require.NoError(t, err)
	approved, second, err := a.Approve(context.Background(), module.ID)
	require.NoError(t, err)

	// Idempotent flag, non-idempotent export: re-approval is allowed and
	// always produces a fresh artifact record.
	assert.True(t, approved.Approved)
	assert.Equal(t, module.ID, first.ModuleID)
	assert.Equal(t, module.ID, second.ModuleID)
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, 2, renderer.calls)
}

func TestApproveModuleNotFound(t *testing.T) {
	db := newTestDB(t)

	a := &Approver{DB: db, Exporter: &Exporter{DB: db, Renderer: &fakeRenderer{dir: t.TempDir()}}}

	_, _, err := a.Approve(context.Background(), 999)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Module", notFound.Entity)
}

func TestApproveExportFailureLeavesModuleApproved(t *testing.T) {
	db := newTestDB(t)
	cluster := seedCluster(t, db, nil)
	module := seedModule(t, db, cluster.ID, nil)

	renderer := &fakeRenderer{dir: t.TempDir(), err: errors.New("render service down")}
	a := &Approver{DB: db, Exporter: &Exporter{DB: db, Renderer: renderer}}

	approved, pdf, err := a.Approve(context.Background(), module.ID)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Nil(t, pdf)

	// The flag transition committed before the export ran and is never
	// rolled back; dispatch can regenerate the artifact later.
	require.NotNil(t, approved)
	assert.True(t, approved.Approved)

	var stored models.Module
	require.NoError(t, db.First(&stored, module.ID).Error)
	assert.True(t, stored.Approved)
}
