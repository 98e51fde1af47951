package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"setu/models"
	"setu/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Cluster{},
		&models.Manual{},
		&models.Module{},
		&models.ExportedPDF{},
		&models.TeacherContact{},
		&models.Feedback{},
	))

	return db
}

func seedCluster(t *testing.T, db *gorm.DB, overrides func(*models.Cluster)) *models.Cluster {
	t.Helper()

	cluster := &models.Cluster{
		Name:                      "Cluster " + uuid.NewString()[:8],
		RegionType:                "rural",
		Language:                  "hi",
		InfrastructureConstraints: "no projector",
		KeyIssues:                 "low attendance",
		GradeRange:                "6-8",
	}
	if overrides != nil {
		overrides(cluster)
	}
	require.NoError(t, db.Create(cluster).Error)
	return cluster
}

func seedManual(t *testing.T, db *gorm.DB, clusterID uint, indexed bool) *models.Manual {
	t.Helper()

	manual := &models.Manual{
		Title:     "Teaching Manual",
		Filename:  "manual.pdf",
		FilePath:  "uploads/manual.pdf",
		IsIndexed: indexed,
		ClusterID: clusterID,
	}
	require.NoError(t, db.Create(manual).Error)
	return manual
}

func seedModule(t *testing.T, db *gorm.DB, clusterID uint, overrides func(*models.Module)) *models.Module {
	t.Helper()

	module := &models.Module{
		Title:          "Water Conservation",
		ClusterID:      clusterID,
		AdaptedContent: "adapted body",
		Language:       "hi",
	}
	if overrides != nil {
		overrides(module)
	}
	require.NoError(t, db.Create(module).Error)
	return module
}

type fakeRetriever struct {
	content string
	err     error
	calls   int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, topic string, manualID uint, maxExcerpts int) (string, error) {
	f.calls++
	return f.content, f.err
}

type fakeAdapter struct {
	result      string
	err         error
	calls       int
	lastProfile services.ClusterProfile
	lastSource  string
}

func (f *fakeAdapter) Adapt(ctx context.Context, sourceContent string, profile services.ClusterProfile, topic string) (string, error) {
	f.calls++
	f.lastProfile = profile
	f.lastSource = sourceContent
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

// fakeRenderer writes a real file per render so the export cache's
// file-presence check behaves like production.
type fakeRenderer struct {
	dir          string
	err          error
	calls        int
	lastLanguage string
}

func (f *fakeRenderer) Render(ctx context.Context, title, content, language string) (*services.RenderResult, error) {
	f.calls++
	f.lastLanguage = language
	if f.err != nil {
		return nil, f.err
	}

	filename := "module_" + uuid.NewString()[:8] + ".pdf"
	path := filepath.Join(f.dir, filename)
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0644); err != nil {
		return nil, err
	}

	return &services.RenderResult{
		Filename:     filename,
		FilePath:     path,
		DownloadPath: "/exports/" + filename,
	}, nil
}

type sentMessage struct {
	To       string
	Body     string
	MediaURL string
}

// fakeSender is safe for the dispatcher's concurrent fan-out.
type fakeSender struct {
	mu          sync.Mutex
	configured  bool
	failNumbers map[string]string
	delay       time.Duration
	sent        []sentMessage
}

func (f *fakeSender) Send(ctx context.Context, toNumber, body, mediaURL string) services.SendResult {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.sent = append(f.sent, sentMessage{To: toNumber, Body: body, MediaURL: mediaURL})
	f.mu.Unlock()

	if !f.configured {
		return services.SendResult{Success: false, Error: "Twilio WhatsApp service is not configured."}
	}
	if msg, ok := f.failNumbers[toNumber]; ok {
		return services.SendResult{Success: false, Error: msg}
	}
	return services.SendResult{Success: true, MessageSID: "SM" + uuid.NewString()[:8], Status: "queued"}
}

func (f *fakeSender) IsConfigured() bool { return f.configured }

func (f *fakeSender) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}
