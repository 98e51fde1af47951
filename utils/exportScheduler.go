package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"

	"setu/config"
	"setu/database"
	"setu/models"
)

// logSweep logs export sweep events with timestamp
func logSweep(message string) {
	log.Printf("[EXPORT-SWEEP %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartExportScheduler runs a nightly sweep of the exports directory.
// Exported PDF files older than the retention window are removed from disk;
// each module's newest artifact is always kept so dispatch can reuse it
// without a re-render. Records are never deleted, so a swept file simply
// makes the export cache regenerate on the next dispatch.
func StartExportScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("30 2 * * *", sweepExpiredExports)
	if err != nil {
		log.Fatalf("Failed to schedule export sweep: %v", err)
	}

	c.Start()
	logSweep("Export retention scheduler started")
	return c
}

func sweepExpiredExports() {
	retention := config.AppConfig.ExportRetentionDays
	if retention <= 0 {
		return
	}
	cutoff := now.BeginningOfDay().AddDate(0, 0, -retention)

	var records []models.ExportedPDF
	if err := database.Database.Db.Order("id desc").Find(&records).Error; err != nil {
		logSweep("Error fetching export records: " + err.Error())
		return
	}

	// Records come newest first, so the first one seen per module is the
	// current artifact and stays on disk.
	current := make(map[uint]bool)
	removed := 0
	for _, rec := range records {
		if !current[rec.ModuleID] {
			current[rec.ModuleID] = true
			continue
		}
		if rec.CreatedAt.After(cutoff) {
			continue
		}
		if err := os.Remove(rec.FilePath); err != nil {
			if !os.IsNotExist(err) {
				logSweep("Error removing " + rec.FilePath + ": " + err.Error())
			}
			continue
		}
		removed++
	}

	if removed > 0 {
		logSweep("Removed " + strconv.Itoa(removed) + " expired exported PDF file(s)")
	}
}
