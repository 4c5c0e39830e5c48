package cron

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"velour_backend/pkg/database"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitLeadStatsCron logs a daily summary of the previous day's leads per
// form type, every morning at 07:00.
func InitLeadStatsCron() {
	c := cron.New()

	_, err := c.AddFunc("0 7 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Lead stats already reported today, skipping...")
			return
		}

		reportDailyLeadStats()
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize lead stats cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Lead stats cron initialized successfully")
}

func reportDailyLeadStats() {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	log.Printf("Running lead stats for date: %s", yesterday)

	var stats []struct {
		FormType string
		Count    int64
	}

	err := database.GetDB().Raw(`
        SELECT
            form_type,
            COUNT(*) as count
        FROM leads
        WHERE DATE(created_at) = ?
        GROUP BY form_type
        ORDER BY count DESC
    `, yesterday).Scan(&stats).Error

	if err != nil {
		log.Printf("Error fetching lead stats: %v", err)
		return
	}

	if len(stats) == 0 {
		log.Printf("No leads received on %s", yesterday)
		return
	}

	for _, stat := range stats {
		log.Printf("Leads on %s: %s = %d", yesterday, stat.FormType, stat.Count)
	}
}
