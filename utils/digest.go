package utils

import (
	"dojo/config"
	"dojo/database"
	"dojo/models"
	"dojo/models/roadmap"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// WeeklyDigest aggregates platform activity for one calendar week.
type WeeklyDigest struct {
	WeekStart         time.Time
	WeekEnd           time.Time
	NewStudents       int64
	NewEnrollments    int64
	QuizzesPassed     int64
	ProjectsSubmitted int64
}

// InitializeDigestScheduler sets up the weekly admin digest scheduler
func InitializeDigestScheduler() {
	if !config.AppConfig.DigestEnabled {
		log.Println("[DIGEST-SCHEDULER] Digest disabled, scheduler not started")
		return
	}

	log.Println("[DIGEST-SCHEDULER] Initializing digest scheduler...")

	c := cron.New()

	// Run Mondays at 8 AM covering the week that just ended
	c.AddFunc("0 8 * * 1", func() {
		log.Println("[DIGEST-SCHEDULER] Running weekly digest...")
		SendWeeklyDigest()
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Digest scheduler started - runs Mondays at 8 AM")
}

// SendWeeklyDigest builds last week's numbers and mails every admin.
func SendWeeklyDigest() {
	db := database.Database.Db

	weekEnd := now.BeginningOfWeek()
	weekStart := now.With(weekEnd.Add(-time.Hour)).BeginningOfWeek()

	digest := WeeklyDigest{WeekStart: weekStart, WeekEnd: weekEnd}

	if err := db.Model(&models.User{}).
		Where("role = ? AND created_at >= ? AND created_at < ?", models.RoleStudent, weekStart, weekEnd).
		Count(&digest.NewStudents).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting new students: %v", err)
		return
	}

	if err := db.Model(&roadmap.Enrollment{}).
		Where("created_at >= ? AND created_at < ?", weekStart, weekEnd).
		Count(&digest.NewEnrollments).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting enrollments: %v", err)
		return
	}

	if err := db.Model(&roadmap.QuizStatus{}).
		Where("passed = true AND updated_at >= ? AND updated_at < ?", weekStart, weekEnd).
		Count(&digest.QuizzesPassed).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting passed quizzes: %v", err)
		return
	}

	if err := db.Model(&roadmap.ProjectSubmission{}).
		Where("created_at >= ? AND created_at < ?", weekStart, weekEnd).
		Count(&digest.ProjectsSubmitted).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting submissions: %v", err)
		return
	}

	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error fetching admins: %v", err)
		return
	}

	for _, admin := range admins {
		if err := SendWeeklyDigestEmail(admin.Email, admin.Name, digest); err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error sending digest to %s: %v", admin.Email, err)
			continue
		}
		log.Printf("[DIGEST-SCHEDULER] Sent digest to %s", admin.Email)
	}
}
