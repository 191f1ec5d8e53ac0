package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/config"
	"github.com/fieldproof-com/fieldproofgo/internal/database"
	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

func main() {
	fmt.Println("🌱 FieldProof Demo Data Seeder")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("🔨 Running database migrations...")
	err = db.AutoMigrate(
		&models.Organization{},
		&models.Job{},
		&models.RiskAssessment{},
		&models.RiskFactor{},
		&models.MitigationItem{},
		&models.EvidenceAsset{},
		&models.AuditLogEntry{},
		&models.Signature{},
		&models.ReportRun{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	var jobCount int64
	db.Model(&models.Job{}).Count(&jobCount)
	if jobCount > 0 {
		fmt.Printf("⚠️ Database already has %d jobs. Aborting, nothing modified.\n", jobCount)
		return
	}

	org := models.Organization{
		Name:        "Northway Electrical",
		AccentColor: "#1E3A5F",
	}
	if err := db.Create(&org).Error; err != nil {
		log.Fatalf("❌ Failed to seed organization: %v", err)
	}

	start := time.Date(2026, 7, 6, 7, 30, 0, 0, time.UTC)
	end := start.Add(9 * 24 * time.Hour)
	score := 7.2
	level := models.RiskLevelHigh

	job := models.Job{
		OrgID:       org.ID,
		ClientName:  "Harbour Point Logistics",
		JobType:     "Switchboard upgrade",
		Location:    "Dock 4, Harbour Point Terminal",
		Status:      models.JobStatusActive,
		RiskScore:   &score,
		RiskLevel:   &level,
		StartDate:   &start,
		EndDate:     &end,
		Description: "Replacement of the main distribution switchboard including isolation of live feeders, temporary supply for cold storage, and recommissioning tests.",
	}
	if err := db.Create(&job).Error; err != nil {
		log.Fatalf("❌ Failed to seed job: %v", err)
	}

	assessment := models.RiskAssessment{
		JobID:        job.ID,
		OverallScore: score,
		RiskLevel:    level,
		Factors: []models.RiskFactor{
			{Code: "ELEC-01", Name: "Live electrical work", Severity: models.RiskLevelCritical, Weight: 3.0, Description: "Feeders remain energized until stage 2 isolation.", SortOrder: 1},
			{Code: "WAH-02", Name: "Work at height", Severity: models.RiskLevelMedium, Weight: 1.5, Description: "Cable tray access above 3m.", SortOrder: 2},
			{Code: "ENV-05", Name: "Wet environment", Severity: models.RiskLevelHigh, Weight: 2.0, SortOrder: 3},
		},
	}
	if err := db.Create(&assessment).Error; err != nil {
		log.Fatalf("❌ Failed to seed assessment: %v", err)
	}

	doneAt := start.Add(26 * time.Hour)
	mitigations := []models.MitigationItem{
		{JobID: job.ID, Title: "Lockout/tagout applied to feeders 1-4", Completed: true, CompletedAt: &doneAt, CompletedBy: "M. Osei", SortOrder: 1},
		{JobID: job.ID, Title: "Arc-flash PPE issued and inspected", Completed: true, CompletedAt: &doneAt, CompletedBy: "M. Osei", SortOrder: 2},
		{JobID: job.ID, Title: "Temporary supply load-tested", Description: "Cold storage circuits to run on generator for stage 2.", SortOrder: 3},
	}
	for i := range mitigations {
		if err := db.Create(&mitigations[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed mitigation: %v", err)
		}
	}

	photoAt := start.Add(-2 * time.Hour)
	evidence := []models.EvidenceAsset{
		{JobID: job.ID, Name: "Switchroom before isolation", Type: models.EvidenceTypePhoto, TakenAt: &photoAt, UploadedBy: "M. Osei"},
		{JobID: job.ID, Name: "Hot work permit", Type: models.EvidenceTypePermit, UploadedBy: "J. Reid"},
	}
	for i := range evidence {
		if err := db.Create(&evidence[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed evidence: %v", err)
		}
	}

	actor := "J. Reid"
	events := []models.AuditLogEntry{
		{JobID: job.ID, EventName: models.EventJobCreated, ActorName: &actor, CreatedAt: start.Add(-72 * time.Hour)},
		{JobID: job.ID, EventName: models.EventDocumentUploaded, ActorName: &actor, Metadata: models.JSONB{"name": "Hot work permit"}, CreatedAt: start.Add(-2 * time.Hour)},
		{JobID: job.ID, EventName: models.EventMitigationCompleted, ActorName: &actor, Metadata: models.JSONB{"title": "Lockout/tagout applied to feeders 1-4"}, CreatedAt: doneAt},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed audit entry: %v", err)
		}
	}

	sig := models.Signature{
		JobID:       job.ID,
		SignerName:  "Maya Osei",
		SignerTitle: "Site Supervisor",
		Role:        models.SignatureRolePreparedBy,
		SignedAt:    doneAt,
		RawSVG:      `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 200"><path d="M 20 120 C 60 40 110 160 150 90 L 210 110 Q 260 60 330 100"/></svg>`,
	}
	if err := db.Create(&sig).Error; err != nil {
		log.Fatalf("❌ Failed to seed signature: %v", err)
	}

	fmt.Println("✅ Demo data seeded")
	fmt.Printf("   Job ID: %s\n", job.ID)
}
