package reportrun

import (
	"fmt"
	"log"
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/config"
	"github.com/fieldproof-com/fieldproofgo/internal/database"
	"github.com/fieldproof-com/fieldproofgo/internal/models"
	"github.com/fieldproof-com/fieldproofgo/internal/report"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service generates Risk Snapshots and persists them as immutable ReportRun
// rows. A run's bytes and hash never change; regenerating a report for the
// same job inserts a new row (chain of custody).
type Service struct {
	db  *database.DB
	cfg config.ReportConfig
	gen *report.Generator
}

// NewService creates a report run service
func NewService(db *database.DB, cfg config.ReportConfig) *Service {
	return &Service{
		db:  db,
		cfg: cfg,
		gen: report.NewGenerator(cfg.BrandName),
	}
}

// GenerateForJob captures the job's snapshot in one pass, renders it, and
// persists the resulting run. All inputs are read exactly once before
// rendering starts so the stored hash is reproducible for that snapshot.
func (s *Service) GenerateForJob(jobID string) (*models.ReportRun, error) {
	snap, err := s.loadSnapshot(jobID)
	if err != nil {
		return nil, err
	}

	result, err := s.gen.Generate(snap)
	if err != nil {
		return nil, fmt.Errorf("report generation failed for job %s: %w", jobID, err)
	}

	run := &models.ReportRun{
		ID:               snap.RunID,
		JobID:            jobID,
		ContentHash:      result.Hash,
		PDF:              result.PDF,
		PageCount:        result.PageCount,
		Draft:            result.Draft,
		GeneratorVersion: report.GeneratorVersion,
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to persist report run: %w", err)
	}

	// Record the generation in the job's audit trail
	audit := &models.AuditLogEntry{
		JobID:     jobID,
		EventName: models.EventReportGenerated,
		Metadata:  models.JSONB{"runId": run.ID, "contentHash": run.ContentHash},
	}
	if err := s.db.Create(audit).Error; err != nil {
		log.Printf("⚠️ Failed to write report.generated audit entry: %v", err)
	}

	log.Printf("✅ Report run %s generated for job %s (%d pages, draft=%v)",
		run.ID, jobID, run.PageCount, run.Draft)
	return run, nil
}

// Get fetches a single run by id
func (s *Service) Get(runID string) (*models.ReportRun, error) {
	var run models.ReportRun
	if err := s.db.First(&run, "id = ?", runID).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// ListForJob returns a job's runs, newest first, without their PDF payloads
func (s *Service) ListForJob(jobID string) ([]models.ReportRun, error) {
	var runs []models.ReportRun
	err := s.db.
		Select("id", "job_id", "content_hash", "page_count", "draft", "generator_version", "created_at").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&runs).Error
	return runs, err
}

// loadSnapshot reads every renderer input for the job in one pass
func (s *Service) loadSnapshot(jobID string) (*report.Snapshot, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		return nil, fmt.Errorf("job %s not found: %w", jobID, err)
	}

	var org models.Organization
	if job.OrgID != "" {
		if err := s.db.First(&org, "id = ?", job.OrgID).Error; err != nil {
			log.Printf("⚠️ Organization %s not found, rendering without branding", job.OrgID)
			org = models.Organization{Name: s.cfg.BrandName}
		}
	} else {
		org = models.Organization{Name: s.cfg.BrandName}
	}

	var assessment *models.RiskAssessment
	var a models.RiskAssessment
	err := s.db.Preload("Factors", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("sort_order ASC")
	}).Where("job_id = ?", jobID).Order("created_at DESC").First(&a).Error
	if err == nil {
		assessment = &a
	}

	var mitigations []models.MitigationItem
	s.db.Where("job_id = ?", jobID).Order("sort_order ASC, created_at ASC").Find(&mitigations)

	var evidence []models.EvidenceAsset
	s.db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&evidence)

	var auditLog []models.AuditLogEntry
	s.db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&auditLog)

	var signatures []models.Signature
	s.db.Where("job_id = ?", jobID).Order("signed_at ASC").Find(&signatures)

	runID := uuid.NewString()
	return &report.Snapshot{
		RunID:        runID,
		Job:          job,
		Organization: org,
		Assessment:   assessment,
		Mitigations:  mitigations,
		Evidence:     evidence,
		AuditLog:     auditLog,
		Signatures:   signatures,
		GeneratedAt:  time.Now().UTC(),
		VerifyURL:    fmt.Sprintf("%s/runs/%s", s.cfg.VerifyBaseURL, runID),
	}, nil
}
