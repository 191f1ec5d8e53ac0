package report

import (
	"testing"
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

func tp(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func sp(s string) *string {
	return &s
}

func TestClassifyPhoto_ExplicitTagWins(t *testing.T) {
	jobStart := tp("2025-01-01T00:00:00Z")
	jobEnd := tp("2025-01-10T00:00:00Z")

	// Taken well after the job ended, but tagged "before": the tag wins
	asset := models.EvidenceAsset{
		Category: sp(models.EvidenceCategoryBefore),
		TakenAt:  tp("2025-03-01T00:00:00Z"),
	}
	if got := ClassifyPhoto(asset, jobStart, jobEnd); got != BucketBefore {
		t.Errorf("Expected explicit tag to win, got %s", got)
	}

	asset.Category = sp(models.EvidenceCategoryAfter)
	asset.TakenAt = tp("2024-01-01T00:00:00Z")
	if got := ClassifyPhoto(asset, jobStart, jobEnd); got != BucketAfter {
		t.Errorf("Expected explicit after tag to win, got %s", got)
	}
}

func TestClassifyPhoto_MissingDataDefaultsToDuring(t *testing.T) {
	// No tag, no job start
	asset := models.EvidenceAsset{TakenAt: tp("2025-01-05T00:00:00Z")}
	if got := ClassifyPhoto(asset, nil, nil); got != BucketDuring {
		t.Errorf("Expected during without job start, got %s", got)
	}

	// No tag, no capture time
	asset = models.EvidenceAsset{}
	if got := ClassifyPhoto(asset, tp("2025-01-01T00:00:00Z"), nil); got != BucketDuring {
		t.Errorf("Expected during without capture time, got %s", got)
	}

	// Zero-value timestamps degrade the same way
	var zero time.Time
	asset = models.EvidenceAsset{TakenAt: &zero}
	if got := ClassifyPhoto(asset, tp("2025-01-01T00:00:00Z"), nil); got != BucketDuring {
		t.Errorf("Expected during for zero capture time, got %s", got)
	}
}

func TestClassifyPhoto_TimestampBoundaries(t *testing.T) {
	jobStart := tp("2025-01-01T00:00:00Z")
	jobEnd := tp("2025-01-10T00:00:00Z")

	cases := []struct {
		takenAt string
		want    PhotoBucket
	}{
		{"2024-12-31T23:00:00Z", BucketBefore},
		{"2025-01-11T00:00:00Z", BucketAfter},
		{"2025-01-05T00:00:00Z", BucketDuring},
		{"2025-01-01T00:00:00Z", BucketDuring}, // exactly at start
		{"2025-01-10T00:00:00Z", BucketDuring}, // exactly at end
	}
	for _, c := range cases {
		asset := models.EvidenceAsset{TakenAt: tp(c.takenAt)}
		if got := ClassifyPhoto(asset, jobStart, jobEnd); got != c.want {
			t.Errorf("Photo at %s: expected %s, got %s", c.takenAt, c.want, got)
		}
	}
}

func TestClassifyPhoto_NoEndDate(t *testing.T) {
	jobStart := tp("2025-01-01T00:00:00Z")

	// Without an end date nothing can classify as after
	asset := models.EvidenceAsset{TakenAt: tp("2030-01-01T00:00:00Z")}
	if got := ClassifyPhoto(asset, jobStart, nil); got != BucketDuring {
		t.Errorf("Expected during without end date, got %s", got)
	}
}
