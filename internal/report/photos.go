package report

import (
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

// PhotoBucket is the evidence grouping on the photos page
type PhotoBucket string

// Buckets in display order
const (
	BucketBefore PhotoBucket = models.EvidenceCategoryBefore
	BucketDuring PhotoBucket = models.EvidenceCategoryDuring
	BucketAfter  PhotoBucket = models.EvidenceCategoryAfter
)

// photoBucketOrder fixes the rendering order of evidence groups
var photoBucketOrder = []PhotoBucket{BucketBefore, BucketDuring, BucketAfter}

// ClassifyPhoto assigns an evidence asset to a before/during/after bucket.
// An explicit category tag on the asset always wins, even when it disagrees
// with the timestamps. Without a tag the capture time is compared against
// the job window; any missing timestamp degrades to the during bucket
// rather than guessing. Never fails.
func ClassifyPhoto(asset models.EvidenceAsset, jobStart, jobEnd *time.Time) PhotoBucket {
	if asset.Category != nil {
		switch *asset.Category {
		case models.EvidenceCategoryBefore:
			return BucketBefore
		case models.EvidenceCategoryDuring:
			return BucketDuring
		case models.EvidenceCategoryAfter:
			return BucketAfter
		}
	}

	if jobStart == nil || jobStart.IsZero() || asset.TakenAt == nil || asset.TakenAt.IsZero() {
		return BucketDuring
	}

	if asset.TakenAt.Before(*jobStart) {
		return BucketBefore
	}
	if jobEnd != nil && !jobEnd.IsZero() && asset.TakenAt.After(*jobEnd) {
		return BucketAfter
	}
	return BucketDuring
}
