package scoring

// Retention labels classify the composite retention score. Bands are
// inclusive on the lower bound, contiguous, and exhaustive over [0,100].
const (
	RetentionLockedIn  = "LOCKED_IN"
	RetentionCommitted = "COMMITTED"
	RetentionBuilding  = "BUILDING"
	RetentionAtRisk    = "AT_RISK"
)

// Reliability labels use a separate, coarser scale applied to the seed
// reliability score. They are not interchangeable with retention labels.
const (
	ReliabilityChampion   = "CHAMPION"
	ReliabilityElite      = "ELITE"
	ReliabilityGrinding   = "GRINDING"
	ReliabilityDeveloping = "DEVELOPING"
)

// RetentionLabel returns the banded classification for a retention score.
func RetentionLabel(score int) string {
	switch {
	case score >= 90:
		return RetentionLockedIn
	case score >= 75:
		return RetentionCommitted
	case score >= 60:
		return RetentionBuilding
	default:
		return RetentionAtRisk
	}
}

// ReliabilityLabel returns the banded classification for a reliability
// score.
func ReliabilityLabel(score float64) string {
	switch {
	case score >= 90:
		return ReliabilityChampion
	case score >= 75:
		return ReliabilityElite
	case score >= 60:
		return ReliabilityGrinding
	default:
		return ReliabilityDeveloping
	}
}
