package review

// Scenario lifecycle statuses.
const (
	StatusPending          = "pending"
	StatusInReview         = "in_review"
	StatusConsensusReached = "consensus_reached"
	StatusDisputed         = "disputed"
	StatusNeedsDiscussion  = "needs_discussion"
	StatusArchived         = "archived"
)

// Scenario difficulty levels.
const (
	DifficultyCommon   = "common"
	DifficultyEdgeCase = "edge_case"
	DifficultyExtreme  = "extreme"
)

// Session types an expert may recommend (section 2).
const (
	SessionTypeProject         = "project"
	SessionTypeLimitBouldering = "limit_bouldering"
	SessionTypeVolume          = "volume"
	SessionTypeTechnique       = "technique"
	SessionTypeTraining        = "training"
	SessionTypeLightSession    = "light_session"
	SessionTypeRestDay         = "rest_day"
	SessionTypeActiveRecovery  = "active_recovery"
)

// SessionTypes is the closed recommendation enum in display order.
var SessionTypes = []string{
	SessionTypeProject,
	SessionTypeLimitBouldering,
	SessionTypeVolume,
	SessionTypeTechnique,
	SessionTypeTraining,
	SessionTypeLightSession,
	SessionTypeRestDay,
	SessionTypeActiveRecovery,
}

// Confidence levels (sections 1 and 2).
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Treatment keys (section 3).
const (
	TreatmentCaffeine         = "caffeine"
	TreatmentWarmupDuration   = "warmup_duration"
	TreatmentSessionIntensity = "session_intensity"
	TreatmentTiming           = "timing"
)

// Treatment importance levels.
const (
	ImportanceCritical = "critical"
	ImportanceHelpful  = "helpful"
	ImportanceNeutral  = "neutral"
	ImportanceAvoid    = "avoid"
)

// Key-driver directions (section 5).
const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"
)

// Variables is the fixed catalog of situational variables used by the
// counterfactual editor and the key-driver slots. Names match the keys of the
// pre-session snapshot.
var Variables = []string{
	"energy",
	"motivation",
	"sleep_quality",
	"sleep_hours",
	"stress",
	"soreness",
	"days_since_last_session",
	"days_since_rest_day",
	"planned_duration_minutes",
}

// Activity types (section 7).
const (
	ActivityWarmUp          = "warm_up"
	ActivityClimbing        = "climbing"
	ActivityLimitBouldering = "limit_bouldering"
	ActivityVolumeClimbing  = "volume_climbing"
	ActivityTechniqueDrills = "technique_drills"
	ActivityHangboard       = "hangboard"
	ActivityCampusBoard     = "campus_board"
	ActivityCore            = "core"
	ActivityStretching      = "stretching"
	ActivityCooldown        = "cooldown"
	ActivityCustom          = "custom"
)

// Activity intensities.
const (
	IntensityVeryLight = "very_light"
	IntensityLight     = "light"
	IntensityModerate  = "moderate"
	IntensityHard      = "hard"
	IntensityMax       = "max"
)

// Quality slider domain. Setters do not clamp (input widgets own ranges);
// ClampQuality is provided for non-UI callers such as bulk imports.
const (
	QualityMin     = 1.0
	QualityMax     = 10.0
	QualityStep    = 0.5
	QualityDefault = 5.0
)

// ClampQuality snaps a value into the [1,10] step-0.5 domain.
func ClampQuality(v float64) float64 {
	if v < QualityMin {
		return QualityMin
	}
	if v > QualityMax {
		return QualityMax
	}
	steps := int((v-QualityMin)/QualityStep + 0.5)
	return QualityMin + float64(steps)*QualityStep
}
