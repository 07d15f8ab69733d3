package domain

// VarianceLabel classifies total effective capacity against committed points.
// The split is three-way on purpose: exact balance is treated as materially
// different from either surplus or deficit.
type VarianceLabel string

const (
	VarianceOver     VarianceLabel = "Over-capacity"
	VarianceUnder    VarianceLabel = "Under-capacity"
	VarianceBalanced VarianceLabel = "Balanced"
)

// DefaultWeekDaysTotal is the number of working days a week is assumed to
// carry when no explicit count is recorded.
const DefaultWeekDaysTotal = 5
