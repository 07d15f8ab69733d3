// Package capacity implements the per-member capacity formula and the
// weekly availability matrix: week generation for an iteration plus the
// member-level and week-level rollups built on it.
package capacity

// EffectiveCapacity returns (workingDays - leaves) * (availabilityPercent / 100).
//
// The result goes negative when leaves exceed workingDays. That is deliberate:
// impossible inputs surface as negative capacity so the analytics layer can
// flag them instead of silently hiding them. Range validation on the inputs is
// a boundary concern; the formula itself accepts anything.
func EffectiveCapacity(workingDays, leaves int, availabilityPercent float64) float64 {
	return float64(workingDays-leaves) * (availabilityPercent / 100)
}
