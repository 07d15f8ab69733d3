// Package analytics aggregates capacity records across members, weeks,
// iterations and teams. It only reads the records it is handed; nothing in
// this package mutates underlying data.
package analytics

import (
	"math"
	"sort"

	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/domain"
)

// varianceEpsilon absorbs float accumulation when classifying an iteration
// as balanced. Capacity values are sums of short float products, so anything
// inside this band is an exact balance for planning purposes.
const varianceEpsilon = 1e-9

// IterationTotals sums effective capacity across an iteration's members.
func IterationTotals(members []domain.CapacityMember) float64 {
	var total float64
	for _, m := range members {
		total += m.EffectiveCapacityDays
	}
	return total
}

// VarianceResult is the difference between an iteration's total effective
// capacity and its committed points, with the three-way classification.
type VarianceResult struct {
	TotalCapacity float64
	Amount        float64
	Label         domain.VarianceLabel
}

// Variance compares total effective capacity against committed points.
func Variance(it *domain.Iteration, members []domain.CapacityMember) VarianceResult {
	total := IterationTotals(members)
	amount := total - it.CommittedPoints
	label := domain.VarianceBalanced
	switch {
	case amount > varianceEpsilon:
		label = domain.VarianceOver
	case amount < -varianceEpsilon:
		label = domain.VarianceUnder
	}
	return VarianceResult{TotalCapacity: total, Amount: amount, Label: label}
}

// AttendanceRate returns present days over total tracked days for a member
// rollup. With no tracked days the rate is 0 rather than an error: an
// iteration with no recorded weeks has no meaningful rate, but callers still
// need a renderable number.
func AttendanceRate(r capacity.MemberRollup) float64 {
	if r.TotalDaysTotal == 0 {
		return 0
	}
	return float64(r.TotalDaysPresent) / float64(r.TotalDaysTotal)
}

// IterationSnapshot bundles everything the cross-iteration summary needs for
// one iteration: the record itself plus its members, weeks and availability
// rows as fetched by the host.
type IterationSnapshot struct {
	Iteration    *domain.Iteration
	Members      []domain.CapacityMember
	Weeks        []domain.Week
	Availability []domain.WeeklyAvailability
}

// avgAvailability is the mean of this iteration's per-member average
// availability, over members with at least one tracked week. The second
// return is false when no member has tracked weeks.
func (s IterationSnapshot) avgAvailability() (float64, bool) {
	var sum float64
	var n int
	for _, m := range s.Members {
		r := capacity.RollupMemberAcrossWeeks(m.StakeholderID, s.Availability)
		if r.WeeksTracked == 0 {
			continue
		}
		sum += r.AvgAvailabilityPercent
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// active reports whether the iteration has at least one week with recorded
// availability, distinguishing live iterations from planned-but-unpopulated
// ones.
func (s IterationSnapshot) active() bool {
	return len(s.Weeks) > 0 && len(s.Availability) > 0
}

// Summary is the dashboard-level aggregate across iterations.
type Summary struct {
	AvgCapacityPercent float64
	TotalMembers       int
	TotalTeams         int
	ActiveIterations   int
}

// CrossIterationSummary averages each iteration's average availability across
// the supplied iterations. Iterations with no tracked availability contribute
// to member counts but not to the average. totalTeams is supplied by the
// caller from the team store.
func CrossIterationSummary(snapshots []IterationSnapshot, totalTeams int) Summary {
	s := Summary{TotalTeams: totalTeams}
	var pctSum float64
	var pctN int
	for _, snap := range snapshots {
		s.TotalMembers += len(snap.Members)
		if snap.active() {
			s.ActiveIterations++
		}
		if avg, ok := snap.avgAvailability(); ok {
			pctSum += avg
			pctN++
		}
	}
	if pctN > 0 {
		s.AvgCapacityPercent = pctSum / float64(pctN)
	}
	return s
}

// TrendPoint is one week of the capacity trend series.
type TrendPoint struct {
	WeekIndex       int
	CapacitySum     float64
	AvgAvailability float64
	MemberCount     int
}

// WeeklyTrend produces the week-over-week capacity series for an iteration,
// ordered by week index. Weeks with no rows keep the empty-week rollup
// semantics (zero sum, average 100).
func WeeklyTrend(weeks []domain.Week, rows []domain.WeeklyAvailability) []TrendPoint {
	byWeek := make(map[string][]domain.WeeklyAvailability, len(weeks))
	for _, r := range rows {
		byWeek[r.WeekID] = append(byWeek[r.WeekID], r)
	}

	points := make([]TrendPoint, 0, len(weeks))
	for _, w := range weeks {
		roll := capacity.RollupWeek(byWeek[w.ID])
		points = append(points, TrendPoint{
			WeekIndex:       w.WeekIndex,
			CapacitySum:     roll.CapacitySum,
			AvgAvailability: roll.AvgAvailability,
			MemberCount:     roll.MemberCount,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].WeekIndex < points[j].WeekIndex })
	return points
}

// RoundDays rounds a capacity value to two decimals for display.
func RoundDays(v float64) float64 {
	return math.Round(v*100) / 100
}
