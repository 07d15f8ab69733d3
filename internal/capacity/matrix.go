package capacity

import (
	"math"

	"github.com/alexanderramin/sprintcap/internal/domain"
)

// MemberRollup aggregates one member's weekly availability rows across an
// iteration.
type MemberRollup struct {
	AvgAvailabilityPercent float64
	TotalDaysPresent       int
	TotalDaysTotal         int
	WeeksTracked           int
}

// WeekRollup aggregates all members' rows for a single week. CapacitySum is
// a percentage-point sum used for relative week-over-week comparison; it is
// intentionally not a day count.
type WeekRollup struct {
	CapacitySum     float64
	AvgAvailability float64
	MemberCount     int
}

// DaysPresent derives the whole-day attendance for a week from a percentage:
// round((pct/100) * daysTotal).
func DaysPresent(availabilityPercent float64, daysTotal int) int {
	return int(math.Round(availabilityPercent / 100 * float64(daysTotal)))
}

// RollupMemberAcrossWeeks averages a member's availability over the weeks
// where the member actually has a row. Weeks without a row are excluded from
// the average, not counted as zero, so a member added mid-iteration is not
// penalized for weeks before they existed. Day counts are straight sums.
func RollupMemberAcrossWeeks(stakeholderID string, rows []domain.WeeklyAvailability) MemberRollup {
	var r MemberRollup
	var pctSum float64
	for _, row := range rows {
		if row.StakeholderID != stakeholderID {
			continue
		}
		pctSum += row.AvailabilityPercent
		r.TotalDaysPresent += row.DaysPresent
		r.TotalDaysTotal += row.DaysTotal
		r.WeeksTracked++
	}
	if r.WeeksTracked > 0 {
		r.AvgAvailabilityPercent = pctSum / float64(r.WeeksTracked)
	}
	return r
}

// RollupWeek sums availability percentages across one week's rows. With zero
// members the average is defined as 100: full capacity is the neutral default
// for an empty week and avoids a division by zero.
func RollupWeek(rows []domain.WeeklyAvailability) WeekRollup {
	r := WeekRollup{MemberCount: len(rows)}
	if len(rows) == 0 {
		r.AvgAvailability = 100
		return r
	}
	for _, row := range rows {
		r.CapacitySum += row.AvailabilityPercent
	}
	r.AvgAvailability = r.CapacitySum / float64(len(rows))
	return r
}
