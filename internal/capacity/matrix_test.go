package capacity

import (
	"testing"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func row(weekID, stakeholderID string, pct float64) domain.WeeklyAvailability {
	return domain.WeeklyAvailability{
		WeekID:              weekID,
		StakeholderID:       stakeholderID,
		AvailabilityPercent: pct,
		DaysPresent:         DaysPresent(pct, domain.DefaultWeekDaysTotal),
		DaysTotal:           domain.DefaultWeekDaysTotal,
	}
}

func TestDaysPresent(t *testing.T) {
	assert.Equal(t, 5, DaysPresent(100, 5))
	assert.Equal(t, 3, DaysPresent(50, 5))  // 2.5 rounds up
	assert.Equal(t, 4, DaysPresent(80, 5))
	assert.Equal(t, 0, DaysPresent(0, 5))
	assert.Equal(t, 1, DaysPresent(20, 5))
	assert.Equal(t, 2, DaysPresent(25, 7))
}

func TestRollupMemberAcrossWeeks_ExcludesMissingWeeks(t *testing.T) {
	// Member present only in weeks 2 and 3 of a 4-week iteration: the
	// average covers exactly those two weeks.
	rows := []domain.WeeklyAvailability{
		row("w1", "other", 100),
		row("w2", "alice", 80),
		row("w3", "alice", 60),
		row("w4", "other", 100),
	}

	r := RollupMemberAcrossWeeks("alice", rows)
	assert.InDelta(t, 70.0, r.AvgAvailabilityPercent, 1e-9)
	assert.Equal(t, 2, r.WeeksTracked)
	assert.Equal(t, 7, r.TotalDaysPresent) // 4 + 3
	assert.Equal(t, 10, r.TotalDaysTotal)
}

func TestRollupMemberAcrossWeeks_NoRows(t *testing.T) {
	r := RollupMemberAcrossWeeks("ghost", []domain.WeeklyAvailability{row("w1", "alice", 100)})
	assert.Zero(t, r.AvgAvailabilityPercent)
	assert.Zero(t, r.WeeksTracked)
	assert.Zero(t, r.TotalDaysPresent)
	assert.Zero(t, r.TotalDaysTotal)
}

func TestRollupWeek(t *testing.T) {
	rows := []domain.WeeklyAvailability{
		row("w1", "alice", 80),
		row("w1", "bob", 100),
		row("w1", "carol", 60),
	}

	r := RollupWeek(rows)
	assert.InDelta(t, 240.0, r.CapacitySum, 1e-9)
	assert.InDelta(t, 80.0, r.AvgAvailability, 1e-9)
	assert.Equal(t, 3, r.MemberCount)
}

func TestRollupWeek_EmptyDefaultsToFullCapacity(t *testing.T) {
	r := RollupWeek(nil)
	assert.Zero(t, r.CapacitySum)
	assert.InDelta(t, 100.0, r.AvgAvailability, 1e-9)
	assert.Zero(t, r.MemberCount)
}
