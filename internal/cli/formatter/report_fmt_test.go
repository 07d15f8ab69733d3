package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/sprintcap/internal/analytics"
	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/service"
	"github.com/stretchr/testify/assert"
)

func sampleIteration() *domain.Iteration {
	return &domain.Iteration{
		ID:              "abcdef1234567890",
		Name:            "Sprint 12",
		StartDate:       time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		WorkingDays:     10,
		CommittedPoints: 20,
	}
}

func TestFormatIterationReport(t *testing.T) {
	report := &service.IterationReport{
		Iteration: sampleIteration(),
		Variance: analytics.VarianceResult{
			TotalCapacity: 14,
			Amount:        -6,
			Label:         domain.VarianceUnder,
		},
		Members: []service.MemberReport{
			{
				Member: domain.CapacityMember{
					StakeholderID:         "alice",
					Leaves:                1,
					AvailabilityPercent:   80,
					EffectiveCapacityDays: 7.2,
				},
				StakeholderName: "Alice Chen",
				Rollup: capacity.MemberRollup{
					AvgAvailabilityPercent: 80,
					TotalDaysPresent:       4,
					TotalDaysTotal:         5,
					WeeksTracked:           1,
				},
				AttendanceRate: 0.8,
			},
		},
		Trend: []analytics.TrendPoint{
			{WeekIndex: 1, CapacitySum: 4, AvgAvailability: 80, MemberCount: 1},
		},
	}

	out := FormatIterationReport(report)
	assert.Contains(t, out, "Sprint 12")
	assert.Contains(t, out, "Alice Chen")
	assert.Contains(t, out, "14.00 days")
	assert.Contains(t, out, "-6.00")
	assert.Contains(t, out, string(domain.VarianceUnder))
	assert.Contains(t, out, "W1")
}

func TestFormatIterationReportUntrackedMember(t *testing.T) {
	report := &service.IterationReport{
		Iteration: sampleIteration(),
		Members: []service.MemberReport{
			{
				Member:          domain.CapacityMember{StakeholderID: "bob"},
				StakeholderName: "Bob Osei",
			},
		},
	}

	out := FormatIterationReport(report)
	assert.Contains(t, out, "Bob Osei")
	assert.Contains(t, out, "--")
}

func TestFormatDashboard(t *testing.T) {
	dash := &service.DashboardReport{
		Summary: analytics.Summary{
			AvgCapacityPercent: 80,
			TotalMembers:       3,
			TotalTeams:         1,
			ActiveIterations:   1,
		},
		Rows: []service.DashboardRow{
			{
				Iteration:     sampleIteration(),
				MemberCount:   2,
				TotalCapacity: 14,
				VarianceLabel: domain.VarianceUnder,
				Active:        true,
			},
		},
	}

	out := FormatDashboard(dash)
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Sprint 12")
	assert.Contains(t, out, "Active")
}

func TestFormatIterationList(t *testing.T) {
	out := FormatIterationList([]*domain.Iteration{sampleIteration()})
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef1234567890")
	assert.Contains(t, out, "Sprint 12")
}
