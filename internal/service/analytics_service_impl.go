package service

import (
	"context"

	"github.com/alexanderramin/sprintcap/internal/analytics"
	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/repository"
)

type analyticsService struct {
	iterations   repository.IterationRepo
	members      repository.MemberRepo
	weeks        repository.WeekRepo
	availability repository.AvailabilityRepo
	teams        repository.TeamRepo
	stakeholders repository.StakeholderRepo
}

// NewAnalyticsService creates the read-only reporting service. It aggregates
// stored records and never writes.
func NewAnalyticsService(
	iterations repository.IterationRepo,
	members repository.MemberRepo,
	weeks repository.WeekRepo,
	availability repository.AvailabilityRepo,
	teams repository.TeamRepo,
	stakeholders repository.StakeholderRepo,
) AnalyticsService {
	return &analyticsService{
		iterations:   iterations,
		members:      members,
		weeks:        weeks,
		availability: availability,
		teams:        teams,
		stakeholders: stakeholders,
	}
}

func (s *analyticsService) IterationReport(ctx context.Context, iterationID string) (*IterationReport, error) {
	it, err := s.iterations.GetByID(ctx, iterationID)
	if err != nil {
		return nil, err
	}
	memberPtrs, err := s.members.ListByIteration(ctx, iterationID)
	if err != nil {
		return nil, err
	}
	weekPtrs, err := s.weeks.ListByIteration(ctx, iterationID)
	if err != nil {
		return nil, err
	}
	availPtrs, err := s.availability.ListByIteration(ctx, iterationID)
	if err != nil {
		return nil, err
	}
	names, err := s.displayNames(ctx)
	if err != nil {
		return nil, err
	}

	members := derefMembers(memberPtrs)
	weeks := derefWeeks(weekPtrs)
	avail := derefAvailability(availPtrs)

	report := &IterationReport{
		Iteration: it,
		Variance:  analytics.Variance(it, members),
		Trend:     analytics.WeeklyTrend(weeks, avail),
	}
	for _, m := range members {
		rollup := capacity.RollupMemberAcrossWeeks(m.StakeholderID, avail)
		name := names[m.StakeholderID]
		if name == "" {
			name = domain.DisplayName(nil, m.StakeholderID)
		}
		report.Members = append(report.Members, MemberReport{
			Member:          m,
			StakeholderName: name,
			Rollup:          rollup,
			AttendanceRate:  analytics.AttendanceRate(rollup),
		})
	}
	return report, nil
}

func (s *analyticsService) Dashboard(ctx context.Context) (*DashboardReport, error) {
	iterations, err := s.iterations.List(ctx)
	if err != nil {
		return nil, err
	}
	teamCount, err := s.teams.CountTeams(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]analytics.IterationSnapshot, 0, len(iterations))
	rows := make([]DashboardRow, 0, len(iterations))
	for _, it := range iterations {
		memberPtrs, err := s.members.ListByIteration(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		weekPtrs, err := s.weeks.ListByIteration(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		availPtrs, err := s.availability.ListByIteration(ctx, it.ID)
		if err != nil {
			return nil, err
		}

		snap := analytics.IterationSnapshot{
			Iteration:    it,
			Members:      derefMembers(memberPtrs),
			Weeks:        derefWeeks(weekPtrs),
			Availability: derefAvailability(availPtrs),
		}
		snapshots = append(snapshots, snap)

		v := analytics.Variance(it, snap.Members)
		rows = append(rows, DashboardRow{
			Iteration:     it,
			MemberCount:   len(snap.Members),
			TotalCapacity: v.TotalCapacity,
			VarianceLabel: v.Label,
			Active:        len(snap.Weeks) > 0 && len(snap.Availability) > 0,
		})
	}

	return &DashboardReport{
		Summary: analytics.CrossIterationSummary(snapshots, teamCount),
		Rows:    rows,
	}, nil
}

// displayNames loads the stakeholder directory once per report. Labels only;
// capacity math never touches the directory.
func (s *analyticsService) displayNames(ctx context.Context) (map[string]string, error) {
	all, err := s.stakeholders.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, sh := range all {
		names[sh.ID] = sh.Name
	}
	return names, nil
}

func derefMembers(in []*domain.CapacityMember) []domain.CapacityMember {
	out := make([]domain.CapacityMember, 0, len(in))
	for _, m := range in {
		out = append(out, *m)
	}
	return out
}

func derefWeeks(in []*domain.Week) []domain.Week {
	out := make([]domain.Week, 0, len(in))
	for _, w := range in {
		out = append(out, *w)
	}
	return out
}

func derefAvailability(in []*domain.WeeklyAvailability) []domain.WeeklyAvailability {
	out := make([]domain.WeeklyAvailability, 0, len(in))
	for _, a := range in {
		out = append(out, *a)
	}
	return out
}
