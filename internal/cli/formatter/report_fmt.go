package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintcap/internal/analytics"
	"github.com/alexanderramin/sprintcap/internal/service"
)

// FormatIterationReport renders the full analytics view of one iteration:
// variance against committed points, per-member rollups and the weekly trend.
func FormatIterationReport(r *service.IterationReport) string {
	var b strings.Builder

	it := r.Iteration
	b.WriteString(StyleBold.Render(it.Name) + "  " + Dim(DateRange(it.StartDate, it.EndDate)) + "\n\n")

	b.WriteString(Header("Capacity vs Commitment") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TOTAL CAPACITY "), Bold(fmt.Sprintf("%.2f days", analytics.RoundDays(r.Variance.TotalCapacity)))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMMITTED      "), StyleFg.Render(fmt.Sprintf("%.2f points", it.CommittedPoints))))
	b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("VARIANCE       "), SignedDays(r.Variance.Amount), VarianceIndicator(r.Variance.Label)))

	if len(r.Members) > 0 {
		b.WriteString("\n" + Header("Members") + "\n")
		rows := make([][]string, 0, len(r.Members))
		for _, m := range r.Members {
			tracked := Dim("--")
			attendance := Dim("--")
			if m.Rollup.WeeksTracked > 0 {
				tracked = StyleFg.Render(fmt.Sprintf("%d", m.Rollup.WeeksTracked))
				attendance = FormatRate(m.AttendanceRate)
			}
			rows = append(rows, []string{
				StyleFg.Render(m.StakeholderName),
				StyleFg.Render(fmt.Sprintf("%d", m.Member.Leaves)),
				FormatPercent(m.Member.AvailabilityPercent),
				FormatDays(m.Member.EffectiveCapacityDays),
				tracked,
				attendance,
			})
		}
		b.WriteString(RenderTable([]string{"MEMBER", "LEAVES", "AVAIL", "EFF DAYS", "WEEKS", "ATTEND"}, rows))
	}

	if len(r.Trend) > 0 {
		b.WriteString("\n" + Header("Weekly Trend") + "\n")
		rows := make([][]string, 0, len(r.Trend))
		for _, p := range r.Trend {
			rows = append(rows, []string{
				StyleFg.Render(fmt.Sprintf("W%d", p.WeekIndex)),
				FormatPercent(p.AvgAvailability),
				FormatDays(p.CapacitySum),
				StyleFg.Render(fmt.Sprintf("%d", p.MemberCount)),
			})
		}
		b.WriteString(RenderTable([]string{"WEEK", "AVG AVAIL", "DAYS PRESENT", "TRACKED"}, rows))
	}

	return RenderBox("Iteration Report", b.String())
}

// FormatDashboard renders the cross-iteration summary and per-iteration rows.
func FormatDashboard(d *service.DashboardReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("AVG CAPACITY     "), FormatPercent(d.Summary.AvgCapacityPercent)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("MEMBERS          "), StyleFg.Render(fmt.Sprintf("%d", d.Summary.TotalMembers))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TEAMS            "), StyleFg.Render(fmt.Sprintf("%d", d.Summary.TotalTeams))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ACTIVE ITERATIONS"), StyleFg.Render(fmt.Sprintf("%d", d.Summary.ActiveIterations))))

	if len(d.Rows) > 0 {
		b.WriteString("\n" + Header("Iterations") + "\n")
		rows := make([][]string, 0, len(d.Rows))
		for _, row := range d.Rows {
			rows = append(rows, []string{
				Bold(row.Iteration.Name),
				StyleFg.Render(fmt.Sprintf("%d", row.MemberCount)),
				FormatDays(row.TotalCapacity),
				VarianceIndicator(row.VarianceLabel),
				ActivePill(row.Active),
			})
		}
		b.WriteString(RenderTable([]string{"NAME", "MEMBERS", "CAPACITY", "VARIANCE", "STATUS"}, rows))
	}

	return RenderBox("Dashboard", b.String())
}
