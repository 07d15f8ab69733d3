package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintcap/internal/domain"
)

// FormatIterationList renders a styled iteration list inside a bordered box.
func FormatIterationList(iterations []*domain.Iteration) string {
	headers := []string{"ID", "NAME", "DATES", "WORK DAYS", "COMMITTED"}
	rows := make([][]string, 0, len(iterations))

	for _, it := range iterations {
		rows = append(rows, []string{
			TruncID(it.ID),
			Bold(it.Name),
			StyleFg.Render(DateRange(it.StartDate, it.EndDate)),
			StyleFg.Render(fmt.Sprintf("%d", it.WorkingDays)),
			StyleFg.Render(fmt.Sprintf("%.1f", it.CommittedPoints)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Iterations", table)
}

// FormatIterationInspect renders one iteration's metadata plus its member
// rows and generated weeks.
func FormatIterationInspect(it *domain.Iteration, members []*domain.CapacityMember, weeks []*domain.Week, names map[string]string) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(it.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID       "), TruncID(it.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DATES    "), StyleFg.Render(DateRange(it.StartDate, it.EndDate))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("WORK DAYS"), StyleFg.Render(fmt.Sprintf("%d", it.WorkingDays))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMMITTED"), StyleFg.Render(fmt.Sprintf("%.1f", it.CommittedPoints))))
	if it.WeeksCount != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("WEEKS    "), StyleFg.Render(fmt.Sprintf("%d (declared)", *it.WeeksCount))))
	}

	if len(members) > 0 {
		b.WriteString("\n" + Header("Members") + "\n")
		rows := make([][]string, 0, len(members))
		var total float64
		for _, m := range members {
			total += m.EffectiveCapacityDays
			rows = append(rows, []string{
				StyleFg.Render(memberLabel(m.StakeholderID, names)),
				StyleFg.Render(fmt.Sprintf("%d", m.Leaves)),
				FormatPercent(m.AvailabilityPercent),
				FormatDays(m.EffectiveCapacityDays),
			})
		}
		b.WriteString(RenderTable([]string{"MEMBER", "LEAVES", "AVAIL", "EFF DAYS"}, rows))
		b.WriteString(fmt.Sprintf("\n%s %s\n", Dim("Total effective capacity:"), Bold(fmt.Sprintf("%.2f days", total))))
	} else {
		b.WriteString("\n" + Dim("No members yet.") + "\n")
	}

	if len(weeks) > 0 {
		b.WriteString("\n" + Header("Weeks") + "\n")
		rows := make([][]string, 0, len(weeks))
		for _, w := range weeks {
			rows = append(rows, []string{
				StyleFg.Render(fmt.Sprintf("W%d", w.WeekIndex)),
				StyleFg.Render(DateRange(w.WeekStart, w.WeekEnd)),
				StyleFg.Render(fmt.Sprintf("%d", w.DaysTotal)),
			})
		}
		b.WriteString(RenderTable([]string{"WEEK", "DATES", "DAYS"}, rows))
	}

	return RenderBox("", b.String())
}

func memberLabel(stakeholderID string, names map[string]string) string {
	if name, ok := names[stakeholderID]; ok && name != "" {
		return name
	}
	if len(stakeholderID) > 8 {
		return stakeholderID[:8]
	}
	return stakeholderID
}
