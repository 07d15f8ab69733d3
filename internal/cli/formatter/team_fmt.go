package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintcap/internal/domain"
)

// FormatTeamList renders the saved team roster.
func FormatTeamList(teams []*domain.Team) string {
	headers := []string{"ID", "NAME", "DESCRIPTION", "CREATED"}
	rows := make([][]string, 0, len(teams))

	for _, t := range teams {
		desc := t.Description
		if desc == "" {
			desc = "--"
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Name),
			Dim(desc),
			StyleFg.Render(HumanDate(t.CreatedAt)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Teams", table)
}

// FormatTeamInspect renders one team's frozen member defaults.
func FormatTeamInspect(team *domain.Team, defs []*domain.TeamDefinition, names map[string]string) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(team.Name) + "\n")
	if team.Description != "" {
		b.WriteString(Dim(team.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), TruncID(team.ID)))
	if team.SourceIterationID != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SOURCE "), TruncID(team.SourceIterationID)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED"), StyleFg.Render(HumanDate(team.CreatedAt))))

	if len(defs) == 0 {
		b.WriteString("\n" + Dim("No member definitions.") + "\n")
		return RenderBox("", b.String())
	}

	b.WriteString("\n" + Header("Definitions") + "\n")
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{
			StyleFg.Render(memberLabel(d.StakeholderID, names)),
			StyleFg.Render(fmt.Sprintf("%d", d.DefaultLeaves)),
			FormatPercent(d.DefaultAvailabilityPercent),
		})
	}
	b.WriteString(RenderTable([]string{"MEMBER", "LEAVES", "AVAIL"}, rows))

	return RenderBox("", b.String())
}
