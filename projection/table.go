package projection

import (
	"fmt"
	"io"
	"strconv"
	"team-lab/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var (
	headerStyle = color.New(color.FgGreen, color.OpBold)
	staleStyle  = color.New(color.FgYellow)
	mutedStyle  = color.New(color.FgGray)
)

// Renderer prints tables to out. Colours are only applied when enabled,
// so piped output stays plain.
type Renderer struct {
	out     io.Writer
	colours bool
}

func NewRenderer(out io.Writer, colours bool) *Renderer {
	return &Renderer{out: out, colours: colours}
}

func (r *Renderer) paint(style color.Style, s string) string {
	if !r.colours {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// RenderTeams prints one column per team, players listed by position so they
// can be addressed for swaps.
func (r *Renderer) RenderTeams(result domain.PartitionResult, hideSkills bool) {
	if len(result.Teams) == 0 {
		fmt.Fprintln(r.out, r.paint(mutedStyle, "No teams yet"))
		return
	}
	header := []string{"#"}
	rows := 0
	for i, team := range result.Teams {
		title := fmt.Sprintf("Team %d", i+1)
		if !hideSkills {
			title = fmt.Sprintf("%s (%d)", title, domain.TotalSkill(team))
		}
		header = append(header, r.paint(headerStyle, title))
		rows = max(rows, len(team))
	}

	table := r.newTable()
	table.SetHeader(header)
	for row := range rows {
		line := []string{strconv.Itoa(row + 1)}
		for _, team := range result.Teams {
			cell := ""
			if row < len(team) {
				cell = team[row].PrettyName(hideSkills)
			}
			line = append(line, cell)
		}
		table.Append(line)
	}
	table.Render()

	if hideSkills {
		return
	}
	summary := fmt.Sprintf("Imbalance: %g (%s)", result.Imbalance, result.Metric)
	if result.Stale {
		summary += " " + r.paint(staleStyle, "out of date after swaps")
	}
	fmt.Fprintln(r.out, summary)
}

func (r *Renderer) RenderRoster(roster domain.Roster) {
	hideSkills := roster.HideSkills()
	header := []string{"#", "Name", "Skill", "Captain"}
	if hideSkills {
		header = []string{"#", "Name", "Captain"}
	}
	for i := range header {
		header[i] = r.paint(headerStyle, header[i])
	}

	table := r.newTable()
	table.SetHeader(header)
	for i, p := range roster.Participants {
		captain := ""
		if p.IsCaptain {
			captain = "👑"
		}
		line := []string{strconv.Itoa(i + 1), p.DisplayName()}
		if !hideSkills {
			line = append(line, strconv.FormatUint(uint64(p.Skill), 10))
		}
		table.Append(append(line, captain))
	}
	table.Render()

	players := len(roster.Participants)
	perTeam := float64(players) / float64(max(roster.TeamCount, 1))
	fmt.Fprintf(r.out, "Players: %d, teams: %d (%s players per team)\n",
		players, roster.TeamCount, strconv.FormatFloat(perTeam, 'f', -1, 64))
}

func (r *Renderer) RenderWheel(wheel domain.Wheel) {
	total := domain.TotalWeight(wheel.Choices)
	table := r.newTable()
	table.SetHeader([]string{
		r.paint(headerStyle, "#"),
		r.paint(headerStyle, "Choice"),
		r.paint(headerStyle, "Weight"),
		r.paint(headerStyle, "Chance"),
	})
	for i, c := range wheel.Choices {
		chance := 0.0
		if total > 0 {
			chance = float64(c.Weight) * 100 / float64(total)
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			c.Label,
			strconv.FormatUint(uint64(c.Weight), 10),
			fmt.Sprintf("%.1f%%", chance),
		})
	}
	table.Render()

	for _, c := range wheel.Removed {
		fmt.Fprintln(r.out, r.paint(mutedStyle, "removed: "+c.Label))
	}
}
