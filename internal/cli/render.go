package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/okian/collegerank/internal/domain/profile"
	"github.com/okian/collegerank/internal/domain/query"
	"github.com/okian/collegerank/internal/domain/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)                                      //nolint:gochecknoglobals // shared style
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)                                                 //nolint:gochecknoglobals // shared style
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)                                    //nolint:gochecknoglobals // shared style
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"}) //nolint:gochecknoglobals // shared style
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderView(v query.View, st *query.State) string {
	if v.Empty() {
		return mutedStyle.Render("No colleges found. Try adjusting your filters.")
	}
	t := newTable("", "#", "College", "Location", "Category", "NAAC", "NIRF", "Placement", "Score")
	full := st.SelectionFull()
	for i, c := range v.Items {
		mark := " "
		switch {
		case st.Selected(c.ID):
			mark = "✓"
		case full:
			mark = "-"
		}
		t.Row(
			mark,
			strconv.Itoa(v.From+i),
			c.Name,
			c.City+", "+c.Region,
			string(c.Category),
			fmt.Sprintf("%.1f", c.QualityScore),
			strconv.Itoa(c.NationalRank),
			fmt.Sprintf("%.0f%%", c.PlacementRate),
			fmt.Sprintf("%.1f", c.OverallScore),
		)
	}
	return t.String()
}

// renderFooter prints paging hints and, once the selection is full, how to free a slot.
func renderFooter(v query.View, st *query.State) string {
	var b strings.Builder
	if v.Pages > 1 {
		nav := make([]string, 0, 3)
		if v.HasPrev() {
			nav = append(nav, fmt.Sprintf("--page %d for previous", v.Page-1))
		}
		if v.HasNext() {
			nav = append(nav, fmt.Sprintf("--page %d for next", v.Page+1))
		}
		fmt.Fprintf(&b, "Page %d of %d", v.Page, v.Pages)
		if len(nav) > 0 {
			b.WriteString(mutedStyle.Render(" (" + strings.Join(nav, ", ") + ")"))
		}
		b.WriteByte('\n')
	}
	if st.SelectionFull() {
		fmt.Fprintln(&b, mutedStyle.Render(fmt.Sprintf("Selection full (%d of %d), deselect a college to add another", len(st.Selection), query.SelectionCapacity)))
	}
	return b.String()
}

func renderTop(entries []types.Entry) string {
	t := newTable("Rank", "College", "Location", "Score")
	for _, e := range entries {
		t.Row(strconv.Itoa(e.Rank), e.Name, e.Location(), fmt.Sprintf("%.1f", e.Score))
	}
	return t.String()
}

func renderProfile(d profile.Details) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(d.Name))
	fmt.Fprintf(&b, "%s  |  %s  |  est. %d  |  %s\n\n", d.Location, d.Category, d.Established, d.Website)

	fmt.Fprintf(&b, "NIRF %d: rank %d (%s), score %.1f\n", d.Ranking.Year, d.Ranking.Rank, d.Ranking.Category, d.Ranking.Score)
	fmt.Fprintf(&b, "NAAC %s (%s): %.2f\n", d.Accreditation.Grade, d.Accreditation.Cycle, d.Accreditation.Score)
	fmt.Fprintf(&b, "Academic index %.2f (%s)  Career score %.2f  Reputation %.1f\n\n", d.AcademicIndex, d.AcademicLevel, d.CareerScore, d.ReputationScore)

	criteria := newTable("Criterion", "Score", "%", "Level")
	for _, c := range d.Criteria {
		name := c.Name
		if c.Strongest {
			name += " *"
		}
		criteria.Row(name, fmt.Sprintf("%.1f", c.Score), fmt.Sprintf("%.1f", c.Percentage), c.Level)
	}
	fmt.Fprintln(&b, criteria.String())

	cutoffs := newTable("Course", "General", "Trend", "Demand")
	for _, c := range d.CutoffViews {
		demand := "normal"
		if c.HighDemand {
			demand = "high"
		}
		cutoffs.Row(c.Course, strconv.Itoa(c.General), string(c.Trend), demand)
	}
	fmt.Fprintln(&b, cutoffs.String())

	fmt.Fprintf(&b, "Infrastructure %.1f, %s\n", d.Infrastructure.Score, d.InfrastructureLevel)
	for _, k := range slices.Sorted(maps.Keys(d.Infrastructure.Facilities)) {
		fmt.Fprintf(&b, "  %s: %s\n", k, d.Infrastructure.Facilities[k])
	}
	return strings.TrimRight(b.String(), "\n")
}
