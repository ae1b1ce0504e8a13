package main

import (
	"fmt"
	"strings"

	"maplist-generator/internal/maplist"
)

// sourceLabel names the origin of a pick, using team names where known.
func sourceLabel(data *InputData, src maplist.Source) string {
	switch src.Kind {
	case maplist.KindTeam:
		if team := data.FindTeam(src.TeamID); team != nil && team.Name != "" {
			return team.Name
		}
		return fmt.Sprintf("team %d", src.TeamID)
	case maplist.KindBoth:
		return "both teams"
	case maplist.KindDefault:
		return "default pool"
	case maplist.KindTiebreaker:
		return "tiebreaker"
	}
	return src.String()
}

func teamName(data *InputData, id int) string {
	if team := data.FindTeam(id); team != nil && team.Name != "" {
		return team.Name
	}
	return fmt.Sprintf("team %d", id)
}

// FormatResult renders the map list of a match as a text table.
func FormatResult(data *InputData, r MatchResult) string {
	var b strings.Builder

	m := FindMatch(data, r.MatchID)
	if m != nil {
		fmt.Fprintf(&b, "Match %d", m.ID)
		if m.Round != "" {
			fmt.Fprintf(&b, " (%s)", m.Round)
		}
		fmt.Fprintf(&b, ": %s vs %s, best of %d\n",
			teamName(data, m.OpponentOne), teamName(data, m.OpponentTwo), m.BestOf)
	} else {
		fmt.Fprintf(&b, "Match %d\n", r.MatchID)
	}
	fmt.Fprintf(&b, "Seed: %q\n", r.Seed)

	fmt.Fprintf(&b, "%-3s %-5s %6s  %s\n", "#", "Mode", "Stage", "Picked by")
	for i, p := range r.Maps {
		fmt.Fprintf(&b, "%-3d %-5s %6d  %s\n", i+1, p.Mode, p.StageID, sourceLabel(data, p.Source))
	}
	return b.String()
}
