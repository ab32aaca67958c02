package domain

import (
	"encoding/json"
	"sort"
)

// LeaderboardEntry is one ranked row as displayed to users.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Badge  string `json:"badge,omitempty"`
}

// FlexID accepts the backend's identifier fields, which arrive as JSON
// strings or numbers depending on the endpoint.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// LeaderboardRow is the loose wire shape of one element of the
// /leaderboard/ response. The backend is ambiguous between two shapes:
// pre-ranked user entries (top-level rank/points/name) and raw per-report
// point contributions (nested user, points per report). Both decode into
// this type; BuildLeaderboard decides which shape it got.
type LeaderboardRow struct {
	ID     FlexID `json:"id"`
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Badge  string `json:"badge"`
	User   *struct {
		ID   FlexID `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
}

// BuildLeaderboard turns a raw /leaderboard/ payload into ranked entries.
//
// Detection rule: a row carrying a nested user and no top-level rank is a
// per-report contribution, and the whole payload is aggregated (group by
// user id, sum points, stable sort by points descending, rank by
// position). Otherwise rows are taken as pre-ranked entries and ordered
// by their rank field. The rule is a heuristic inherited from the
// backend's ambiguous contract; it is isolated here so a contract fix
// lands in one place.
func BuildLeaderboard(rows []LeaderboardRow) []LeaderboardEntry {
	if len(rows) == 0 {
		return nil
	}

	contributions := false
	for _, row := range rows {
		if row.User != nil && row.Rank == 0 {
			contributions = true
			break
		}
	}
	if contributions {
		return aggregateContributions(rows)
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LeaderboardEntry{
			ID:     row.ID.String(),
			Rank:   row.Rank,
			Name:   row.Name,
			Points: row.Points,
			Badge:  row.Badge,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries
}

func aggregateContributions(rows []LeaderboardRow) []LeaderboardEntry {
	totals := make(map[string]*LeaderboardEntry)
	var order []string
	for _, row := range rows {
		if row.User == nil {
			continue
		}
		id := row.User.ID.String()
		entry, ok := totals[id]
		if !ok {
			entry = &LeaderboardEntry{ID: id, Name: row.User.Name}
			totals[id] = entry
			order = append(order, id)
		}
		entry.Points += row.Points
		if entry.Name == "" {
			entry.Name = row.User.Name
		}
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *totals[id])
	}
	// Stable sort: ties keep first-seen order. The backend never
	// specified a tie-breaking rule.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
