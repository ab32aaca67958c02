package domain

// ProfileUser is the identity block nested inside the profile response.
type ProfileUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
}

// Profile is the authenticated user's profile as computed by the backend.
// Points may arrive either top-level or nested under the user block;
// PointBalance resolves the preference.
type Profile struct {
	User   ProfileUser `json:"user"`
	City   string      `json:"city"`
	Points int         `json:"points"`
	Rank   int         `json:"rank"`
}

// PointBalance prefers the top-level points field and falls back to the
// nested user points, matching the original client's field preference.
func (p *Profile) PointBalance() int {
	if p.Points != 0 {
		return p.Points
	}
	return p.User.Points
}

// ProfileUpdate carries the partial fields of a profile change. Nil
// pointers are omitted from the request.
type ProfileUpdate struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
	City *string `json:"city,omitempty"`
}

// ProfileStats are derived client-side from the user's own report list;
// the backend does not return them directly.
type ProfileStats struct {
	ReportsSent     int
	ReportsVerified int
}

// StatsFromReports counts submitted and verified reports.
func StatsFromReports(reports []Report) ProfileStats {
	stats := ProfileStats{ReportsSent: len(reports)}
	for _, r := range reports {
		if r.Verified {
			stats.ReportsVerified++
		}
	}
	return stats
}
