package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Category labels as shown to users. The backend only returns raw
// classification fields; the display category is derived client-side.
const (
	CategoryForestFire     = "Kebakaran Hutan"
	CategoryTrash          = "Sampah"
	CategoryWaterQuality   = "Kualitas Air"
	CategoryIllegalLogging = "Penebangan Hutan"
	CategoryPublicFire     = "Kebakaran Umum"
	CategoryGeneric        = "Laporan Umum"
)

const (
	StatusVerified = "Diverifikasi"
	StatusPending  = "Menunggu Verifikasi"
)

// ReportAuthor is the nested user reference on a server report record.
type ReportAuthor struct {
	Name string `json:"name"`
}

// Report is a report record as returned by the backend. Classification
// fields are filled by the backend's image analysis and may each be empty.
type Report struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	CreatedAt   time.Time    `json:"created_at"`
	ImageURL    string       `json:"image_url"`
	Verified    bool         `json:"verified"`
	User        ReportAuthor `json:"user"`

	ForestClassification         string `json:"forest_classification"`
	TrashClassification          string `json:"trash_classification"`
	WaterClassification          string `json:"water_classification"`
	IllegalLoggingClassification string `json:"illegal_logging_classification"`
	PublicFireClassification     string `json:"public_fire_classification"`
}

// Category derives the single display category from the classification
// fields. Priority order: forest, trash, water, illegal logging, public
// fire, then the generic fallback.
func (r *Report) Category() string {
	switch {
	case r.ForestClassification != "":
		return CategoryForestFire
	case r.TrashClassification != "":
		return CategoryTrash
	case r.WaterClassification != "":
		return CategoryWaterQuality
	case r.IllegalLoggingClassification != "":
		return CategoryIllegalLogging
	case r.PublicFireClassification != "":
		return CategoryPublicFire
	default:
		return CategoryGeneric
	}
}

// Labels returns the non-empty classification strings in priority order.
func (r *Report) Labels() []string {
	var labels []string
	for _, l := range []string{
		r.ForestClassification,
		r.TrashClassification,
		r.WaterClassification,
		r.IllegalLoggingClassification,
		r.PublicFireClassification,
	} {
		if l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

func (r *Report) Status() string {
	if r.Verified {
		return StatusVerified
	}
	return StatusPending
}

// Location renders the coordinate, or a placeholder when the backend
// returned none.
func (r *Report) Location() string {
	if r.Latitude == 0 && r.Longitude == 0 {
		return "Lokasi tidak tersedia"
	}
	return fmt.Sprintf("Lat: %.4f, Lng: %.4f", r.Latitude, r.Longitude)
}

// AuthorName falls back to an unknown marker when the backend omits the
// submitting user.
func (r *Report) AuthorName() string {
	if r.User.Name == "" {
		return "Tidak diketahui"
	}
	return r.User.Name
}

// FilterReports keeps reports whose category, description, or location
// text contains the query, case-insensitively. An empty query keeps
// everything.
func FilterReports(reports []Report, query string) []Report {
	if strings.TrimSpace(query) == "" {
		return reports
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Report
	for _, r := range reports {
		if strings.Contains(strings.ToLower(r.Category()), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Location()), q) {
			out = append(out, r)
		}
	}
	return out
}

// SortReportsNewestFirst orders reports by creation time descending.
// The sort is stable so the backend's ordering survives for equal
// timestamps.
func SortReportsNewestFirst(reports []Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}

// ReportSubmission is the client-side payload for a new report.
type ReportSubmission struct {
	ImagePath   string
	Description string
	Latitude    float64
	Longitude   float64
}

// Validate only checks non-emptiness; coordinate ranges and description
// length are the backend's concern.
func (s *ReportSubmission) Validate() error {
	if s.ImagePath == "" {
		return fmt.Errorf("laporan membutuhkan foto")
	}
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("laporan membutuhkan deskripsi")
	}
	return nil
}
