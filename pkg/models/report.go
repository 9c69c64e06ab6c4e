package models

import "time"

// ReportKind tags a report as a lost-item or found-item submission
type ReportKind string

const (
	ReportKindLost  ReportKind = "lost"
	ReportKindFound ReportKind = "found"
)

// Opposite returns the kind a report of this kind is matched against
func (k ReportKind) Opposite() ReportKind {
	if k == ReportKindLost {
		return ReportKindFound
	}
	return ReportKindLost
}

// Location is the structured place a report refers to
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName string  `json:"place_name,omitempty"`
}

// Report is a single lost or found submission. Reports are owned by the
// submitting application; the match engine treats them as immutable input
// for the duration of a ranking run.
type Report struct {
	ID          string     `json:"id" validate:"required"`
	Kind        ReportKind `json:"kind" validate:"required,oneof=lost found"`
	Category    string     `json:"category" validate:"required"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    *Location  `json:"location,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
}

// NewLostReport creates a lost-item report. Lost and found reports share all
// fields; only the kind tag differs.
func NewLostReport(id, category, title, description string) *Report {
	return &Report{
		ID:          id,
		Kind:        ReportKindLost,
		Category:    category,
		Title:       title,
		Description: description,
	}
}

// NewFoundReport creates a found-item report
func NewFoundReport(id, category, title, description string) *Report {
	return &Report{
		ID:          id,
		Kind:        ReportKindFound,
		Category:    category,
		Title:       title,
		Description: description,
	}
}

// WithLocation sets the report location
func (r *Report) WithLocation(lat, lon float64, place string) *Report {
	r.Location = &Location{Latitude: lat, Longitude: lon, PlaceName: place}
	return r
}

// WithEventDate sets the date the item was lost or found
func (r *Report) WithEventDate(t time.Time) *Report {
	r.EventDate = &t
	return r
}

// ExtractedAttributes holds the brand/color/model strings detected in a
// report description. Derived data, not authoritative: it is recomputed
// whenever the description text changes. Each set contains canonical forms
// only, sorted for deterministic output.
type ExtractedAttributes struct {
	Brands []string `json:"brands"`
	Colors []string `json:"colors"`
	Models []string `json:"models"`
}

// Union returns brands, colors and models as one combined set
func (a ExtractedAttributes) Union() []string {
	out := make([]string, 0, len(a.Brands)+len(a.Colors)+len(a.Models))
	out = append(out, a.Brands...)
	out = append(out, a.Colors...)
	out = append(out, a.Models...)
	return out
}

// IsEmpty reports whether no attributes were detected
func (a ExtractedAttributes) IsEmpty() bool {
	return len(a.Brands) == 0 && len(a.Colors) == 0 && len(a.Models) == 0
}
