package domain

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether a moderator may move a world from s to next.
// A world leaves pending exactly once.
func (s Status) CanTransition(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

// Position is a point on the galaxy map in percentage coordinates (0-100 per axis).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type WorldRecord struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          WorldType      `json:"type"`
	Description   string         `json:"description"`
	Status        Status         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	ModeratedAt   *time.Time     `json:"moderated_at,omitempty"`
	CreatedBy     string         `json:"created_by,omitempty"`
	CreatorEmail  string         `json:"creator_email,omitempty"`
	Locked        bool           `json:"locked"`
	Attributes    Attributes     `json:"fields"`
	Position      Position       `json:"position"`
	Color         Color          `json:"color"`
	Contributions []Contribution `json:"contributions"`
}

func (w *WorldRecord) IsOpenForCollaboration() bool {
	return w.Attributes.Collaboration == CollaborationOpen
}

// Reimport folds an imported copy into the stored world. Imported content
// wins, but a world that already left pending keeps its decision, and stored
// contributions are never dropped: only entries with unseen ids are appended.
// Identity, layout and creation time stay as stored.
func (w *WorldRecord) Reimport(in WorldRecord) WorldRecord {
	out := in
	out.ID = w.ID
	out.CreatedAt = w.CreatedAt
	out.CreatedBy = w.CreatedBy
	out.Position = w.Position
	out.Color = w.Color

	if w.Status != StatusPending {
		out.Status = w.Status
		out.ModeratedAt = w.ModeratedAt
	}

	seen := make(map[string]bool, len(w.Contributions))
	merged := append([]Contribution(nil), w.Contributions...)
	for _, c := range w.Contributions {
		seen[c.ID] = true
	}
	for _, c := range in.Contributions {
		if c.ID != "" && seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		merged = append(merged, c)
	}
	out.Contributions = merged
	return out
}

// CreatorName returns the display name of the submitter, or "Unknown".
func (w *WorldRecord) CreatorName() string {
	if w.Attributes.CreatorName == "" {
		return "Unknown"
	}
	return w.Attributes.CreatorName
}

type Contribution struct {
	ID              string    `json:"id"`
	Section         string    `json:"section"`
	Field           string    `json:"field"`
	Content         string    `json:"content"`
	ContributorName string    `json:"contributor_name"`
	CreatedAt       time.Time `json:"created_at"`
}

const DefaultContributorName = "Anonymous Traveler"

// User is the signed-in identity as reported by the identity provider.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// SubmissionPayload is the shaped result of the submission form.
type SubmissionPayload struct {
	Name         string
	Type         WorldType
	Description  string
	CreatorEmail string
	Locked       bool
	Attributes   Attributes
}

type Stats struct {
	TotalWorlds    int `json:"total_worlds"`
	UniqueCreators int `json:"unique_creators"`
	OpenWorlds     int `json:"open_worlds"`
}

func ComputeStats(worlds []WorldRecord) Stats {
	creators := make(map[string]struct{})
	open := 0
	for i := range worlds {
		creators[worlds[i].CreatorName()] = struct{}{}
		if worlds[i].IsOpenForCollaboration() {
			open++
		}
	}
	return Stats{
		TotalWorlds:    len(worlds),
		UniqueCreators: len(creators),
		OpenWorlds:     open,
	}
}
