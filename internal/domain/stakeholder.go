package domain

import "time"

// Stakeholder is a person directory entry. It resolves ids to display names
// for reports and never participates in capacity math.
type Stakeholder struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
}

// DisplayName returns the best label for a stakeholder id, falling back to a
// truncated id when the directory has no entry.
func DisplayName(s *Stakeholder, id string) string {
	if s != nil && s.Name != "" {
		return s.Name
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
