package domain

import "strings"

const FilterAll = "all"

// Filter narrows the public listing. Zero values and "all" match everything.
type Filter struct {
	Type          string `form:"type" json:"type"`
	Collaboration string `form:"collaboration" json:"collaboration"`
	Search        string `form:"search" json:"search"`
}

func (f Filter) IsZero() bool {
	return f.matchesAll(f.Type) && f.matchesAll(f.Collaboration) && strings.TrimSpace(f.Search) == ""
}

func (Filter) matchesAll(v string) bool {
	return v == "" || v == FilterAll
}

func (f Filter) Match(w *WorldRecord) bool {
	if !f.matchesAll(f.Type) && string(w.Type) != f.Type {
		return false
	}
	if !f.matchesAll(f.Collaboration) && string(w.Attributes.Collaboration) != f.Collaboration {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(w.Name), q) ||
		strings.Contains(strings.ToLower(w.Description), q) ||
		strings.Contains(strings.ToLower(w.Attributes.CreatorName), q)
}

func (f Filter) Apply(worlds []WorldRecord) []WorldRecord {
	if f.IsZero() {
		return worlds
	}
	out := make([]WorldRecord, 0, len(worlds))
	for i := range worlds {
		if f.Match(&worlds[i]) {
			out = append(out, worlds[i])
		}
	}
	return out
}
