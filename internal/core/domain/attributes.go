package domain

import "sort"

type Collaboration string

const (
	CollaborationOpen   Collaboration = "open"
	CollaborationLocked Collaboration = "locked"
)

// Attribute keys promoted to first-class fields. Everything else is kept in Extra.
const (
	KeyCreatorName   = "creator_name"
	KeyCollaboration = "collaboration"
	KeyInhabitants   = "inhabitants"
	KeyCivilization  = "civilization"
	KeyFactions      = "factions"
	KeyTechLevel     = "tech_level"
	KeyTechnology    = "technology"
	KeyMagicExists   = "magic_exists"
	KeyMagicSystem   = "magic_system"
	KeyCreationMyth  = "creation_myth"
	KeyLegends       = "legends"
	KeyHistory       = "history"
	KeyImageURL      = "image_url"
)

// LoreKeys lists the free-text lore fields open to contributions.
var LoreKeys = []string{
	KeyInhabitants, KeyCivilization, KeyFactions,
	KeyTechnology, KeyMagicSystem,
	KeyCreationMyth, KeyLegends, KeyHistory,
}

type Attributes struct {
	CreatorName   string            `json:"creator_name,omitempty"`
	Collaboration Collaboration     `json:"collaboration,omitempty"`
	Inhabitants   string            `json:"inhabitants,omitempty"`
	Civilization  string            `json:"civilization,omitempty"`
	Factions      string            `json:"factions,omitempty"`
	TechLevel     string            `json:"tech_level,omitempty"`
	Technology    string            `json:"technology,omitempty"`
	MagicExists   string            `json:"magic_exists,omitempty"`
	MagicSystem   string            `json:"magic_system,omitempty"`
	CreationMyth  string            `json:"creation_myth,omitempty"`
	Legends       string            `json:"legends,omitempty"`
	History       string            `json:"history,omitempty"`
	ImageURL      string            `json:"image_url,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

func (a *Attributes) fields() map[string]*string {
	return map[string]*string{
		KeyCreatorName:   &a.CreatorName,
		KeyCollaboration: (*string)(&a.Collaboration),
		KeyInhabitants:   &a.Inhabitants,
		KeyCivilization:  &a.Civilization,
		KeyFactions:      &a.Factions,
		KeyTechLevel:     &a.TechLevel,
		KeyTechnology:    &a.Technology,
		KeyMagicExists:   &a.MagicExists,
		KeyMagicSystem:   &a.MagicSystem,
		KeyCreationMyth:  &a.CreationMyth,
		KeyLegends:       &a.Legends,
		KeyHistory:       &a.History,
		KeyImageURL:      &a.ImageURL,
	}
}

// ToMap flattens the attributes into the key/value form stored by the backend.
// Empty promoted fields are omitted.
func (a Attributes) ToMap() map[string]string {
	out := make(map[string]string, len(a.Extra)+4)
	for k, v := range a.Extra {
		out[k] = v
	}
	for k, p := range a.fields() {
		if *p != "" {
			out[k] = *p
		}
	}
	return out
}

func AttributesFromMap(m map[string]string) Attributes {
	var a Attributes
	promoted := a.fields()
	for k, v := range m {
		if p, ok := promoted[k]; ok {
			*p = v
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]string)
		}
		a.Extra[k] = v
	}
	return a
}

// Get returns the value stored under key, promoted or extra.
func (a Attributes) Get(key string) string {
	if p, ok := a.fields()[key]; ok {
		return *p
	}
	return a.Extra[key]
}

// Keys returns every non-empty key in sorted order.
func (a Attributes) Keys() []string {
	m := a.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func IsLoreKey(key string) bool {
	for _, k := range LoreKeys {
		if k == key {
			return true
		}
	}
	return false
}
