package form

import "github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextArea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindEmail    FieldKind = "email"
	KindCheckbox FieldKind = "checkbox"
)

// Form keys that are not world attributes.
const (
	KeyName         = "name"
	KeyType         = "type"
	KeyDescription  = "description"
	KeyCreatorEmail = "creator_email"
	KeyTerms        = "terms"
)

const (
	MaxNameLength        = 60
	MaxDescriptionLength = 240
	MaxLoreLength        = 2000
)

type Field struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	MaxLen   int       `json:"max_length,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

type Step struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

func typeOptions() []string {
	types := domain.WorldTypes()
	opts := make([]string, 0, len(types))
	for _, t := range types {
		if t.Type == domain.TypeUnknown {
			continue
		}
		opts = append(opts, string(t.Type))
	}
	return opts
}

func lore(key, label string) Field {
	return Field{Key: key, Label: label, Kind: KindTextArea, MaxLen: MaxLoreLength}
}

var steps = []Step{
	{
		Number: 1,
		Title:  "Basics",
		Fields: []Field{
			{Key: KeyName, Label: "World Name", Kind: KindText, Required: true, MaxLen: MaxNameLength},
			{Key: KeyType, Label: "World Type", Kind: KindSelect, Required: true, Options: typeOptions()},
			{Key: KeyDescription, Label: "Description", Kind: KindTextArea, Required: true, MaxLen: MaxDescriptionLength},
		},
	},
	{
		Number: 2,
		Title:  "Civilization",
		Fields: []Field{
			lore(domain.KeyInhabitants, "Inhabitants"),
			lore(domain.KeyCivilization, "Civilization"),
			lore(domain.KeyFactions, "Factions"),
		},
	},
	{
		Number: 3,
		Title:  "Technology & Magic",
		Fields: []Field{
			{Key: domain.KeyTechLevel, Label: "Tech Level", Kind: KindSelect,
				Options: []string{"primitive", "medieval", "industrial", "modern", "advanced", "transcendent"}},
			lore(domain.KeyTechnology, "Technology"),
			{Key: domain.KeyMagicExists, Label: "Does Magic Exist?", Kind: KindSelect,
				Options: []string{"yes", "no", "rare", "forbidden"}},
			lore(domain.KeyMagicSystem, "Magic System"),
		},
	},
	{
		Number: 4,
		Title:  "Lore",
		Fields: []Field{
			lore(domain.KeyCreationMyth, "Creation Myth"),
			lore(domain.KeyLegends, "Legends"),
			lore(domain.KeyHistory, "History"),
		},
	},
	{
		Number: 5,
		Title:  "Creator",
		Fields: []Field{
			{Key: domain.KeyCreatorName, Label: "Creator Name", Kind: KindText, Required: true, MaxLen: MaxNameLength},
			{Key: KeyCreatorEmail, Label: "Email", Kind: KindEmail, Required: true},
			{Key: domain.KeyCollaboration, Label: "Collaboration", Kind: KindSelect,
				Options: []string{string(domain.CollaborationOpen), string(domain.CollaborationLocked)}},
			{Key: KeyTerms, Label: "I agree to the community guidelines", Kind: KindCheckbox, Required: true},
		},
	},
}

// Steps returns the wizard layout.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

func TotalSteps() int {
	return len(steps)
}

func stepByNumber(n int) (Step, bool) {
	if n < 1 || n > len(steps) {
		return Step{}, false
	}
	return steps[n-1], true
}
