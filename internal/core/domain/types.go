package domain

type WorldType string

const (
	TypeTerrestrial WorldType = "terrestrial"
	TypeOcean       WorldType = "ocean"
	TypeDesert      WorldType = "desert"
	TypeIce         WorldType = "ice"
	TypeVolcanic    WorldType = "volcanic"
	TypeForest      WorldType = "forest"
	TypeSky         WorldType = "sky"
	TypeCrystal     WorldType = "crystal"
	TypeDark        WorldType = "dark"
	TypeArcane      WorldType = "arcane"
	TypeCity        WorldType = "city"
	TypeOther       WorldType = "other"
	TypeUnknown     WorldType = "unknown"
)

type TypeInfo struct {
	Type  WorldType `json:"type"`
	Emoji string    `json:"emoji"`
	Label string    `json:"label"`
}

var worldTypes = []TypeInfo{
	{TypeTerrestrial, "🌍", "Terrestrial World"},
	{TypeOcean, "🌊", "Ocean World"},
	{TypeDesert, "🏜️", "Desert World"},
	{TypeIce, "❄️", "Ice World"},
	{TypeVolcanic, "🌋", "Volcanic World"},
	{TypeForest, "🌲", "Forest World"},
	{TypeSky, "☁️", "Sky World"},
	{TypeCrystal, "💎", "Crystal World"},
	{TypeDark, "🌑", "Dark World"},
	{TypeArcane, "🔮", "Arcane World"},
	{TypeCity, "🏙️", "City World"},
	{TypeOther, "✦", "Unique World"},
	{TypeUnknown, "❓", "Unknown World"},
}

// WorldTypes returns the display table in a stable order.
func WorldTypes() []TypeInfo {
	out := make([]TypeInfo, len(worldTypes))
	copy(out, worldTypes)
	return out
}

// Info falls back to the "unknown" entry for unrecognised tags.
func (t WorldType) Info() TypeInfo {
	for _, info := range worldTypes {
		if info.Type == t {
			return info
		}
	}
	return worldTypes[len(worldTypes)-1]
}

func (t WorldType) Valid() bool {
	for _, info := range worldTypes {
		if info.Type == t {
			return true
		}
	}
	return false
}

// ParseWorldType maps an arbitrary tag onto a known type.
func ParseWorldType(s string) WorldType {
	t := WorldType(s)
	if t.Valid() {
		return t
	}
	return TypeUnknown
}
