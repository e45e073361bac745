package galaxymap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

const (
	TooltipWidth       = 280.0
	TooltipMargin      = 10.0
	tooltipDescription = 150
	tooltipClusterList = 5
)

// Size is a pixel extent of the map container or of an element inside it.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Box is a pixel rectangle relative to the top-left corner of the container.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Tooltip struct {
	Visible     bool     `json:"visible"`
	Left        float64  `json:"left"`
	Top         float64  `json:"top"`
	Below       bool     `json:"below"`
	Emoji       string   `json:"emoji"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	TypeLabel   string   `json:"type_label,omitempty"`
	Description string   `json:"description,omitempty"`
	Collab      string   `json:"collab,omitempty"`
	Names       []string `json:"names,omitempty"`
}

// PlaceTooltip positions a tooltip of the given height centered above anchor.
// Left is the horizontal center of the tooltip and Top its bottom edge, unless
// Below is set, in which case Top is its upper edge under the anchor.
// The tooltip flips below the anchor when there is no room above and is kept
// inside the container on both axes. A container narrower than the tooltip
// centers it.
func PlaceTooltip(anchor Box, height float64, container Size) (left, top float64, below bool) {
	left = anchor.Left + anchor.Width/2
	top = anchor.Top - TooltipMargin

	half := TooltipWidth / 2
	switch {
	case container.Width < TooltipWidth+2*TooltipMargin:
		left = container.Width / 2
	case left+half > container.Width:
		left = container.Width - half - TooltipMargin
	case left-half < 0:
		left = half + TooltipMargin
	}

	if top-height < 0 {
		top = anchor.Top + anchor.Height + TooltipMargin
		below = true
		if top+height > container.Height {
			top = max(container.Height-height, 0)
		}
	}
	return left, top, below
}

func WorldTooltip(w *domain.WorldRecord) Tooltip {
	info := w.Type.Info()
	collab := "🔒 Locked"
	if w.IsOpenForCollaboration() {
		collab = "🔓 Open for collaboration"
	}
	return Tooltip{
		Visible:     true,
		Emoji:       info.Emoji,
		Title:       w.Name,
		Subtitle:    "by " + w.CreatorName(),
		TypeLabel:   info.Label,
		Description: Truncate(w.Description, tooltipDescription),
		Collab:      collab,
	}
}

func ClusterTooltip(c Cluster) Tooltip {
	if c.IsSingleton() {
		return WorldTooltip(&c.Members[0])
	}
	names := make([]string, 0, tooltipClusterList)
	for i := range c.Members {
		if i == tooltipClusterList {
			names = append(names, fmt.Sprintf("+%d more", c.Count()-tooltipClusterList))
			break
		}
		names = append(names, c.Members[i].Name)
	}
	return Tooltip{
		Visible:  true,
		Emoji:    "✨",
		Title:    fmt.Sprintf("%d worlds", c.Count()),
		Subtitle: "Click to zoom in",
		Names:    names,
	}
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "..."
}
