package galaxymap

import "github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

const DefaultClusterRadius = 6.0

type Cluster struct {
	Members  []domain.WorldRecord
	Centroid Point
	Color    domain.Color
}

func (c Cluster) Count() int {
	return len(c.Members)
}

func (c Cluster) IsSingleton() bool {
	return len(c.Members) == 1
}

func (c Cluster) IDs() []string {
	ids := make([]string, len(c.Members))
	for i := range c.Members {
		ids[i] = c.Members[i].ID
	}
	return ids
}

// Group partitions records into clusters in a single greedy pass over the input
// order. Each unclustered record seeds a cluster and absorbs every later
// unclustered record within radius/zoom of the seed. Distances are measured
// from the seed only, so two members of one cluster may be farther apart than
// the threshold.
func Group(records []domain.WorldRecord, zoom, radius float64) []Cluster {
	if !finite(zoom) {
		zoom = MinZoom
	}
	zoom = clamp(zoom, MinZoom, MaxZoom)
	if !finite(radius) || radius < 0 {
		radius = 0
	}
	threshold := radius / zoom

	clustered := make([]bool, len(records))
	clusters := make([]Cluster, 0, len(records))

	for i := range records {
		if clustered[i] {
			continue
		}
		clustered[i] = true
		seed := positionOf(&records[i])
		members := []domain.WorldRecord{records[i]}

		for j := i + 1; j < len(records); j++ {
			if clustered[j] {
				continue
			}
			if distance(seed, positionOf(&records[j])) < threshold {
				clustered[j] = true
				members = append(members, records[j])
			}
		}

		clusters = append(clusters, newCluster(members))
	}

	return clusters
}

func newCluster(members []domain.WorldRecord) Cluster {
	var sx, sy float64
	colors := make([]domain.Color, len(members))
	for i := range members {
		p := positionOf(&members[i])
		sx += p.X
		sy += p.Y
		colors[i] = members[i].Color
	}
	n := float64(len(members))
	return Cluster{
		Members:  members,
		Centroid: Point{sx / n, sy / n},
		Color:    domain.BlendColors(colors),
	}
}

func positionOf(w *domain.WorldRecord) Point {
	return Point{X: w.Position.X, Y: w.Position.Y}
}
