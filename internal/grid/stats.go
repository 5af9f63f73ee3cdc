package grid

import "sort"

// Stats summarizes a set of generated lines.
type Stats struct {
	TotalLines int
	Panels     map[string]int
	// LineTypes always holds every LineType, zero counts included.
	LineTypes map[LineType]int
}

// ComputeStats counts lines per panel and per type.
func ComputeStats(lines []Line) Stats {
	s := Stats{
		TotalLines: len(lines),
		Panels:     make(map[string]int),
		LineTypes:  make(map[LineType]int, 3),
	}
	for _, t := range LineTypes() {
		s.LineTypes[t] = 0
	}
	for _, l := range lines {
		s.Panels[l.PanelLabel]++
		s.LineTypes[l.Type]++
	}
	return s
}

// PanelLabels returns the labels present in s, sorted.
func (s Stats) PanelLabels() []string {
	labels := make([]string, 0, len(s.Panels))
	for label := range s.Panels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
