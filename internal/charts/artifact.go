// Package charts renders deterministic chart data from aggregated
// simulation metrics. Renderers are pure functions: identical input
// produces identical artifacts, and empty input produces a labeled
// placeholder instead of an error.
package charts

// Point is one x/y coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named polyline.
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// Bar is one labeled bar.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Cell is one heatmap cell.
type Cell struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Artifact is one self-contained chart: axis labels, a title and the
// geometry for whichever chart kind it carries.
type Artifact struct {
	Kind        string   `json:"kind"` // "line", "bar" or "heatmap"
	Title       string   `json:"title"`
	XLabel      string   `json:"xLabel"`
	YLabel      string   `json:"yLabel"`
	Series      []Series `json:"series,omitempty"`
	Bars        []Bar    `json:"bars,omitempty"`
	Cells       []Cell   `json:"cells,omitempty"`
	Placeholder bool     `json:"placeholder,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// placeholder builds the degenerate artifact returned on empty input.
func placeholder(kind, title string) Artifact {
	return Artifact{
		Kind:        kind,
		Title:       title,
		Placeholder: true,
		Note:        "no simulation data available",
	}
}
