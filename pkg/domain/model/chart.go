package model

// ChartSpec is the declarative chart description consumed by the
// Plotly.js renderer on the dashboard page. It is serialized as-is and
// never processed further server-side.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly trace. Line and bar traces use X/Y, pie traces
// use Labels/Values.
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	X      []string  `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
}

// Marker holds trace color styling
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// Line holds line trace styling
type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Layout holds chart-level presentation settings
type Layout struct {
	Title  string `json:"title"`
	Height int    `json:"height"`
	XAxis  *Axis  `json:"xaxis,omitempty"`
	YAxis  *Axis  `json:"yaxis,omitempty"`
}

// Axis holds one axis configuration
type Axis struct {
	Title     string `json:"title,omitempty"`
	TickAngle int    `json:"tickangle,omitempty"`
}

// defaultChartHeight matches the fixed height of every dashboard chart
const defaultChartHeight = 400

// Fixed color palettes per chart kind
var (
	trendLineColor = "#667eea"

	piePalette = []string{
		"#667eea", "#764ba2", "#f093fb", "#4facfe",
		"#43e97b", "#fa709a", "#fee140", "#30cfd0",
	}

	barColor = "#764ba2"
)

// NewTrendChart builds a line chart spec from month buckets
func NewTrendChart(title string, buckets []*MonthBucket) *ChartSpec {
	x := make([]string, len(buckets))
	y := make([]float64, len(buckets))
	for i, b := range buckets {
		x[i] = b.Label
		y[i] = b.Revenue
	}
	return &ChartSpec{
		Data: []Trace{{
			Type: "scatter",
			Mode: "lines+markers",
			Name: title,
			X:    x,
			Y:    y,
			Line: &Line{Color: trendLineColor, Width: 2},
		}},
		Layout: Layout{
			Title:  title,
			Height: defaultChartHeight,
			YAxis:  &Axis{Title: "Revenue (INR)"},
		},
	}
}

// NewPieChart builds a pie chart spec from category values
func NewPieChart(title string, categories []*CategoryValue) *ChartSpec {
	labels := make([]string, len(categories))
	values := make([]float64, len(categories))
	for i, c := range categories {
		labels[i] = c.Category
		values[i] = c.Value
	}
	colors := make([]string, len(categories))
	for i := range colors {
		colors[i] = piePalette[i%len(piePalette)]
	}
	return &ChartSpec{
		Data: []Trace{{
			Type:   "pie",
			Labels: labels,
			Values: values,
			Marker: &Marker{Colors: colors},
		}},
		Layout: Layout{
			Title:  title,
			Height: defaultChartHeight,
		},
	}
}

// NewBarChart builds a bar chart spec from category values
func NewBarChart(title string, categories []*CategoryValue) *ChartSpec {
	x := make([]string, len(categories))
	y := make([]float64, len(categories))
	for i, c := range categories {
		x[i] = c.Category
		y[i] = c.Value
	}
	return &ChartSpec{
		Data: []Trace{{
			Type:   "bar",
			X:      x,
			Y:      y,
			Marker: &Marker{Color: barColor},
		}},
		Layout: Layout{
			Title:  title,
			Height: defaultChartHeight,
			XAxis:  &Axis{TickAngle: 45},
		},
	}
}
