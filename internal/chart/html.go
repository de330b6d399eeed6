package chart

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/typefall/internal/scores"
)

//go:embed template.html
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "template.html"))

const (
	chartWidth   = 760
	chartHeight  = 260
	chartPadding = 40
	axisStep     = 50
)

type gridLine struct {
	Y     int
	X2    int
	TextY int
	Value int
}

type dot struct {
	X, Y int
}

type bar struct {
	X, Y, W, H int
}

type axisLabel struct {
	X, Y   int
	Anchor string
	Text   string
}

type chartView struct {
	Title    string
	Width    int
	Height   int
	Color    string
	Grid     []gridLine
	Polyline string
	Dots     []dot
	Bars     []bar
	Labels   []axisLabel
	Empty    bool
}

type modeView struct {
	ModeReport
	Line chartView
	Bars chartView
}

type pageView struct {
	Recent int
	Modes  []modeView
}

// Render writes the full HTML report for records to w.
func Render(w io.Writer, records []scores.Record, recentN int) error {
	page := pageView{Recent: recentN}
	for _, rep := range BuildModeReports(records, recentN) {
		page.Modes = append(page.Modes, modeView{
			ModeReport: rep,
			Line:       lineChart("Recent scores", rep.Recent, rep.Color),
			Bars:       barChart(fmt.Sprintf("Weekly average (last %d weeks)", weeklyBars), rep.Weekly, rep.Color),
		})
	}
	return reportTemplate.Execute(w, page)
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(path string, records []scores.Record, recentN int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := Render(f, records, recentN); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}

func lineChart(title string, points []Point, color string) chartView {
	cv := chartView{Title: title, Width: chartWidth, Height: chartHeight, Color: color}
	if len(points) == 0 {
		cv.Empty = true
		return cv
	}

	innerW := chartWidth - chartPadding*2
	innerH := chartHeight - chartPadding*2
	vmax := NiceMax(maxValue(points), axisStep)

	tx := func(i int) int {
		if len(points) == 1 {
			return chartPadding + innerW/2
		}
		return chartPadding + i*innerW/(len(points)-1)
	}
	ty := func(v int) int {
		return chartPadding + (vmax-v)*innerH/vmax
	}

	cv.Grid = gridLines(vmax, ty)

	var pts strings.Builder
	for i, p := range points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%d,%d", tx(i), ty(p.Value))
		cv.Dots = append(cv.Dots, dot{X: tx(i), Y: ty(p.Value)})
	}
	cv.Polyline = pts.String()

	// Only the first and last sample get an x label to avoid clutter.
	cv.Labels = append(cv.Labels, axisLabel{
		X: tx(0), Y: chartHeight - 8, Anchor: "start", Text: points[0].Label,
	})
	if len(points) > 1 {
		cv.Labels = append(cv.Labels, axisLabel{
			X: tx(len(points) - 1), Y: chartHeight - 8, Anchor: "end", Text: points[len(points)-1].Label,
		})
	}
	return cv
}

func barChart(title string, items []Point, color string) chartView {
	cv := chartView{Title: title, Width: chartWidth, Height: chartHeight, Color: color}
	if len(items) == 0 {
		cv.Empty = true
		return cv
	}

	innerW := chartWidth - chartPadding*2
	innerH := chartHeight - chartPadding*2
	vmax := NiceMax(maxValue(items), axisStep)

	n := len(items)
	gap := innerW / n
	barW := gap * 6 / 10
	if barW < 8 {
		barW = 8
	}
	by := func(v int) int {
		return chartPadding + (vmax-v)*innerH/vmax
	}

	cv.Grid = gridLines(vmax, by)

	for i, it := range items {
		x := chartPadding + i*gap + (gap-barW)/2
		y := by(it.Value)
		cv.Bars = append(cv.Bars, bar{X: x, Y: y, W: barW, H: chartPadding + innerH - y})
		cv.Labels = append(cv.Labels, axisLabel{
			X: x + barW/2, Y: chartPadding + innerH + 12, Anchor: "middle", Text: it.Label,
		})
	}
	return cv
}

func gridLines(vmax int, toY func(int) int) []gridLine {
	step := vmax / 5
	if step == 0 {
		step = 10
	}
	var lines []gridLine
	for v := 0; v <= vmax; v += step {
		y := toY(v)
		lines = append(lines, gridLine{
			Y:     y,
			X2:    chartWidth - chartPadding,
			TextY: y + 4,
			Value: v,
		})
	}
	return lines
}

func maxValue(points []Point) int {
	max := 0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}
