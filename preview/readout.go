package preview

import (
	"fmt"

	"github.com/pthm-cable/perlin/telemetry"
	"github.com/pthm-cable/perlin/ui"
)

// Readout is the data shown in the panel's status sections.
type Readout struct {
	Min, Max, Mean float32
	Time           float32
	Zoom           float32
	Seed           int64
	FPS            int32
	Perf           telemetry.PerfStats
}

func readout(d any) *Readout {
	return d.(*Readout)
}

var fieldSection = ui.SectionDescriptor{
	Title: "Field",
	Fields: []ui.FieldDescriptor{
		{Label: "Min", Widget: ui.WidgetCenteredBar, Format: "%+.3f", Range: ui.NoiseRange(),
			Getter: func(d any) float32 { return readout(d).Min }},
		{Label: "Max", Widget: ui.WidgetCenteredBar, Format: "%+.3f", Range: ui.NoiseRange(),
			Getter: func(d any) float32 { return readout(d).Max }},
		{Label: "Mean", Widget: ui.WidgetCenteredBar, Format: "%+.3f", Range: ui.NoiseRange(),
			Getter: func(d any) float32 { return readout(d).Mean }},
		{Label: "Time", Widget: ui.WidgetText, Format: "%.1f s",
			Getter: func(d any) float32 { return readout(d).Time }},
		{Label: "Zoom", Widget: ui.WidgetText, Format: "%.2fx",
			Getter: func(d any) float32 { return readout(d).Zoom }},
		{Label: "Table", Widget: ui.WidgetText,
			TextGetter: func(d any) string {
				if s := readout(d).Seed; s != 0 {
					return fmt.Sprintf("seed %d", s)
				}
				return "reference"
			}},
	},
}

var perfSection = ui.SectionDescriptor{
	Title: "Frame",
	Fields: []ui.FieldDescriptor{
		{Label: "FPS", Widget: ui.WidgetText, Format: "%.0f",
			Getter: func(d any) float32 { return float32(readout(d).FPS) }},
		{Label: "Avg", Widget: ui.WidgetText,
			TextGetter: func(d any) string { return fmt.Sprintf("%d us", readout(d).Perf.AvgFrame.Microseconds()) }},
		{Label: "Noise 3D", Widget: ui.WidgetBar, Format: "%.0f%%", Range: ui.FieldRange{Min: 0, Max: 100},
			Getter: func(d any) float32 { return float32(readout(d).Perf.PhasePct[telemetry.PhaseNoise3]) }},
		{Label: "Upload", Widget: ui.WidgetBar, Format: "%.0f%%", Range: ui.FieldRange{Min: 0, Max: 100},
			Getter: func(d any) float32 { return float32(readout(d).Perf.PhasePct[telemetry.PhaseUpload]) }},
	},
	// Hidden until the first perf window completes
	Visible: func(d any) bool { return readout(d).Perf.AvgFrame > 0 },
}
