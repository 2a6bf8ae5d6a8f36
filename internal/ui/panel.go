package ui

import (
	"fmt"
	"time"

	"magmalos/internal/core"
)

// LineKind selects how a panel line is drawn.
type LineKind int

const (
	LineTitle LineKind = iota
	LineGroup
	LineSummary
	LineParam
	LineInfo
)

// Line is one row of the side panel. Params carry a right-aligned value.
type Line struct {
	Kind  LineKind
	Text  string
	Value string
}

// Status describes the playback state shown beneath the parameters.
type Status struct {
	Frame    int
	Frames   int
	Interval time.Duration
	Paused   bool
}

// PanelLines lays out the side panel: the title, one block per parameter
// group with its summary, then the playback status and key help.
func PanelLines(title string, snapshot core.ParameterSnapshot, status Status) []Line {
	if title == "" {
		title = "Parameters"
	}
	lines := []Line{{Kind: LineTitle, Text: title}}
	for _, group := range snapshot.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, Line{Kind: LineGroup, Text: group.Name})
		if group.Summary != "" {
			lines = append(lines, Line{Kind: LineSummary, Text: group.Summary})
		}
		for _, p := range group.Params {
			lines = append(lines, Line{Kind: LineParam, Text: p.Label, Value: p.Value})
		}
	}
	lines = append(lines,
		Line{Kind: LineGroup, Text: "Playback"},
		Line{Kind: LineParam, Text: "Frame", Value: frameText(status)},
		Line{Kind: LineParam, Text: "Interval", Value: status.Interval.String()},
	)
	if status.Paused {
		lines = append(lines, Line{Kind: LineInfo, Text: "paused"})
	}
	lines = append(lines, Line{Kind: LineInfo, Text: "space pause  n step  r restart  q quit"})
	return lines
}

func frameText(s Status) string {
	if s.Frame < 0 {
		return fmt.Sprintf("-/%d", s.Frames)
	}
	return fmt.Sprintf("%d/%d", s.Frame, s.Frames-1)
}
