package state

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Step is one scripted pointer event together with the tool in effect.
type Step struct {
	Tool  Tool
	Event Event
}

// ParseScript reads a pointer-event script. Each line is either
//
//	tool <selection|line|rectangle>
//	<down|move|up> <x> <y>
//
// Blank lines and lines starting with # are skipped. Tool lines change the
// tool for the steps that follow.
func ParseScript(r io.Reader, tool Tool) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if fields[0] == "tool" {
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected \"tool <name>\"", line)
			}
			t, err := ParseTool(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			tool = t
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected \"<event> <x> <y>\"", line)
		}
		kind, err := ParseEventKind(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		x, err := parseCoord(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x: %w", line, err)
		}
		y, err := parseCoord(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y: %w", line, err)
		}
		steps = append(steps, Step{Tool: tool, Event: Event{Kind: kind, X: x, Y: y}})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// Replay feeds steps into e in order.
func (e *Editor) Replay(steps []Step) Interaction {
	for _, s := range steps {
		e.Handle(s.Event, s.Tool)
	}
	return e.ix
}
