// SPDX-License-Identifier: MIT

package hailstone

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	opParse = "Parse"

	fieldSep  = ","
	motionSep = "@"
)

// Parse reads one observation per line in the form
//
//	19, 13, 30 @ -2,  1, -2
//
// Blank lines are skipped. Errors carry the 1-based line number and wrap
// ErrBadFormat.
func Parse(r io.Reader) ([]Observation, error) {
	var out []Observation
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		o, err := ParseLine(text)
		if err != nil {
			return nil, hailErrorf(opParse, fmt.Errorf("line %d: %w", line, err))
		}
		out = append(out, o)
	}
	if err := sc.Err(); err != nil {
		return nil, hailErrorf(opParse, err)
	}

	return out, nil
}

// ParseLine parses a single "px, py, pz @ vx, vy, vz" record.
func ParseLine(s string) (Observation, error) {
	pos, vel, ok := strings.Cut(s, motionSep)
	if !ok {
		return Observation{}, fmt.Errorf("missing %q in %q: %w", motionSep, s, ErrBadFormat)
	}
	p, err := parseVec3(pos)
	if err != nil {
		return Observation{}, fmt.Errorf("position: %w", err)
	}
	v, err := parseVec3(vel)
	if err != nil {
		return Observation{}, fmt.Errorf("velocity: %w", err)
	}

	return Observation{Position: p, Velocity: v}, nil
}

func parseVec3(s string) (Vec3, error) {
	parts := strings.Split(s, fieldSep)
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("want 3 components, got %d in %q: %w", len(parts), strings.TrimSpace(s), ErrBadFormat)
	}
	var xyz [3]int64
	for k, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("component %d: %w: %w", k, ErrBadFormat, err)
		}
		xyz[k] = n
	}

	return Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
