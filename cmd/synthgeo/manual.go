package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
)

// manualProblem is the parsed result of -manual mode: a minimal, explicitly
// documented line grammar standing in for the text/drawing-file parser
// spec.md §6 treats as an external collaborator (out of this module's
// scope). It is deliberately small — one directive per line:
//
//	point <name> <x> <y>
//	axiom <relation> <point-args...> [m n]   (m n only for aconst)
//	goal  <relation> <point-args...> [m n]
//
// Blank lines and lines starting with '#' are ignored.
type manualProblem struct {
	points []point.Point
	axioms []predicate.Predicate
	goals  []predicate.Predicate
}

func parseManual(src string) (manualProblem, error) {
	var mp manualProblem
	pts := map[string]point.Point{}

	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "point":
			if len(fields) != 4 {
				return manualProblem{}, fmt.Errorf("line %d: want 'point name x y'", lineNo+1)
			}
			x, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return manualProblem{}, fmt.Errorf("line %d: bad x: %w", lineNo+1, err)
			}
			y, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return manualProblem{}, fmt.Errorf("line %d: bad y: %w", lineNo+1, err)
			}
			pt := point.New(fields[1], x, y)
			pts[pt.Name] = pt
			mp.points = append(mp.points, pt)
		case "axiom", "goal":
			pr, err := buildPredicate(fields[1], fields[2:], pts)
			if err != nil {
				return manualProblem{}, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			if fields[0] == "axiom" {
				mp.axioms = append(mp.axioms, pr)
			} else {
				mp.goals = append(mp.goals, pr)
			}
		default:
			return manualProblem{}, fmt.Errorf("line %d: unknown directive %q", lineNo+1, fields[0])
		}
	}
	return mp, nil
}

// wantArgs is the number of trailing args (point names, plus m/n for
// aconst) each relation requires; buildPredicate rejects a short line
// before indexing into args, rather than panicking.
var wantArgs = map[predicate.Kind]int{
	predicate.KindCol:       3,
	predicate.KindCyclic:    4,
	predicate.KindMidp:      3,
	predicate.KindPara:      4,
	predicate.KindPerp:      4,
	predicate.KindCong:      4,
	predicate.KindEqangle:   6,
	predicate.KindSameclock: 6,
	predicate.KindEqratio:   8,
	predicate.KindSimtri1:   6,
	predicate.KindSimtri2:   6,
	predicate.KindContri1:   6,
	predicate.KindContri2:   6,
	predicate.KindAconst:    5,
}

func buildPredicate(relation string, args []string, pts map[string]point.Point) (predicate.Predicate, error) {
	want, ok := wantArgs[predicate.Kind(relation)]
	if !ok {
		return predicate.Predicate{}, fmt.Errorf("unknown relation %q", relation)
	}
	if len(args) < want {
		return predicate.Predicate{}, fmt.Errorf("relation %q wants %d args, got %d", relation, want, len(args))
	}

	resolve := func(names ...string) ([]point.Point, error) {
		out := make([]point.Point, len(names))
		for i, n := range names {
			pt, ok := pts[n]
			if !ok {
				return nil, fmt.Errorf("unknown point %q", n)
			}
			out[i] = pt
		}
		return out, nil
	}

	switch predicate.Kind(relation) {
	case predicate.KindCol:
		p, err := resolve(args[0], args[1], args[2])
		if err != nil {
			return predicate.Predicate{}, err
		}
		return predicate.Col(p[0], p[1], p[2]), nil
	case predicate.KindCyclic:
		p, err := resolve(args[0], args[1], args[2], args[3])
		if err != nil {
			return predicate.Predicate{}, err
		}
		return predicate.Cyclic(p[0], p[1], p[2], p[3]), nil
	case predicate.KindMidp:
		p, err := resolve(args[0], args[1], args[2])
		if err != nil {
			return predicate.Predicate{}, err
		}
		return predicate.Midp(p[0], p[1], p[2]), nil
	case predicate.KindPara, predicate.KindPerp, predicate.KindCong:
		p, err := resolve(args[0], args[1], args[2], args[3])
		if err != nil {
			return predicate.Predicate{}, err
		}
		switch predicate.Kind(relation) {
		case predicate.KindPara:
			return predicate.Para(p[0], p[1], p[2], p[3]), nil
		case predicate.KindPerp:
			return predicate.Perp(p[0], p[1], p[2], p[3]), nil
		default:
			return predicate.Cong(p[0], p[1], p[2], p[3]), nil
		}
	case predicate.KindEqangle, predicate.KindSameclock:
		p, err := resolve(args[0], args[1], args[2], args[3], args[4], args[5])
		if err != nil {
			return predicate.Predicate{}, err
		}
		if predicate.Kind(relation) == predicate.KindEqangle {
			return predicate.Eqangle(p[0], p[1], p[2], p[3], p[4], p[5]), nil
		}
		return predicate.Sameclock(p[0], p[1], p[2], p[3], p[4], p[5]), nil
	case predicate.KindEqratio:
		p, err := resolve(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])
		if err != nil {
			return predicate.Predicate{}, err
		}
		return predicate.Eqratio(p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]), nil
	case predicate.KindSimtri1, predicate.KindSimtri2, predicate.KindContri1, predicate.KindContri2:
		p, err := resolve(args[0], args[1], args[2], args[3], args[4], args[5])
		if err != nil {
			return predicate.Predicate{}, err
		}
		switch predicate.Kind(relation) {
		case predicate.KindSimtri1:
			return predicate.Simtri1(p[0], p[1], p[2], p[3], p[4], p[5]), nil
		case predicate.KindSimtri2:
			return predicate.Simtri2(p[0], p[1], p[2], p[3], p[4], p[5]), nil
		case predicate.KindContri1:
			return predicate.Contri1(p[0], p[1], p[2], p[3], p[4], p[5]), nil
		default:
			return predicate.Contri2(p[0], p[1], p[2], p[3], p[4], p[5]), nil
		}
	case predicate.KindAconst:
		p, err := resolve(args[0], args[1], args[2])
		if err != nil {
			return predicate.Predicate{}, err
		}
		m, err := strconv.Atoi(args[3])
		if err != nil {
			return predicate.Predicate{}, fmt.Errorf("bad m: %w", err)
		}
		n, err := strconv.Atoi(args[4])
		if err != nil {
			return predicate.Predicate{}, fmt.Errorf("bad n: %w", err)
		}
		return predicate.Aconst(p[0], p[1], p[2], m, n), nil
	default:
		return predicate.Predicate{}, fmt.Errorf("unknown relation %q", relation)
	}
}
