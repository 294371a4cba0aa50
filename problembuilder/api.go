package problembuilder

import (
	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
	"github.com/katalvlaran/synthgeo/proof"
)

// Problem wraps a *proof.Problem with the rendering preference Build was
// configured with, so a caller driving the CLI's saturate-then-render
// sequence does not have to thread useColor through separately.
type Problem struct {
	*proof.Problem
	useColor bool
}

// Render renders the proof using the color preference Build was configured
// with (WithColor, default true).
func (p *Problem) Render() (string, error) {
	return p.RenderProof(p.useColor)
}

// Build assembles a Problem from points, axioms and goals, applying opts
// before construction. It is a thin, validated front door over proof.New:
// axiom validity, sub-predicate registration and the initial flush are all
// proof.New's own responsibility, not reimplemented here.
//
// Build returns whatever error proof.New returns (a *multierror.Error
// wrapping ErrInvalidAxiom once per offending axiom) unchanged, so callers
// can branch on errors.Is(err, proof.ErrInvalidAxiom) exactly as they would
// calling proof.New directly.
func Build(points []point.Point, axioms []predicate.Predicate, goals []predicate.Predicate, opts ...Option) (*Problem, error) {
	cfg := newConfig(opts...)

	inner, err := proof.New(points, axioms, goals)
	if err != nil {
		return nil, err
	}
	inner.SetLogger(cfg.logger)
	inner.SetSearchARCap(cfg.searchARCap)
	return &Problem{Problem: inner, useColor: cfg.useColor}, nil
}
