package predicate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/synthgeo/point"
)

// Kind tags the variant a Predicate represents. Adding a new relation means
// adding a Kind and teaching every switch in this package (canonical.go,
// valid.go, rows.go, decompose.go, enumerate.go) about it — there is no
// separate per-kind type to extend.
type Kind string

// The relation kinds from spec.md §3. String values are the lowercase
// relation name used by String() and by the rendered proof (§6).
const (
	KindCol       Kind = "col"
	KindPara      Kind = "para"
	KindPerp      Kind = "perp"
	KindCong      Kind = "cong"
	KindEqangle   Kind = "eqangle"
	KindEqratio   Kind = "eqratio"
	KindCyclic    Kind = "cyclic"
	KindMidp      Kind = "midp"
	KindSimtri1   Kind = "simtri1"
	KindSimtri2   Kind = "simtri2"
	KindContri1   Kind = "contri1"
	KindContri2   Kind = "contri2"
	KindSameclock Kind = "sameclock"
	KindAconst    Kind = "aconst"
)

// LineKey is an unordered pair of distinct point names: the column
// identifier shared by both AR matrices. Two segments incident to the same
// unordered point pair collapse to the same LineKey.
type LineKey struct {
	A, B string
}

// NewLineKey builds the canonical (sorted) LineKey for p and q.
func NewLineKey(p, q point.Point) LineKey {
	if p.Name <= q.Name {
		return LineKey{p.Name, q.Name}
	}
	return LineKey{q.Name, p.Name}
}

func (k LineKey) String() string { return k.A + k.B }

// Degenerate reports whether the two endpoints of the key are the same name.
func (k LineKey) Degenerate() bool { return k.A == k.B }

func sortedLineKeyPair(l1, l2 LineKey) (LineKey, LineKey) {
	if l1.String() <= l2.String() {
		return l1, l2
	}
	return l2, l1
}

// Predicate is a tagged variant over every relation in spec.md §3.
// The zero value is not meaningful; use one of the constructors in this
// package (Col, Para, Perp, ...). Points preserves the exact argument order
// construction was called with, which both String() and the symmetry-aware
// rotation helpers in canonical.go rely on.
type Predicate struct {
	kind   Kind
	points []point.Point
	m, n   int // only meaningful for KindAconst, n reduced to lowest terms with m
	canon  string
}

// Kind reports the predicate's variant tag.
func (p Predicate) Kind() Kind { return p.kind }

// Points returns the points this predicate was constructed from, in
// constructor argument order (not canonicalized).
func (p Predicate) Points() []point.Point {
	out := make([]point.Point, len(p.points))
	copy(out, p.points)
	return out
}

// M, N return the reduced angle-constant numerator/denominator for an
// Aconst predicate; both are zero for every other kind.
func (p Predicate) M() int { return p.m }
func (p Predicate) N() int { return p.n }

// Canonical returns the deterministic byte string identifying this
// predicate up to its declared symmetries. Equality and hashing of
// predicates throughout this module are defined in terms of Canonical.
func (p Predicate) Canonical() string { return p.canon }

// String renders "<lowercase relname> <args>", matching §6's rendered
// proof line format: point arguments by name, integer arguments in decimal.
func (p Predicate) String() string {
	parts := make([]string, 0, len(p.points)+2)
	for _, pt := range p.points {
		parts = append(parts, pt.Name)
	}
	if p.kind == KindAconst {
		parts = append(parts, strconv.Itoa(p.m), strconv.Itoa(p.n))
	}
	return string(p.kind) + " " + strings.Join(parts, " ")
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
