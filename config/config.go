package config

import (
	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/synthgeo/point"
)

// Config holds spec.md §9's named tolerance/limit constants. Zero-value
// fields are never meaningful; always obtain a Config via Default or Load.
type Config struct {
	// AngleTolerance is the absolute tolerance (radians) for angle-mod-pi
	// comparisons. Default 1e-2, matching point.AngleTolerance.
	AngleTolerance float64 `toml:"angle_tolerance"`

	// DistanceRelTolerance is the relative tolerance for distance/ratio
	// comparisons, mirroring Python's math.isclose default. Default 1e-9,
	// matching point.DistanceRelTolerance.
	DistanceRelTolerance float64 `toml:"distance_rel_tolerance"`

	// AREpsilon is the threshold below which an AR coefficient is treated
	// as zero (spec.md §4.3/§9). Exposed for documentation and for callers
	// who swap in a floating-point ratlinalg.System; the exact-rational
	// System this module ships makes the comparison exact and never
	// consults this field.
	AREpsilon float64 `toml:"ar_epsilon"`

	// MaxIters bounds proof.Problem.Saturate's loop (spec.md §4.4). Default 3.
	MaxIters int `toml:"max_iters"`

	// SearchARPointCap bounds the point count proof.Problem.SearchAR sweeps
	// over, since the sweep is Theta(P^4) (Cong/Para/Perp segment pairs) to
	// Theta(P^6) (Eqangle triple pairs) in the point count (spec.md §5). A
	// problem with more points than this is still accepted, but SearchAR
	// only considers the first SearchARPointCap points in
	// bfsPointOrder; DD is unaffected. Default 12.
	SearchARPointCap int `toml:"search_ar_point_cap"`
}

// Default returns the hard-coded defaults spec.md §9 names, used whenever no
// config file is supplied.
func Default() Config {
	return Config{
		AngleTolerance:       1e-2,
		DistanceRelTolerance: 1e-9,
		AREpsilon:            1e-9,
		MaxIters:             3,
		SearchARPointCap:     12,
	}
}

// Load reads path as TOML into a Config seeded with Default, so a partial
// file only overrides the fields it mentions. A missing or malformed file is
// reported as an error; callers wanting "file is optional" behavior should
// check os.IsNotExist themselves before calling Load.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply pushes AngleTolerance and DistanceRelTolerance into the point
// package's process-wide tolerance vars, so every predicate's IsValid (and
// search.go's degeneracy filter) sees the loaded config rather than the
// hard-coded default. Callers should call this once, before constructing
// any Problem, since every numeric comparison in the module reads these
// vars directly rather than threading a Config through every call.
func (c Config) Apply() {
	point.AngleTolerance = c.AngleTolerance
	point.DistanceRelTolerance = c.DistanceRelTolerance
}
