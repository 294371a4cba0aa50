// Package config loads the named tolerance and limit constants spec.md §9
// calls out as deserving names rather than inline literals, from an optional
// TOML file (github.com/BurntSushi/toml), falling back to the spec's own
// defaults when no file is given. It is pure configuration: it does not
// import proof, ar, or dd, so a caller wires the loaded values into those
// packages' own constructors/parameters explicitly (Problem has no
// "LoadConfig" method of its own).
package config
