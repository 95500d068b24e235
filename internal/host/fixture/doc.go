// Package fixture describes a game session in a file: the installed catalog,
// what starts out loaded, per-kind capacity overrides, and the placed-scenery
// surface. Fixtures are read as YAML, TOML or JSON and turned into an
// in-memory host for the command line harness and tests.
package fixture
