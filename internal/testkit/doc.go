// Package testkit provides the shared test scaffolding for the datealgo
// packages: a YAML table of known calendar points, deterministic samplers
// over the supported rata die range, and an independent oracle built on the
// standard library's time package.
//
// It is imported only from *_test.go files.
package testkit
