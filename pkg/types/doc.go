// Package types holds the small set of interfaces shared across ilweld
// packages. Keeping them here avoids import cycles between the planning,
// discovery and execution layers.
package types
