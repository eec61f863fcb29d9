// Package registry provides a generic, thread-safe registry for named
// components. ilweld uses it to register merge tool flavors so the
// executor can resolve a flavor such as "ilmerge" or "ilrepack" by name.
//
// Registration normally happens from init() functions via MustRegister,
// which panics on duplicates since those are programming errors.
package registry
