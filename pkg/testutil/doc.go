// Package testutil provides shared test infrastructure: an in-memory
// types.FS implementation with error injection, and helpers for laying
// out assembly trees and order directive files.
//
// Nothing in this package is used by production code.
package testutil
