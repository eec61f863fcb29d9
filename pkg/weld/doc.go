// Package weld drives the merge pipeline end to end: expand and split the
// input assemblies, apply the ordering directives, write the order record,
// locate the external tool and run it.
//
// Plan covers the pure planning half and is what `ilweld plan` and
// --dry-run use. Run adds tool location and invocation on top.
package weld
