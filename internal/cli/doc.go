// Package cli implements the algoviz command line: serve, run and list.
//
//	algoviz serve [--addr :5000] [--log-level info] ...
//	algoviz run ALGORITHM [FILE|-] [--json] [--seed N] [--verify]
//	algoviz list [--json]
package cli
