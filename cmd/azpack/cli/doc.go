// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for azpack.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct bound to a
// [pflag.FlagSet], and a Run function. Commands are assembled into a tree
// in cmd/azpack/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, logger construction, and
// structured help output with examples.
//
// Parameters are declared as tagged struct fields (see [BindFlags]):
//
//	type packParams struct {
//	    Concurrency int `flag:"concurrency,j" desc:"parallel workers" default:"0"`
//	}
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Errors returned by commands may be categorized with [Validation] or
// [Internal]; main maps the category to an exit status.
package cli
