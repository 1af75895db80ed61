// Package pkg provides the core libraries for Boggen board generation.
//
// # Overview
//
// Boggen rolls letter dice into candidate grids and searches each grid
// against a compiled dictionary graph, repeating until a board satisfies
// the requested constraints. The pkg directory is organized into four
// main areas:
//
//  1. [dawg], [solve] - Domain logic (dictionary graph, board search)
//  2. [board], [generate], [game] - Board modeling, generation, play
//  3. [cache], [observability] - Infrastructure (result caching, hooks)
//  4. [errors], [buildinfo] - Cross-cutting (structured errors, versioning)
//
// # Architecture
//
// The typical data flow through Boggen:
//
//	Word list
//	     ↓
//	[dawg] package (compile / load the packed dictionary graph)
//	     ↓
//	[generate] package (roll dice, pre-filter, budgeted retry loop)
//	     ↓
//	[solve] package (recursive grid search, dedup, scoring)
//	     ↓
//	Board + word list + aggregates
//
// # Quick Start
//
// Generate a constrained board:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/tilesmith/boggen/pkg/board"
//	    "github.com/tilesmith/boggen/pkg/dawg"
//	    "github.com/tilesmith/boggen/pkg/generate"
//	    "github.com/tilesmith/boggen/pkg/solve"
//	)
//
//	// 1. Load the compiled dictionary
//	f, _ := os.Open("words.dwg")
//	dict, _ := dawg.Load(f)
//
//	// 2. Pick a dice catalog
//	set, _ := board.SetByName("4")
//
//	// 3. Generate
//	gen := generate.New(dict, solve.DefaultScores, nil)
//	result, _ := gen.Generate(context.Background(), generate.Request{
//	    Dice:        set.Dice,
//	    Width:       set.Size,
//	    Height:      set.Size,
//	    Constraints: solve.Constraints{MinWords: 100, MinLongest: 7},
//	    Seed:        42,
//	})
//
// # Main Packages
//
// ## Domain Logic
//
// [dawg] - The packed dictionary graph: 32-bit records holding a letter,
// end-of-word and end-of-sibling-run flags, and a child index. Provides
// the binary artifact codec and a trie-shaped compiler for word lists.
//
// [solve] - The board search. A Solver walks grid cells in lock-step with
// the dictionary graph, deduplicates words in a reusable open-addressed
// set, scores by word length, and aborts the instant an upper bound is
// crossed.
//
// [board] - Letter grids and the dice catalogs that fill them. Cells are
// single letters or compound codes standing for two-letter sequences
// (Qu, In, Th, Er, He, An) plus the blank face.
//
// [generate] - The constrained generation loop: seeded dice sampling, a
// cheap letter-statistics pre-filter, and a budgeted retry loop with an
// explicit exhaustion error. Also replays exact boards deterministically.
//
// [game] - Timed play sessions over a generated board: guess checking,
// found/bad tallies, and the missed-word report.
//
// ## Infrastructure
//
// [cache] - Result caching for the server and CLI. FileCache for local
// use, RedisCache for multi-instance deployments, NullCache to disable,
// with request-hash key derivation.
//
// [observability] - Hook interfaces for generation and cache events with
// no-op defaults, letting embedders attach metrics without boggen linking
// any metrics library.
//
// ## Cross-Cutting
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP API.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
package pkg
