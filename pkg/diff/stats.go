// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package diff analyzes and segments unified git diffs.
package diff

import (
	"fmt"
	"strings"
)

// fileHeaderPrefix marks the start of one file's block in a unified diff.
const fileHeaderPrefix = "diff --git "

// Stats holds aggregate change statistics for one diff.
// Derived once from the full diff text and never mutated.
type Stats struct {
	FilesChanged int
	LinesAdded   int
	LinesDeleted int
}

// Analyze computes aggregate statistics from unified diff text.
// It never fails; malformed or empty input yields zero stats.
func Analyze(diff string) Stats {
	var s Stats
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, fileHeaderPrefix):
			s.FilesChanged++
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			// file markers, not content
		case strings.HasPrefix(line, "+"):
			s.LinesAdded++
		case strings.HasPrefix(line, "-"):
			s.LinesDeleted++
		}
	}
	return s
}

// String renders the stats the way git shortstat does, e.g.
// "2 files changed, 10 insertions(+), 3 deletions(-)".
func (s Stats) String() string {
	files := "files"
	if s.FilesChanged == 1 {
		files = "file"
	}
	return fmt.Sprintf("%d %s changed, %d insertions(+), %d deletions(-)",
		s.FilesChanged, files, s.LinesAdded, s.LinesDeleted)
}
