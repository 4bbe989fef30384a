// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package summarize

import (
	"strings"
)

// PlaceholderSummary is used when a segment's response yields no usable
// lines. A parsing failure must never cause files to vanish from the
// final message's evidence base.
const PlaceholderSummary = "modified (summary unavailable)"

// maxSummaryLen bounds a single parsed summary line.
const maxSummaryLen = 120

// templateEchoPrefixes marks lines the model copied back from the
// instruction template rather than produced as answers.
var templateEchoPrefixes = []string{
	"files:",
	"diff:",
	"filename: summary",
	"summarize the change",
	"respond with",
	"keep each summary",
	"```",
	"#",
}

// ParseSummaries turns one provider response into per-file summaries for
// the segment that produced it. It never fails: for any input text and a
// non-empty expected file list the result has between 1 and
// len(expected) entries. The second return value reports whether the
// placeholder fallback was used.
//
// Lines are split at the first colon into a candidate filename and
// summary; the pair is accepted only when the candidate fuzzily matches
// an expected file (containment either direction, tolerating the
// path-prefix drift models produce).
func ParseSummaries(response string, expected []string) ([]FileSummary, bool) {
	var summaries []FileSummary
	seen := make(map[string]bool, len(expected))

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line == "" || isTemplateEcho(line) {
			continue
		}

		name, summary, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.Trim(strings.TrimSpace(name), "`\"'")
		summary = strings.TrimSpace(summary)
		if name == "" || summary == "" {
			continue
		}

		matched := matchExpected(name, expected)
		if matched == "" || seen[matched] {
			continue
		}
		seen[matched] = true

		if len(summary) > maxSummaryLen {
			summary = summary[:maxSummaryLen]
		}
		summaries = append(summaries, FileSummary{Filename: matched, Summary: summary})
	}

	if len(summaries) == 0 && len(expected) > 0 {
		for _, f := range expected {
			summaries = append(summaries, FileSummary{Filename: f, Summary: PlaceholderSummary})
		}
		return summaries, true
	}

	return summaries, false
}

func isTemplateEcho(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range templateEchoPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// matchExpected returns the expected filename the candidate refers to,
// or "" when nothing matches.
func matchExpected(candidate string, expected []string) string {
	for _, f := range expected {
		if strings.Contains(candidate, f) || strings.Contains(f, candidate) {
			return f
		}
	}
	return ""
}
