// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package diff

import (
	"strings"
)

// Segment is one contiguous, file-aligned slice of a diff.
// A single file's hunks never span two segments. Content stays under the
// configured request ceiling, except when one file's block alone exceeds
// it; that file becomes its own oversized segment rather than being
// truncated or dropped.
type Segment struct {
	Content string
	Files   []string
}

// Size returns the segment's content length in bytes.
func (s Segment) Size() int {
	return len(s.Content)
}

// fileBlock is one file's complete slice of the diff, header included.
type fileBlock struct {
	name    string
	content string
}

// Split segments a unified diff along file boundaries so that each
// segment's content stays within maxUnitSize where possible. Segment
// order and within-segment file order follow file-appearance order in
// the source diff, and concatenating all segment contents in order
// reconstructs the input exactly. Input without any file headers yields
// no segments; callers treat that as a hard error, not an empty message.
func Split(diff string, maxUnitSize int) []Segment {
	blocks := splitFileBlocks(diff)
	if len(blocks) == 0 {
		return nil
	}

	var segments []Segment
	var content strings.Builder
	var files []string

	flush := func() {
		if content.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Content: content.String(), Files: files})
		content.Reset()
		files = nil
	}

	for _, block := range blocks {
		if content.Len() > 0 && content.Len()+len(block.content) > maxUnitSize {
			flush()
		}
		content.WriteString(block.content)
		if !containsFile(files, block.name) {
			files = append(files, block.name)
		}
	}
	flush()

	return segments
}

// splitFileBlocks cuts the diff at "diff --git" headers. Any preamble
// before the first header is kept with the first block so segmentation
// stays lossless.
func splitFileBlocks(diff string) []fileBlock {
	if diff == "" {
		return nil
	}

	lines := strings.SplitAfter(diff, "\n")
	var blocks []fileBlock
	var current strings.Builder
	currentName := ""
	sawHeader := false

	for _, line := range lines {
		if strings.HasPrefix(line, fileHeaderPrefix) {
			if sawHeader {
				blocks = append(blocks, fileBlock{name: currentName, content: current.String()})
				current.Reset()
			}
			sawHeader = true
			currentName = parseFileName(line)
		}
		current.WriteString(line)
	}

	if !sawHeader {
		// No recognizable file headers; nothing to segment.
		return nil
	}
	blocks = append(blocks, fileBlock{name: currentName, content: current.String()})

	return blocks
}

// parseFileName extracts the post-image path from a header line of the
// form "diff --git a/path b/path".
func parseFileName(header string) string {
	header = strings.TrimSuffix(strings.TrimPrefix(header, fileHeaderPrefix), "\n")
	if idx := strings.Index(header, " b/"); idx >= 0 {
		return header[idx+len(" b/"):]
	}
	// Fall back to the last whitespace-separated field.
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return header
	}
	return strings.TrimPrefix(fields[len(fields)-1], "b/")
}

func containsFile(files []string, name string) bool {
	for _, f := range files {
		if f == name {
			return true
		}
	}
	return false
}
