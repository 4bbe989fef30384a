// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/diff"
)

// maxListedSummaries bounds how many per-file bullets are embedded in the
// composition prompt; beyond it only a count is reported, to keep the
// final request small no matter how large the diff was.
const maxListedSummaries = 10

// Composer merges diff statistics and per-file summaries into the final
// commit message via exactly one completion call.
type Composer struct {
	gateway ai.Gateway
	model   string
}

// NewComposer creates a composer.
func NewComposer(gateway ai.Gateway, model string) *Composer {
	return &Composer{gateway: gateway, model: model}
}

// Compose builds the composition prompt and returns the provider's
// response unmodified as the commit message.
func (c *Composer) Compose(ctx context.Context, stats diff.Stats, summaries []FileSummary) (string, error) {
	return c.gateway.Complete(ctx, c.model, BuildCompositionPrompt(stats, summaries))
}

// BuildCompositionPrompt renders the stats line, at most ten summary
// bullets plus a remainder note, and the commit message instruction.
func BuildCompositionPrompt(stats diff.Stats, summaries []FileSummary) string {
	var b strings.Builder
	b.WriteString("Write a git commit message for a change with these statistics:\n")
	b.WriteString(stats.String())
	b.WriteString("\n\nPer-file changes:\n")

	listed := summaries
	if len(listed) > maxListedSummaries {
		listed = listed[:maxListedSummaries]
	}
	for _, s := range listed {
		fmt.Fprintf(&b, "- %s: %s\n", s.Filename, s.Summary)
	}
	if remaining := len(summaries) - maxListedSummaries; remaining > 0 {
		fmt.Fprintf(&b, "- ... and %d more files\n", remaining)
	}

	b.WriteString("\nRespond with a single line in conventional commit style ")
	b.WriteString("(e.g. \"feat: add retry logic\"), starting lower-case, ")
	b.WriteString("at most 72 characters, with no surrounding quotes or explanation.")
	return b.String()
}
