// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package summarize

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/config"
	"github.com/devai-toolkit/devai/pkg/diff"
	"github.com/devai-toolkit/devai/pkg/errors"
	"github.com/devai-toolkit/devai/pkg/observability"
)

// Generator is the commit-message pipeline entry point. Small diffs go
// to the provider in one call; diffs over the request ceiling are
// segmented, summarized under the concurrency bound, and composed.
//
// A Generator serves one invocation at a time conceptually: nothing is
// shared across concurrent pipeline runs and no state persists between
// them beyond the read-only configuration.
type Generator struct {
	gateway      ai.Gateway
	model        string
	cfg          config.SummarizeConfig
	commitPrompt string
	log          observability.Logger
}

// NewGenerator creates a pipeline. A nil logger disables progress output.
func NewGenerator(gateway ai.Gateway, model string, cfg config.SummarizeConfig, commitPrompt string, log observability.Logger) *Generator {
	if log == nil {
		log = observability.Nop()
	}
	return &Generator{gateway: gateway, model: model, cfg: cfg, commitPrompt: commitPrompt, log: log}
}

// GenerateCommitMessage produces a commit message for the staged diff.
func (g *Generator) GenerateCommitMessage(ctx context.Context, diffText string) (string, error) {
	if strings.TrimSpace(diffText) == "" {
		return "", errors.ValidationError("diff is empty", nil)
	}

	log := g.log.With(observability.String("run", uuid.NewString()[:8]))

	if len(diffText) <= g.cfg.MaxUnitSize {
		log.Debug("diff fits one request", observability.Int("bytes", len(diffText)))
		return g.gateway.Complete(ctx, g.model, strings.ReplaceAll(g.commitPrompt, "{diff}", diffText))
	}

	segments := diff.Split(diffText, g.cfg.MaxUnitSize)
	if len(segments) == 0 {
		return "", errors.EmptySegmentationError("diff produced no segments")
	}

	stats := diff.Analyze(diffText)
	log.Info("large diff, segmenting",
		observability.Int("bytes", len(diffText)),
		observability.Int("segments", len(segments)),
		observability.Int("files", stats.FilesChanged))

	summarizer := NewSummarizer(g.gateway, g.model, g.cfg, log)
	summaries, err := summarizer.Summarize(ctx, segments)
	if err != nil {
		return "", err
	}

	return NewComposer(g.gateway, g.model).Compose(ctx, stats, summaries)
}
