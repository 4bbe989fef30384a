// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package summarize turns large staged diffs into commit messages by
// fanning segments out to a completion provider under a concurrency
// bound, parsing the free-text responses into per-file summaries, and
// composing the final message.
package summarize

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/config"
	"github.com/devai-toolkit/devai/pkg/diff"
	"github.com/devai-toolkit/devai/pkg/errors"
	"github.com/devai-toolkit/devai/pkg/observability"
)

// FileSummary is one short, human-readable summary of one file's change.
// Instances are order-stable relative to segment order and within-segment
// file order.
type FileSummary struct {
	Filename string
	Summary  string
}

// Summarizer drives concurrent, bounded, timed-out completion calls,
// one per segment. The concurrency bound exists because the provider is
// a shared, rate-limited resource; unbounded fan-out risks overload and
// provider-side throttling.
type Summarizer struct {
	gateway ai.Gateway
	model   string
	cfg     config.SummarizeConfig
	log     observability.Logger
}

// NewSummarizer creates a summarizer. A nil logger disables progress output.
func NewSummarizer(gateway ai.Gateway, model string, cfg config.SummarizeConfig, log observability.Logger) *Summarizer {
	if log == nil {
		log = observability.Nop()
	}
	return &Summarizer{gateway: gateway, model: model, cfg: cfg, log: log}
}

// Summarize produces one FileSummary sequence covering all segments.
//
// At most cfg.Concurrency units wait on the provider at any instant;
// the rest queue on the semaphore. Each unit races the provider call
// against cfg.UnitTimeout. The first unit to fail aborts the remaining
// units and Summarize returns that error; no partial sequence is ever
// returned. On success the per-segment results are reassembled in
// segment-submission order, never completion order.
func (s *Summarizer) Summarize(ctx context.Context, segments []diff.Segment) ([]FileSummary, error) {
	if len(segments) == 0 {
		return nil, errors.EmptySegmentationError("no segments to summarize")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([][]FileSummary, len(segments))
	errCh := make(chan error, len(segments))
	sem := make(chan struct{}, s.cfg.Concurrency)

	var wg sync.WaitGroup
	for i, seg := range segments {
		wg.Add(1)
		go func(idx int, seg diff.Segment) {
			defer wg.Done()

			// Acquire a concurrency slot before issuing the request.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			s.log.Info("summarizing segment",
				observability.Int("segment", idx+1),
				observability.Int("total", len(segments)),
				observability.Int("files", len(seg.Files)))

			summaries, err := s.summarizeSegment(ctx, seg)
			if err != nil {
				select {
				case errCh <- err:
					cancel() // fail fast: abandon still-pending units
				case <-ctx.Done():
				}
				return
			}

			// Skip the write if another unit already failed.
			select {
			case <-ctx.Done():
				return
			default:
			}
			results[idx] = summaries
		}(i, seg)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.UpstreamError("summarization cancelled", err)
	}

	var all []FileSummary
	for _, r := range results {
		all = append(all, r...)
	}

	s.log.Info("analysis complete", observability.Int("summaries", len(all)))
	return all, nil
}

// summarizeSegment runs one unit of work: one completion call bounded by
// the per-unit timeout, then response parsing.
func (s *Summarizer) summarizeSegment(ctx context.Context, seg diff.Segment) ([]FileSummary, error) {
	unitCtx, cancel := context.WithTimeout(ctx, s.cfg.UnitTimeout)
	defer cancel()

	response, err := s.gateway.Complete(unitCtx, s.model, buildSegmentPrompt(seg))
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || unitCtx.Err() == context.DeadlineExceeded {
			return nil, errors.TimeoutError(
				fmt.Sprintf("segment summarization exceeded %s", s.cfg.UnitTimeout), s.cfg.UnitTimeout)
		}
		if errors.IsType(err, errors.ErrUpstream) {
			return nil, err
		}
		return nil, errors.UpstreamError("segment summarization failed", err)
	}

	summaries, _ := ParseSummaries(response, seg.Files)
	return summaries, nil
}

// buildSegmentPrompt asks for one short summary line per file in the
// segment. The response format mirrors what ParseSummaries expects.
func buildSegmentPrompt(seg diff.Segment) string {
	var b strings.Builder
	b.WriteString("Summarize the change to each file in this diff.\n")
	b.WriteString("Respond with exactly one line per file, in the form:\n")
	b.WriteString("filename: summary\n")
	b.WriteString("Keep each summary under 10 words. No other text.\n\n")
	b.WriteString("Files:\n")
	for _, f := range seg.Files {
		b.WriteString("- ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\nDiff:\n")
	b.WriteString(seg.Content)
	return b.String()
}
