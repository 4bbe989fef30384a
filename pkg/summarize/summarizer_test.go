// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package summarize

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devai-toolkit/devai/pkg/config"
	"github.com/devai-toolkit/devai/pkg/diff"
	"github.com/devai-toolkit/devai/pkg/errors"
)

// fakeGateway delegates Complete to a function so each test controls
// latency and responses.
type fakeGateway struct {
	complete func(ctx context.Context, model, prompt string) (string, error)
}

func (f *fakeGateway) Complete(ctx context.Context, model, prompt string) (string, error) {
	return f.complete(ctx, model, prompt)
}

func testSummarizeConfig() config.SummarizeConfig {
	return config.SummarizeConfig{
		MaxUnitSize: 1024,
		Concurrency: 3,
		UnitTimeout: time.Second,
	}
}

func segmentFor(file string) diff.Segment {
	return diff.Segment{
		Content: fmt.Sprintf("diff --git a/%s b/%s\n+change\n", file, file),
		Files:   []string{file},
	}
}

func TestSummarizeOrderIsSubmissionOrder(t *testing.T) {
	files := []string{"one.go", "two.go", "three.go"}
	segments := make([]diff.Segment, len(files))
	for i, f := range files {
		segments[i] = segmentFor(f)
	}

	// Earlier segments finish later, so completion order is reversed.
	gateway := &fakeGateway{complete: func(ctx context.Context, model, prompt string) (string, error) {
		for i, f := range files {
			if strings.Contains(prompt, f) {
				time.Sleep(time.Duration(len(files)-i) * 20 * time.Millisecond)
				return f + ": updated", nil
			}
		}
		return "", fmt.Errorf("unexpected prompt")
	}}

	s := NewSummarizer(gateway, "test-model", testSummarizeConfig(), nil)
	summaries, err := s.Summarize(context.Background(), segments)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if len(summaries) != len(files) {
		t.Fatalf("expected %d summaries, got %d", len(files), len(summaries))
	}
	for i, f := range files {
		if summaries[i].Filename != f {
			t.Errorf("summary %d: got %q, want %q (order must follow submission, not completion)",
				i, summaries[i].Filename, f)
		}
	}
}

func TestSummarizeUnitTimeout(t *testing.T) {
	segments := []diff.Segment{segmentFor("fast.go"), segmentFor("slow.go"), segmentFor("other.go")}

	gateway := &fakeGateway{complete: func(ctx context.Context, model, prompt string) (string, error) {
		if strings.Contains(prompt, "slow.go") {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "fast.go: updated", nil
	}}

	cfg := testSummarizeConfig()
	cfg.UnitTimeout = 20 * time.Millisecond

	s := NewSummarizer(gateway, "test-model", cfg, nil)
	summaries, err := s.Summarize(context.Background(), segments)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.IsType(err, errors.ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
	if summaries != nil {
		t.Errorf("expected no partial summaries, got %d", len(summaries))
	}
}

func TestSummarizeFailFast(t *testing.T) {
	segments := []diff.Segment{segmentFor("bad.go"), segmentFor("pending.go")}

	var pendingCancelled atomic.Bool
	gateway := &fakeGateway{complete: func(ctx context.Context, model, prompt string) (string, error) {
		if strings.Contains(prompt, "bad.go") {
			return "", errors.UpstreamError("provider returned 500", nil)
		}
		// Must be released by the fail-fast cancel, not its own timeout.
		<-ctx.Done()
		pendingCancelled.Store(true)
		return "", ctx.Err()
	}}

	s := NewSummarizer(gateway, "test-model", testSummarizeConfig(), nil)
	_, err := s.Summarize(context.Background(), segments)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsType(err, errors.ErrUpstream) {
		t.Errorf("expected the root-cause upstream error, got %v", err)
	}
	if !pendingCancelled.Load() {
		t.Error("in-flight unit was not cancelled after the first failure")
	}
}

func TestSummarizeConcurrencyBound(t *testing.T) {
	const n = 8
	segments := make([]diff.Segment, n)
	for i := range segments {
		segments[i] = segmentFor(fmt.Sprintf("f%d.go", i))
	}

	var inFlight, peak atomic.Int32
	gateway := &fakeGateway{complete: func(ctx context.Context, model, prompt string) (string, error) {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return "f0.go: updated", nil
	}}

	cfg := testSummarizeConfig()
	cfg.Concurrency = 2

	s := NewSummarizer(gateway, "test-model", cfg, nil)
	if _, err := s.Summarize(context.Background(), segments); err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if got := peak.Load(); got > 2 {
		t.Errorf("concurrency bound violated: %d units in flight", got)
	}
}

func TestSummarizeNoSegments(t *testing.T) {
	s := NewSummarizer(&fakeGateway{}, "test-model", testSummarizeConfig(), nil)
	_, err := s.Summarize(context.Background(), nil)
	if !errors.IsType(err, errors.ErrEmptySegmentation) {
		t.Errorf("expected ErrEmptySegmentation, got %v", err)
	}
}

func TestSummarizeUnparseableResponseFallsBack(t *testing.T) {
	segments := []diff.Segment{segmentFor("a.go")}

	gateway := &fakeGateway{complete: func(ctx context.Context, model, prompt string) (string, error) {
		return "I am unable to help with that.", nil
	}}

	s := NewSummarizer(gateway, "test-model", testSummarizeConfig(), nil)
	summaries, err := s.Summarize(context.Background(), segments)
	if err != nil {
		t.Fatalf("parsing must never fail the pipeline: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Summary != PlaceholderSummary {
		t.Errorf("expected placeholder summary, got %+v", summaries)
	}
}
