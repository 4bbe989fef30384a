// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package diff

import "testing"

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want Stats
	}{
		{
			name: "empty input",
			diff: "",
			want: Stats{},
		},
		{
			name: "single file",
			diff: `diff --git a/main.go b/main.go
index 1234567..89abcde 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
 package main
+import "fmt"
-import "os"
`,
			want: Stats{FilesChanged: 1, LinesAdded: 1, LinesDeleted: 1},
		},
		{
			name: "two files",
			diff: `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
@@ -1 +1,3 @@
+one
+two
+three
diff --git a/b.go b/b.go
--- a/b.go
+++ b/b.go
@@ -1,2 +1 @@
-gone
-also gone
+kept
`,
			want: Stats{FilesChanged: 2, LinesAdded: 4, LinesDeleted: 2},
		},
		{
			name: "file markers not counted as changes",
			diff: `diff --git a/x b/x
--- a/x
+++ b/x
`,
			want: Stats{FilesChanged: 1},
		},
		{
			name: "non-diff text yields zero stats",
			diff: "just some prose\nwith lines\n",
			want: Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.diff)
			if got != tt.want {
				t.Errorf("Analyze() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatsString(t *testing.T) {
	tests := []struct {
		stats Stats
		want  string
	}{
		{
			Stats{FilesChanged: 2, LinesAdded: 10, LinesDeleted: 3},
			"2 files changed, 10 insertions(+), 3 deletions(-)",
		},
		{
			Stats{FilesChanged: 1, LinesAdded: 1, LinesDeleted: 0},
			"1 file changed, 1 insertions(+), 0 deletions(-)",
		},
		{
			Stats{},
			"0 files changed, 0 insertions(+), 0 deletions(-)",
		},
	}

	for _, tt := range tests {
		if got := tt.stats.String(); got != tt.want {
			t.Errorf("Stats.String() = %q, want %q", got, tt.want)
		}
	}
}
