package live

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRelativeTimeBuckets(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{2 * 7 * 24 * time.Hour, "2w ago"},
		{60 * 24 * time.Hour, "2mo ago"},
	}
	for _, tc := range cases {
		if got := relativeTime(tc.d); got != tc.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestGitActivityPlaceholders(t *testing.T) {
	ctx := context.Background()
	if got := GitActivity(ctx, ""); got != Placeholder {
		t.Fatalf("empty path = %q, want placeholder", got)
	}
	if got := GitActivity(ctx, t.TempDir()); got != "no repo" {
		t.Fatalf("non-repo dir = %q, want no repo", got)
	}
}

func TestGitBranchEmptyPath(t *testing.T) {
	if got := GitBranch(context.Background(), ""); got != "" {
		t.Fatalf("GitBranch = %q, want empty", got)
	}
}

func TestDockerStatusEmptyName(t *testing.T) {
	if got := DockerStatus(context.Background(), "", ""); got != Placeholder {
		t.Fatalf("DockerStatus = %q, want placeholder", got)
	}
}

func TestLastModifiedPlaceholders(t *testing.T) {
	if got := LastModified(""); got != Placeholder {
		t.Fatalf("empty path = %q", got)
	}
	if got := LastModified(filepath.Join(t.TempDir(), "gone")); got != Placeholder {
		t.Fatalf("missing dir = %q", got)
	}
	if got := LastModified(t.TempDir()); got != Placeholder {
		t.Fatalf("empty dir = %q", got)
	}
}

func TestLastModifiedFindsNewestFile(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.txt")
	if err := os.WriteFile(old, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LastModified(dir)
	if !strings.Contains(got, "new.txt") {
		t.Fatalf("LastModified = %q, want new.txt", got)
	}
	if !strings.Contains(got, "just now") {
		t.Fatalf("LastModified = %q, want recent age", got)
	}
}

func TestLastModifiedSkipsNoiseDirs(t *testing.T) {
	dir := t.TempDir()
	noisy := filepath.Join(dir, "node_modules")
	if err := os.MkdirAll(noisy, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(noisy, "dep.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	real := filepath.Join(dir, "main.go")
	if err := os.WriteFile(real, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := LastModified(dir); !strings.Contains(got, "main.go") {
		t.Fatalf("LastModified = %q, want main.go", got)
	}
}
