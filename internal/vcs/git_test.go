package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func commitFile(t *testing.T, repoPath, name, content, message string) string {
	t.Helper()

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}

	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := w.Add(name); err != nil {
		t.Fatalf("failed to stage %s: %v", name, err)
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return hash.String()
}

func initTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := t.TempDir()
	if _, err := git.PlainInit(repoPath, false); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	return repoPath
}

func TestFileAtHead(t *testing.T) {
	repoPath := initTestRepo(t)
	commitFile(t, repoPath, "sample.py", "x = 1\n", "initial commit")

	path := filepath.Join(repoPath, "sample.py")

	// An uncommitted working-tree edit must not leak through.
	if err := os.WriteFile(path, []byte("x = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := FileAt(path, "HEAD")
	if err != nil {
		t.Fatalf("FileAt() error = %v", err)
	}
	if string(data) != "x = 1\n" {
		t.Errorf("FileAt(HEAD) = %q, want committed content", data)
	}
}

func TestFileAtOlderRevision(t *testing.T) {
	repoPath := initTestRepo(t)
	first := commitFile(t, repoPath, "sample.py", "x = 1\n", "initial commit")
	commitFile(t, repoPath, "sample.py", "x = 2\n", "second commit")

	path := filepath.Join(repoPath, "sample.py")

	data, err := FileAt(path, first)
	if err != nil {
		t.Fatalf("FileAt() error = %v", err)
	}
	if string(data) != "x = 1\n" {
		t.Errorf("FileAt(%s) = %q, want first commit's content", first, data)
	}

	data, err = FileAt(path, "HEAD")
	if err != nil {
		t.Fatalf("FileAt() error = %v", err)
	}
	if string(data) != "x = 2\n" {
		t.Errorf("FileAt(HEAD) = %q, want second commit's content", data)
	}
}

func TestFileAtInSubdirectory(t *testing.T) {
	repoPath := initTestRepo(t)
	if err := os.MkdirAll(filepath.Join(repoPath, "pkg"), 0o755); err != nil {
		t.Fatal(err)
	}
	commitFile(t, repoPath, filepath.Join("pkg", "mod.py"), "y = 3\n", "add module")

	data, err := FileAt(filepath.Join(repoPath, "pkg", "mod.py"), "HEAD")
	if err != nil {
		t.Fatalf("FileAt() error = %v", err)
	}
	if string(data) != "y = 3\n" {
		t.Errorf("FileAt() = %q, want committed content", data)
	}
}

func TestFileAtUnknownRevision(t *testing.T) {
	repoPath := initTestRepo(t)
	commitFile(t, repoPath, "sample.py", "x = 1\n", "initial commit")

	_, err := FileAt(filepath.Join(repoPath, "sample.py"), "no-such-rev")
	if err == nil {
		t.Error("FileAt() should return error for an unknown revision")
	}
}

func TestFileAtUntrackedFile(t *testing.T) {
	repoPath := initTestRepo(t)
	commitFile(t, repoPath, "tracked.py", "x = 1\n", "initial commit")

	untracked := filepath.Join(repoPath, "untracked.py")
	if err := os.WriteFile(untracked, []byte("x = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := FileAt(untracked, "HEAD")
	if err == nil {
		t.Error("FileAt() should return error for a file absent from the commit")
	}
}

func TestFileAtOutsideRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := FileAt(path, "HEAD")
	if err == nil {
		t.Error("FileAt() should return error outside a repository")
	}
}
