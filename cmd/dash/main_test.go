package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLevelsList(t *testing.T) {
	out, err := execute(t, "levels")
	if err != nil {
		t.Fatalf("levels failed: %v", err)
	}
	if !strings.Contains(out, "Name") || !strings.Contains(out, "dash levels show") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLevelsShowIsDeterministic(t *testing.T) {
	first, err := execute(t, "levels", "show", "0")
	if err != nil {
		t.Fatalf("levels show failed: %v", err)
	}
	second, err := execute(t, "levels", "show", "0")
	if err != nil {
		t.Fatalf("levels show failed: %v", err)
	}
	if first != second {
		t.Error("the same seed printed two different layouts")
	}
	if !strings.Contains(first, "Platforms:") {
		t.Errorf("unexpected output:\n%s", first)
	}
}

func TestLevelsShowRejectsBadIndex(t *testing.T) {
	for _, arg := range []string{"-1", "999", "abc"} {
		if _, err := execute(t, "levels", "show", arg); err == nil {
			t.Errorf("levels show %s should fail", arg)
		}
	}
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No scores recorded yet") {
		t.Errorf("empty board output:\n%s", out)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.AddScore("ACE", 9)
	store.AddScore("BOB", 4)
	store.Close()

	out, err = execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "ACE") || !strings.Contains(out, "Best: 9") {
		t.Errorf("board output:\n%s", out)
	}
	if strings.Index(out, "ACE") > strings.Index(out, "BOB") {
		t.Error("scores should be ranked highest first")
	}

	if _, err := execute(t, "scores", "--db", db, "--clear"); err != nil {
		t.Fatalf("scores --clear failed: %v", err)
	}
	flagClearScores = false
	out, _ = execute(t, "scores", "--db", db)
	if !strings.Contains(out, "No scores recorded yet") {
		t.Errorf("board should be empty after --clear:\n%s", out)
	}
}

func TestUnknownDifficulty(t *testing.T) {
	t.Cleanup(func() { flagDifficulty = "" })
	if _, err := execute(t, "levels", "--difficulty", "brutal"); err == nil {
		t.Error("an unknown difficulty should fail")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := expandHome("~/.dash/x"); got != filepath.Join("/home/tester", ".dash/x") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("expandHome(/abs) = %q", got)
	}
}
