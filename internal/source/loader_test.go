package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func record(name string) string {
	return `{"Name": "` + name + `", "CommisionTaarifon": {"TableRow": [
	{"DescHeb": "ני\"ע ישראלים: מניות, אג\"ח", "Cols": ["0.1%", "5 ₪", "100 ₪"]}
]}}`
}

func TestLoadSkipsMalformedAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10.json", record("Ten"))
	writeFile(t, dir, "11.json", `not json`)
	writeFile(t, dir, "12.json", record("Twelve"))
	writeFile(t, dir, "13.json", `{"Name": "no table"}`)
	writeFile(t, dir, "14.json", record("Fourteen"))
	writeFile(t, dir, "README.md", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewDirLoader(dir, 2).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []string{"10", "12", "14"}
	if len(got) != len(wantIDs) {
		t.Fatalf("loaded %d schedules, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	if got[0].Name != "Ten" {
		t.Errorf("got[0].Name = %q, want Ten", got[0].Name)
	}
	if got[0].DomesticTradingMax.String() != "100" {
		t.Errorf("got[0].DomesticTradingMax = %s, want 100", got[0].DomesticTradingMax)
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	got, err := NewDirLoader(t.TempDir(), 0).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("loaded %d schedules, want 0", len(got))
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := NewDirLoader(filepath.Join(t.TempDir(), "missing"), 1).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.json", record("One"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDirLoader(dir, 1).Load(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
