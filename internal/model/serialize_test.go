package model

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func tempQuestFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "quests.json")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempQuestFile(t)

	quests := []Quest{
		{Name: "Slay Dragon", Description: "Defeat the dragon", Priority: PriorityHigh},
		{Name: "Buy torches", Description: "", Priority: PriorityMedium, Done: true},
		{Name: "Sweep stables", Description: "Again", Priority: PriorityLow},
	}

	if err := SaveQuests(path, quests); err != nil {
		t.Fatalf("SaveQuests failed: %v", err)
	}

	loaded, err := LoadQuests(path)
	if err != nil {
		t.Fatalf("LoadQuests failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, quests) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, quests)
	}
}

func TestSaveEmptyCollection(t *testing.T) {
	path := tempQuestFile(t)

	if err := SaveQuests(path, nil); err != nil {
		t.Fatalf("SaveQuests failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty collection should serialize as an empty array, got %q", data)
	}

	loaded, err := LoadQuests(path)
	if err != nil {
		t.Fatalf("LoadQuests failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected no quests, got %d", len(loaded))
	}
}

func TestLoadNormalizesLegacyPriorities(t *testing.T) {
	path := tempQuestFile(t)

	// A file written by the original tool
	content := `[
  {"name": "Matar o dragão", "description": "Na caverna", "priority": "alta", "done": false},
  {"name": "Comprar tochas", "description": "", "priority": "média", "done": true},
  {"name": "Varrer estábulos", "description": "", "priority": "baixa", "done": false}
]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	loaded, err := LoadQuests(path)
	if err != nil {
		t.Fatalf("LoadQuests failed: %v", err)
	}

	want := []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	for i, q := range loaded {
		if q.Priority != want[i] {
			t.Errorf("quest %d priority = %q, want %q", i, q.Priority, want[i])
		}
	}
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"not an array", `{"name": "x"}`},
		{"missing field", `[{"name": "x", "description": "", "priority": "high"}]`},
		{"extra field", `[{"name": "x", "description": "", "priority": "high", "done": false, "owner": "me"}]`},
		{"bad priority", `[{"name": "x", "description": "", "priority": "urgent", "done": false}]`},
		{"wrong type", `[{"name": "x", "description": "", "priority": "high", "done": "yes"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tempQuestFile(t)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}
			if _, err := LoadQuests(path); err == nil {
				t.Error("expected error for malformed file")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadQuests(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
