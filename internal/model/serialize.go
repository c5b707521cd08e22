package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var questSchema string

// compiledSchema validates the on-disk document shape: an array of objects
// with exactly the four quest fields and a recognized priority value.
var compiledSchema = jsonschema.MustCompileString("quests.json", questSchema)

// LoadQuests reads the quest file at path, validates it against the quest
// schema, and returns the collection with priorities normalized to their
// canonical spellings.
func LoadQuests(path string) ([]Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest file %s: %w", path, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse quest file %s: %w", path, err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("quest file %s does not match the expected shape: %w", path, err)
	}

	var quests []Quest
	if err := json.Unmarshal(data, &quests); err != nil {
		return nil, fmt.Errorf("failed to decode quest file %s: %w", path, err)
	}

	for i := range quests {
		p, err := ParsePriority(string(quests[i].Priority))
		if err != nil {
			return nil, fmt.Errorf("quest %q has invalid priority %q", quests[i].Name, quests[i].Priority)
		}
		quests[i].Priority = p
	}

	return quests, nil
}

// SaveQuests writes the full collection to path, replacing any previous
// content. An empty collection is written as an empty array, not null.
func SaveQuests(path string, quests []Quest) error {
	if quests == nil {
		quests = []Quest{}
	}

	data, err := json.MarshalIndent(quests, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode quests: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write quest file %s: %w", path, err)
	}

	return nil
}
