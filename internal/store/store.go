// Package store owns the quest collection and its file persistence.
package store

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jacksmith/quest/internal/cli"
	"github.com/jacksmith/quest/internal/model"
)

// Store holds the quest collection for a single invocation. Every mutation
// validates fully, applies in memory, then rewrites the backing file.
type Store struct {
	path   string
	quests []model.Quest
}

// Open loads the quest file at path, or starts with an empty collection if
// the file does not exist. A file that exists but cannot be used yields a
// *cli.CorruptDataError.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to access quest file %s: %w", path, err)
	}

	quests, err := model.LoadQuests(path)
	if err != nil {
		return nil, &cli.CorruptDataError{Path: path, Err: err}
	}

	// Names must be unique; a file violating that is as unusable as one
	// that fails to parse.
	seen := make(map[string]bool, len(quests))
	for _, q := range quests {
		if seen[q.Name] {
			return nil, &cli.CorruptDataError{
				Path: path,
				Err:  fmt.Errorf("duplicate quest name %q", q.Name),
			}
		}
		seen[q.Name] = true
	}

	s.quests = quests
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Add appends a new quest to the collection and persists it. An empty
// priority means the default (medium). No mutation happens on a
// validation failure.
func (s *Store) Add(name, description string, priority model.Priority) (*model.Quest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &cli.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if s.find(name) != nil {
		return nil, &cli.DuplicateError{Name: name}
	}
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, &cli.ValidationError{
			Field:   "priority",
			Message: fmt.Sprintf("%q is not one of high, medium, low", priority),
		}
	}

	s.quests = append(s.quests, model.Quest{
		Name:        name,
		Description: description,
		Priority:    priority,
	})
	if err := s.save(); err != nil {
		return nil, err
	}
	return &s.quests[len(s.quests)-1], nil
}

// List returns the collection in stored order.
func (s *Store) List() []model.Quest {
	return s.quests
}

// ListByPriority returns a copy of the collection sorted high to medium to
// low. Quests with equal priority keep their stored relative order.
func (s *Store) ListByPriority() []model.Quest {
	sorted := make([]model.Quest, len(s.quests))
	copy(sorted, s.quests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}

// Complete marks the quest with the exact given name as done and persists.
func (s *Store) Complete(name string) (*model.Quest, error) {
	q := s.find(name)
	if q == nil {
		return nil, &cli.NotFoundError{Name: name}
	}
	q.Done = true
	if err := s.save(); err != nil {
		return nil, err
	}
	return q, nil
}

// Remove deletes the quest with the exact given name and persists.
func (s *Store) Remove(name string) (*model.Quest, error) {
	for i := range s.quests {
		if s.quests[i].Name == name {
			removed := s.quests[i]
			s.quests = append(s.quests[:i], s.quests[i+1:]...)
			if err := s.save(); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, &cli.NotFoundError{Name: name}
}

// ListFiltered narrows the collection by status and/or priority. Empty
// values mean no filter; both filters given compose by AND. The result
// keeps the stored relative order.
func (s *Store) ListFiltered(status, priority string) ([]model.Quest, error) {
	quests := s.quests

	if status != "" {
		st, err := model.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		quests = filterQuests(quests, func(q model.Quest) bool {
			return q.Status() == st
		})
	}

	if priority != "" {
		p, err := model.ParsePriority(priority)
		if err != nil {
			return nil, err
		}
		quests = filterQuests(quests, func(q model.Quest) bool {
			return q.Priority == p
		})
	}

	return quests, nil
}

// find returns the quest with the exact name, or nil.
func (s *Store) find(name string) *model.Quest {
	for i := range s.quests {
		if s.quests[i].Name == name {
			return &s.quests[i]
		}
	}
	return nil
}

func (s *Store) save() error {
	return model.SaveQuests(s.path, s.quests)
}

func filterQuests(quests []model.Quest, keep func(model.Quest) bool) []model.Quest {
	var out []model.Quest
	for _, q := range quests {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
