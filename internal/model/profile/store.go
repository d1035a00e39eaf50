package profile

import (
	"strings"
	"sync"
)

// Store exposes the profile list and its two mutations.
type Store interface {
	List() []Profile
	FindByID(id int) (Profile, bool)
	Add(rawName string) (Profile, error)
	Like(id int) (Profile, bool)
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps profiles in insertion order for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []Profile
	lastID int
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied profiles.
// Names are stored trimmed. Fresh ids continue after the largest seeded id.
func NewMemoryStore(items []Profile) *MemoryStore {
	s := &MemoryStore{items: make([]Profile, len(items))}
	copy(s.items, items)
	for i, item := range s.items {
		s.items[i].Name = strings.TrimSpace(item.Name)
		if item.ID > s.lastID {
			s.lastID = item.ID
		}
	}
	return s
}

// List returns a copy of the profiles in insertion order.
func (s *MemoryStore) List() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Profile, len(s.items))
	copy(out, s.items)
	return out
}

// FindByID looks up a profile by identifier.
func (s *MemoryStore) FindByID(id int) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return Profile{}, false
}

// Add validates rawName and appends a new profile with zero likes.
func (s *MemoryStore) Add(rawName string) (Profile, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return Profile{}, &ValidationError{Reason: ReasonNameRequired}
	}

	key := foldName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if foldName(item.Name) == key {
			return Profile{}, &ValidationError{Reason: ReasonDuplicateName}
		}
	}

	s.lastID++
	created := Profile{ID: s.lastID, Name: name, Likes: 0}
	s.items = append(s.items, created)
	return created, nil
}

// Like increments the likes of the profile with id. An unknown id is ignored
// and reported through the boolean.
func (s *MemoryStore) Like(id int) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Profile{}, false
	}
	s.items[i].Likes++
	return s.items[i], true
}

func (s *MemoryStore) indexOf(id int) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
