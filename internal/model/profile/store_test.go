package profile

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliceStore() *MemoryStore {
	return NewMemoryStore([]Profile{{ID: 1, Name: "Alice", Likes: 0}})
}

func requireReason(t *testing.T, err error, reason string) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, reason, verr.Reason)
}

func TestAddRejectsBlankNames(t *testing.T) {
	inputs := []string{"", " ", "   ", "\t", "\n \t "}
	for _, in := range inputs {
		store := aliceStore()
		_, err := store.Add(in)
		requireReason(t, err, ReasonNameRequired)
		assert.Len(t, store.List(), 1, "input %q", in)
	}
}

func TestAddRejectsDuplicatesInAnyCase(t *testing.T) {
	inputs := []string{"Alice", "alice", "ALICE", "  aLiCe  "}
	for _, in := range inputs {
		store := aliceStore()
		_, err := store.Add(in)
		requireReason(t, err, ReasonDuplicateName)
		assert.Equal(t, []Profile{{ID: 1, Name: "Alice"}}, store.List(), "input %q", in)
	}
}

func TestAddAppendsTrimmedProfile(t *testing.T) {
	store := aliceStore()

	created, err := store.Add("  Bob  ")
	require.NoError(t, err)
	assert.Equal(t, Profile{ID: 2, Name: "Bob", Likes: 0}, created)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, created, list[len(list)-1])
}

func TestAddIssuesIncreasingIDs(t *testing.T) {
	store := NewMemoryStore([]Profile{{ID: 7, Name: "Seven"}, {ID: 3, Name: "Three"}})

	seen := map[int]bool{7: true, 3: true}
	last := 7
	for _, name := range []string{"a", "b", "c"} {
		created, err := store.Add(name)
		require.NoError(t, err)
		assert.Greater(t, created.ID, last)
		assert.False(t, seen[created.ID])
		seen[created.ID] = true
		last = created.ID
	}
}

func TestLikeIncrementsOnlyTarget(t *testing.T) {
	store := NewMemoryStore(Seed())
	before := store.List()

	updated, ok := store.Like(2)
	require.True(t, ok)
	assert.Equal(t, 1, updated.Likes)

	after := store.List()
	for i := range before {
		want := before[i]
		if want.ID == 2 {
			want.Likes++
		}
		assert.Equal(t, want, after[i])
	}
}

func TestLikeUnknownIDIsNoop(t *testing.T) {
	store := NewMemoryStore(Seed())
	before := store.List()

	_, ok := store.Like(999)
	assert.False(t, ok)
	assert.Equal(t, before, store.List())
}

func TestListReturnsCopy(t *testing.T) {
	store := aliceStore()
	list := store.List()
	list[0].Name = "Mallory"
	list[0].Likes = 42

	got, ok := store.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
	assert.Zero(t, got.Likes)
}

func TestEmptyStore(t *testing.T) {
	store := NewMemoryStore(nil)
	assert.Empty(t, store.List())

	created, err := store.Add("First")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestSessionScenario(t *testing.T) {
	store := aliceStore()

	bob, err := store.Add("Bob")
	require.NoError(t, err)
	assert.Equal(t, []Profile{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, store.List())

	_, err = store.Add("alice")
	requireReason(t, err, ReasonDuplicateName)
	assert.Len(t, store.List(), 2)

	liked, ok := store.Like(bob.ID)
	require.True(t, ok)
	assert.Equal(t, 1, liked.Likes)

	_, err = store.Add("   ")
	requireReason(t, err, ReasonNameRequired)
	assert.Equal(t, []Profile{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob", Likes: 1}}, store.List())
}

func TestNewMemoryStoreTrimsSeedNames(t *testing.T) {
	store := NewMemoryStore([]Profile{{ID: 1, Name: "  Alice "}})

	_, err := store.Add("ALICE")
	requireReason(t, err, ReasonDuplicateName)
	assert.Equal(t, []Profile{{ID: 1, Name: "Alice"}}, store.List())
}

func TestEmptyListIsNotNil(t *testing.T) {
	assert.NotNil(t, NewMemoryStore(nil).List())
}

func TestConcurrentAddAndLike(t *testing.T) {
	const workers = 50
	store := aliceStore()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := store.Add("Same"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
		go func() {
			defer wg.Done()
			store.Like(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, workers, list[0].Likes)
	assert.Equal(t, Profile{ID: 2, Name: "Same"}, list[1])
}
