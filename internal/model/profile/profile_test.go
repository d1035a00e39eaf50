package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSeedIsValid(t *testing.T) {
	assert.NoError(t, validateSeed(Seed()))
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `[{"id":1,"name":"Alice","likes":3},{"id":4,"name":"Dana","likes":0}]`)

	items, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []Profile{{ID: 1, Name: "Alice", Likes: 3}, {ID: 4, Name: "Dana"}}, items)

	created, err := NewMemoryStore(items).Add("Eve")
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestLoadSeedRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `[{"id":1,`},
		{"blank name", `[{"id":1,"name":"  "}]`},
		{"duplicate name", `[{"id":1,"name":"Alice"},{"id":2,"name":"ALICE"}]`},
		{"duplicate id", `[{"id":1,"name":"Alice"},{"id":1,"name":"Bob"}]`},
		{"negative likes", `[{"id":1,"name":"Alice","likes":-1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "Name is required.", (&ValidationError{Reason: ReasonNameRequired}).Message())
	assert.Equal(t, "This name already exists.", (&ValidationError{Reason: ReasonDuplicateName}).Message())
	assert.Equal(t, "name required", (&ValidationError{Reason: ReasonNameRequired}).Error())
	assert.True(t, IsValidation(&ValidationError{Reason: ReasonNameRequired}))
	assert.False(t, IsValidation(os.ErrNotExist))
}

func TestLoadSeedTrimsNames(t *testing.T) {
	items, err := LoadSeed(writeSeed(t, `[{"id":1,"name":" Alice ","likes":0}]`))
	require.NoError(t, err)
	assert.Equal(t, "Alice", items[0].Name)

	store := NewMemoryStore(items)
	_, err = store.Add("alice")
	requireReason(t, err, ReasonDuplicateName)
	assert.Equal(t, []Profile{{ID: 1, Name: "Alice"}}, store.List())
}

func TestLoadSeedRejectsPaddedDuplicates(t *testing.T) {
	_, err := LoadSeed(writeSeed(t, `[{"id":1,"name":"Alice"},{"id":2,"name":"  alice"}]`))
	assert.Error(t, err)
}
