package profile_test

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/profile-board/backend/internal/audit"
	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
	profileservice "github.com/zhouzirui/profile-board/backend/internal/service/profile"
)

func newService() *profileservice.Service {
	store := profile.NewMemoryStore([]profile.Profile{{ID: 1, Name: "Alice"}})
	return profileservice.NewService(store, audit.NewRecorder(nil, 10))
}

func TestServiceAddRecordsOutcome(t *testing.T) {
	svc := newService()
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	created, err := svc.Add(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	_, err = svc.Add(ctx, "BOB")
	assert.True(t, profile.IsValidation(err))

	events := svc.Activity()
	require.Len(t, events, 2)
	assert.Equal(t, audit.EventProfileCreate, events[0].Type)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, audit.EventProfileRejected, events[1].Type)
	assert.Equal(t, profile.ReasonDuplicateName, events[1].Reason)
	assert.Len(t, svc.List(ctx), 2)
}

func TestServiceLike(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	updated, ok := svc.Like(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, 1, updated.Likes)

	_, ok = svc.Like(ctx, 42)
	assert.False(t, ok)

	events := svc.Activity()
	require.Len(t, events, 2)
	assert.Equal(t, audit.EventProfileLike, events[0].Type)
	assert.Equal(t, 1, events[0].Likes)
	assert.Equal(t, audit.EventLikeIgnored, events[1].Type)
	assert.Equal(t, 42, events[1].ProfileID)
}

func TestServiceWithoutRecorder(t *testing.T) {
	svc := profileservice.NewService(profile.NewMemoryStore(nil), nil)

	_, err := svc.Add(context.Background(), "Solo")
	require.NoError(t, err)
	assert.Empty(t, svc.Activity())
}
