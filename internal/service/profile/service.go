package profile

import (
	"context"
	"errors"
	"log"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/profile-board/backend/internal/audit"
	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
)

// Service is the single entry point handlers use to read and mutate profiles.
// Every mutation attempt is written to the audit trail.
type Service struct {
	store profile.Store
	audit *audit.Recorder
}

// NewService wraps store. A nil recorder disables auditing.
func NewService(store profile.Store, recorder *audit.Recorder) *Service {
	return &Service{store: store, audit: recorder}
}

// List returns the current profiles in insertion order.
func (s *Service) List(_ context.Context) []profile.Profile {
	return s.store.List()
}

// Add creates a profile from rawName. Rejections are returned as
// *profile.ValidationError and leave the store untouched.
func (s *Service) Add(ctx context.Context, rawName string) (profile.Profile, error) {
	created, err := s.store.Add(rawName)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			s.record(ctx, audit.Event{Type: audit.EventProfileRejected, Name: rawName, Reason: verr.Reason})
		}
		return profile.Profile{}, err
	}

	log.Printf("[profile] created id=%d name=%q", created.ID, created.Name)
	s.record(ctx, audit.Event{Type: audit.EventProfileCreate, ProfileID: created.ID, Name: created.Name})
	return created, nil
}

// Like increments the likes of id. Unknown ids are ignored.
func (s *Service) Like(ctx context.Context, id int) (profile.Profile, bool) {
	updated, ok := s.store.Like(id)
	if !ok {
		s.record(ctx, audit.Event{Type: audit.EventLikeIgnored, ProfileID: id})
		return profile.Profile{}, false
	}

	s.record(ctx, audit.Event{
		Type:      audit.EventProfileLike,
		ProfileID: updated.ID,
		Name:      updated.Name,
		Likes:     updated.Likes,
	})
	return updated, true
}

// Activity returns the retained audit events, oldest first.
func (s *Service) Activity() []audit.Event {
	if s.audit == nil {
		return []audit.Event{}
	}
	return s.audit.Recent()
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	event.RequestID = middleware.GetReqID(ctx)
	s.audit.Record(event)
}
