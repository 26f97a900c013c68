package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

func TestReposWithoutPoolFail(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	cases := []struct {
		name string
		call func() error
	}{
		{name: "get_seeker", call: func() error {
			_, err := NewSeekerRepo(nil).GetSeeker(ctx, id)
			return err
		}},
		{name: "upsert_preferences", call: func() error {
			return NewSeekerRepo(nil).UpsertPreferences(ctx, id, model.Preferences{Smoking: enums.NonSmoker})
		}},
		{name: "list_verified", call: func() error {
			_, err := NewAccommodationRepo(nil).ListVerified(ctx)
			return err
		}},
		{name: "get_verified", call: func() error {
			_, err := NewAccommodationRepo(nil).GetVerified(ctx, id)
			return err
		}},
		{name: "set_status", call: func() error {
			_, err := NewAccommodationRepo(nil).SetStatus(ctx, id, enums.ListingStatusVerified)
			return err
		}},
		{name: "list_current_roommates", call: func() error {
			_, err := NewRoommateRepo(nil).ListCurrent(ctx, []uuid.UUID{id}, time.Now())
			return err
		}},
		{name: "list_current_roommates_without_ids", call: func() error {
			_, err := NewRoommateRepo(nil).ListCurrent(ctx, nil, time.Now())
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, errPoolNil) {
				t.Fatalf("expected errPoolNil, got %v", err)
			}
		})
	}
}

func TestNullableMapsEmptyToNil(t *testing.T) {
	if got := nullable(""); got != nil {
		t.Fatalf("expected nil for empty value, got %q", *got)
	}
	got := nullable(enums.NonSmoker)
	if got == nil || *got != enums.NonSmoker {
		t.Fatalf("unexpected nullable value: %v", got)
	}
}
