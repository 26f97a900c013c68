package handlers

import (
	"errors"
	"net/http"

	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
	authsvc "github.com/ivankudzin/roomshare/backend/internal/services/auth"
	profilesvc "github.com/ivankudzin/roomshare/backend/internal/services/profiles"
	"github.com/ivankudzin/roomshare/backend/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/roomshare/backend/internal/transport/http/errors"
)

type ProfileHandler struct {
	service *profilesvc.Service
}

func NewProfileHandler(service *profilesvc.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	seeker, err := h.service.Preferences(r.Context(), identity.SeekerID)
	if err != nil {
		writeProfileError(w, err, "failed to load preferences")
		return
	}

	httperrors.Write(w, http.StatusOK, preferencesResponse(seeker))
}

func (h *ProfileHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.PreferencesPayload
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	saved, err := h.service.UpdatePreferences(r.Context(), identity.SeekerID, model.Preferences{
		StayDuration:          req.StayDuration,
		FoodPreference:        req.FoodPreference,
		Smoking:               req.Smoking,
		Drinking:              req.Drinking,
		GuestPolicy:           req.GuestPolicy,
		CleanlinessLevel:      req.CleanlinessLevel,
		NoiseTolerance:        req.NoiseTolerance,
		WorkSchedule:          req.WorkSchedule,
		WakeUpTime:            req.WakeUpTime,
		SleepTime:             req.SleepTime,
		PetPreference:         req.PetPreference,
		CookingHabits:         req.CookingHabits,
		SocialNature:          req.SocialNature,
		SharingResponsibility: req.SharingResponsibility,
		Languages:             req.Languages,
	})
	if err != nil {
		writeProfileError(w, err, "failed to save preferences")
		return
	}

	httperrors.Write(w, http.StatusOK, preferencesPayload(saved))
}

func writeProfileError(w http.ResponseWriter, err error, internal string) {
	switch {
	case errors.Is(err, profilesvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "preference validation failed")
	case errors.Is(err, profilesvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "seeker not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", internal)
	}
}

func preferencesResponse(seeker model.Seeker) dto.PreferencesResponse {
	res := dto.PreferencesResponse{
		SeekerID:       seeker.ID.String(),
		Name:           seeker.Name,
		Gender:         seeker.Gender,
		Occupation:     seeker.Occupation,
		HasPreferences: seeker.HasPreferences(),
	}
	if seeker.Preferences != nil {
		payload := preferencesPayload(*seeker.Preferences)
		res.Preferences = &payload
	}
	return res
}

func preferencesPayload(p model.Preferences) dto.PreferencesPayload {
	languages := p.Languages
	if languages == nil {
		languages = []string{}
	}
	return dto.PreferencesPayload{
		StayDuration:          p.StayDuration,
		FoodPreference:        p.FoodPreference,
		Smoking:               p.Smoking,
		Drinking:              p.Drinking,
		GuestPolicy:           p.GuestPolicy,
		CleanlinessLevel:      p.CleanlinessLevel,
		NoiseTolerance:        p.NoiseTolerance,
		WorkSchedule:          p.WorkSchedule,
		WakeUpTime:            p.WakeUpTime,
		SleepTime:             p.SleepTime,
		PetPreference:         p.PetPreference,
		CookingHabits:         p.CookingHabits,
		SocialNature:          p.SocialNature,
		SharingResponsibility: p.SharingResponsibility,
		Languages:             languages,
	}
}
