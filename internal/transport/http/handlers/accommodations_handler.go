package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/compatibility"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
	"github.com/ivankudzin/roomshare/backend/internal/pkg/validate"
	authsvc "github.com/ivankudzin/roomshare/backend/internal/services/auth"
	listingssvc "github.com/ivankudzin/roomshare/backend/internal/services/listings"
	"github.com/ivankudzin/roomshare/backend/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/roomshare/backend/internal/transport/http/errors"
)

type AccommodationsHandler struct {
	service *listingssvc.Service
}

func NewAccommodationsHandler(service *listingssvc.Service) *AccommodationsHandler {
	return &AccommodationsHandler{service: service}
}

func (h *AccommodationsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "LISTINGS_SERVICE_UNAVAILABLE", "listings service is unavailable")
		return
	}

	ranked, err := h.service.Ranked(r.Context(), identity.SeekerID)
	if err != nil {
		h.writeServiceError(w, err, "seeker not found", "failed to rank accommodations")
		return
	}

	items := make([]dto.AccommodationItemResponse, 0, len(ranked.Items))
	for _, item := range ranked.Items {
		items = append(items, dto.AccommodationItemResponse{
			ID:             item.Accommodation.ID.String(),
			Name:           item.Accommodation.Name,
			City:           item.Accommodation.City,
			Address:        item.Accommodation.Address,
			Price:          item.Accommodation.Price,
			Rating:         item.Accommodation.Rating,
			AvailableSpace: item.Accommodation.AvailableSpace,
			CoverURL:       dto.NullableString{Value: item.CoverURL},
			Score:          item.Score,
			RoommateCount:  item.RoommateCount,
			TopInsight:     dto.NullableString{Value: item.TopInsight},
		})
	}

	httperrors.Write(w, http.StatusOK, dto.AccommodationsResponse{
		Items:  items,
		Scored: ranked.Scored,
	})
}

func (h *AccommodationsHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "LISTINGS_SERVICE_UNAVAILABLE", "listings service is unavailable")
		return
	}

	accommodationID, ok := accommodationIDFromRequest(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid accommodation id")
		return
	}

	detail, err := h.service.Detail(r.Context(), identity.SeekerID, accommodationID)
	if err != nil {
		h.writeServiceError(w, err, "accommodation not found", "failed to load compatibility")
		return
	}

	httperrors.Write(w, http.StatusOK, compatibilityResponse(detail))
}

func (h *AccommodationsHandler) writeServiceError(w http.ResponseWriter, err error, notFound, internal string) {
	switch {
	case errors.Is(err, listingssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, listingssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", notFound)
	default:
		writeInternal(w, "INTERNAL_ERROR", internal)
	}
}

func compatibilityResponse(detail listingssvc.Detail) dto.CompatibilityResponse {
	res := dto.CompatibilityResponse{
		AccommodationID: detail.Accommodation.ID.String(),
		Name:            detail.Accommodation.Name,
		HasPreferences:  detail.HasPreferences,
		Allowed:         true,
		Roommates:       []dto.RoommateResponse{},
		Insights:        []dto.InsightResponse{},
		HouseRules:      houseRulesResponse(detail.Accommodation.HouseRules),
	}
	if !detail.HasPreferences {
		return res
	}

	result := detail.Result
	score, ruleScore, roommateScore := result.Score, result.RuleScore, result.RoommateScore
	res.Allowed = result.Allowed
	res.Score = &score
	res.RuleScore = &ruleScore
	res.RoommateScore = &roommateScore
	res.RoommateCount = result.RoommateCount()
	if summary := compatibility.Summary(result); summary != "" {
		res.Summary = dto.NullableString{Value: &summary}
	}

	for _, roommate := range result.Roommates {
		res.Roommates = append(res.Roommates, dto.RoommateResponse{
			SeekerID:          roommate.SeekerID.String(),
			Name:              roommate.Name,
			Occupation:        roommate.Occupation,
			Score:             roommate.Score,
			MatchingTraits:    append([]string{}, roommate.MatchingTraits...),
			ConflictingTraits: append([]string{}, roommate.ConflictingTraits...),
		})
	}
	for _, insight := range result.Insights {
		res.Insights = append(res.Insights, dto.InsightResponse{
			Type:     string(insight.Type),
			Category: insight.Category,
			Text:     insight.Text,
		})
	}
	return res
}

func houseRulesResponse(rules *model.HouseRules) *dto.HouseRulesResponse {
	if rules == nil {
		return nil
	}
	return &dto.HouseRulesResponse{
		GenderAllowed:       rules.GenderAllowed,
		FoodPolicy:          rules.FoodPolicy,
		SmokingAllowed:      rules.SmokingAllowed,
		DrinkingAllowed:     rules.DrinkingAllowed,
		GuestsAllowed:       rules.GuestsAllowed,
		PetFriendly:         rules.PetFriendly,
		NoisePolicy:         rules.NoisePolicy,
		PreferredOccupation: rules.PreferredOccupation,
	}
}

func accommodationIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	if r == nil {
		return uuid.Nil, false
	}
	return validate.UUID(chi.URLParam(r, "id"))
}
