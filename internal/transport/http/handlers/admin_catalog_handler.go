package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	listingssvc "github.com/ivankudzin/roomshare/backend/internal/services/listings"
	"github.com/ivankudzin/roomshare/backend/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/roomshare/backend/internal/transport/http/errors"
)

// AdminCatalogHandler serves the moderation side of the catalog: verifying or
// rejecting listings and flushing the cached catalog.
type AdminCatalogHandler struct {
	service *listingssvc.Service
}

func NewAdminCatalogHandler(service *listingssvc.Service) *AdminCatalogHandler {
	return &AdminCatalogHandler{service: service}
}

func (h *AdminCatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "LISTINGS_SERVICE_UNAVAILABLE", "listings service is unavailable")
		return
	}
	if err := h.service.RefreshCatalog(r.Context()); err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to refresh catalog")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *AdminCatalogHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "LISTINGS_SERVICE_UNAVAILABLE", "listings service is unavailable")
		return
	}

	accommodationID, ok := accommodationIDFromRequest(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid accommodation id")
		return
	}

	var req dto.ListingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	status := enums.ListingStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	accommodation, err := h.service.SetListingStatus(r.Context(), accommodationID, status)
	if err != nil {
		switch {
		case errors.Is(err, listingssvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "status must be verified or rejected")
		case errors.Is(err, listingssvc.ErrNotFound):
			writeNotFound(w, "NOT_FOUND", "accommodation not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to update listing status")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ListingStatusResponse{
		AccommodationID: accommodation.ID.String(),
		Name:            accommodation.Name,
		Status:          string(accommodation.Status),
	})
}
