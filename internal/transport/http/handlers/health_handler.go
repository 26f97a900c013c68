package handlers

import (
	"net/http"
	"time"

	"github.com/ivankudzin/roomshare/backend/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/roomshare/backend/internal/transport/http/errors"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, _ *http.Request) {
	httperrors.Write(w, http.StatusOK, dto.HealthResponse{OK: true, Time: h.now().UTC()})
}
