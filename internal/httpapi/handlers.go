package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/sosphone-backend/internal/hub"
	"github.com/DoyleJ11/sosphone-backend/internal/phone"
	"github.com/DoyleJ11/sosphone-backend/internal/types"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CreateDevice registers a new device and starts its actor.
func CreateDevice(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		if _, err := h.Ensure(r.Context(), id); err != nil {
			log.Error("create device", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "failed to create device"})
			return
		}
		log.Info("device created", zap.String("device", id))
		writeJSON(w, http.StatusCreated, types.CreateDeviceResponse{DeviceID: id})
	}
}

// ValidatePhone checks a number without storing it. region falls back to defaultRegion.
func ValidatePhone(defaultRegion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ValidatePhoneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
			return
		}
		if req.Region == "" {
			req.Region = defaultRegion
		}

		resp := types.ValidatePhoneResponse{}
		if n, err := phone.Parse(req.Number, req.Region); err == nil {
			resp.Valid = true
			resp.E164 = n.E164
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
