package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

// MissionStore is the subset of the mission repository the handler needs.
type MissionStore interface {
	Create(ctx context.Context, m *models.Mission) error
}

// MissionNotifier enqueues the mission-created webhook delivery. A nil
// notifier disables notifications.
type MissionNotifier interface {
	MissionCreated(ctx context.Context, m *models.Mission) error
}

// MissionHandler serves POST /v1/missions.
type MissionHandler struct {
	Missions MissionStore
	Notifier MissionNotifier
	Logger   *slog.Logger
}

type createMissionRequest struct {
	Title             string  `json:"title"`
	Date              string  `json:"date"`
	ArrivalDate       *string `json:"arrival_date"`
	DriverID          *string `json:"driver_id"`
	VehicleID         *string `json:"vehicle_id"`
	FleetID           *string `json:"fleet_id"`
	CompanyID         *string `json:"company_id"`
	Status            string  `json:"status"`
	StartLocation     string  `json:"start_location"`
	EndLocation       string  `json:"end_location"`
	Client            string  `json:"client"`
	Passengers        *int    `json:"passengers"`
	Description       string  `json:"description"`
	AdditionalDetails string  `json:"additional_details"`
}

type createMissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"data"`
}

// CreateMission handles POST /v1/missions.
func (h *MissionHandler) CreateMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: title and date are required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be an ISO-8601 date")
		return
	}

	m := &models.Mission{
		ID:                uuid.New(),
		Title:             req.Title,
		Date:              date,
		Status:            req.Status,
		StartLocation:     req.StartLocation,
		EndLocation:       req.EndLocation,
		Client:            req.Client,
		Passengers:        req.Passengers,
		Description:       req.Description,
		AdditionalDetails: req.AdditionalDetails,
	}
	if m.Status == "" {
		m.Status = models.MissionStatusPending
	}
	if req.ArrivalDate != nil && *req.ArrivalDate != "" {
		arrival, err := parseDate(*req.ArrivalDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "arrival_date must be an ISO-8601 date")
			return
		}
		m.ArrivalDate = &arrival
	}
	if m.DriverID, err = parseOptionalUUID(req.DriverID, "driver_id", w); err != nil {
		return
	}
	if m.VehicleID, err = parseOptionalUUID(req.VehicleID, "vehicle_id", w); err != nil {
		return
	}
	if m.FleetID, err = parseOptionalUUID(req.FleetID, "fleet_id", w); err != nil {
		return
	}
	if m.CompanyID, err = parseOptionalUUID(req.CompanyID, "company_id", w); err != nil {
		return
	}

	if err := h.Missions.Create(r.Context(), m); err != nil {
		h.Logger.Error("mission insert failed", "title", m.Title, "error", err)
		writeError(w, http.StatusBadRequest, "mission creation failed")
		return
	}

	if h.Notifier != nil && m.CompanyID != nil {
		if err := h.Notifier.MissionCreated(r.Context(), m); err != nil {
			h.Logger.Warn("mission notification enqueue failed", "mission_id", m.ID, "error", err)
		}
	}

	resp := createMissionResponse{Success: true, Message: "mission created"}
	resp.Data.ID = m.ID.String()
	resp.Data.Title = m.Title
	writeJSON(w, http.StatusCreated, resp)
}

// parseOptionalUUID parses a nullable uuid field, writing a 400 and
// returning a non-nil error when the value is present but malformed.
func parseOptionalUUID(s *string, field string, w http.ResponseWriter) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+field)
		return nil, err
	}
	return &id, nil
}
