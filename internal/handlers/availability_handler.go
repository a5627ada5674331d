package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/repository"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/services"
)

// AvailabilityHandler serves GET /v1/vehicles-available and
// GET /v1/drivers-available. Responses echo the query filters next to
// the list of free resources so the dashboard can render the active
// filter state without re-deriving it.
type AvailabilityHandler struct {
	Availability *services.Availability
	Logger       *slog.Logger
}

type vehiclesAvailableResponse struct {
	Date        string            `json:"date"`
	VehicleType string            `json:"vehicle_type,omitempty"`
	FleetID     string            `json:"fleet_id,omitempty"`
	Location    string            `json:"location,omitempty"`
	CompanyID   string            `json:"company_id,omitempty"`
	Count       int               `json:"count"`
	Vehicles    []*models.Vehicle `json:"vehicles"`
}

type driversAvailableResponse struct {
	Date      string           `json:"date"`
	FleetID   string           `json:"fleet_id,omitempty"`
	Location  string           `json:"location,omitempty"`
	CompanyID string           `json:"company_id,omitempty"`
	Count     int              `json:"count"`
	Drivers   []*models.Driver `json:"drivers"`
}

// VehiclesAvailable handles GET /v1/vehicles-available.
func (h *AvailabilityHandler) VehiclesAvailable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()
	date, ok := requiredDate(w, q.Get("date"))
	if !ok {
		return
	}

	filter := repository.VehicleFilter{
		Type:     firstNonEmpty(q.Get("vehicle_type"), q.Get("type")),
		Location: q.Get("location"),
	}
	var ok2 bool
	if filter.FleetID, ok2 = optionalUUIDParam(w, q.Get("fleet_id"), "fleet_id"); !ok2 {
		return
	}
	if filter.CompanyID, ok2 = optionalUUIDParam(w, q.Get("company_id"), "company_id"); !ok2 {
		return
	}

	vehicles, err := h.Availability.AvailableVehicles(r.Context(), date, filter)
	if err != nil {
		h.Logger.Error("vehicle availability query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "availability query failed")
		return
	}

	resp := vehiclesAvailableResponse{
		Date:        q.Get("date"),
		VehicleType: filter.Type,
		Location:    filter.Location,
		Count:       len(vehicles),
		Vehicles:    vehicles,
	}
	if filter.FleetID != nil {
		resp.FleetID = filter.FleetID.String()
	}
	if filter.CompanyID != nil {
		resp.CompanyID = filter.CompanyID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// DriversAvailable handles GET /v1/drivers-available.
func (h *AvailabilityHandler) DriversAvailable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()
	date, ok := requiredDate(w, q.Get("date"))
	if !ok {
		return
	}

	filter := repository.DriverFilter{Location: q.Get("location")}
	var ok2 bool
	if filter.FleetID, ok2 = optionalUUIDParam(w, q.Get("fleet_id"), "fleet_id"); !ok2 {
		return
	}
	if filter.CompanyID, ok2 = optionalUUIDParam(w, q.Get("company_id"), "company_id"); !ok2 {
		return
	}

	drivers, err := h.Availability.AvailableDrivers(r.Context(), date, filter)
	if err != nil {
		h.Logger.Error("driver availability query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "availability query failed")
		return
	}

	resp := driversAvailableResponse{
		Date:     q.Get("date"),
		Location: filter.Location,
		Count:    len(drivers),
		Drivers:  drivers,
	}
	if filter.FleetID != nil {
		resp.FleetID = filter.FleetID.String()
	}
	if filter.CompanyID != nil {
		resp.CompanyID = filter.CompanyID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func requiredDate(w http.ResponseWriter, raw string) (time.Time, bool) {
	if raw == "" {
		writeError(w, http.StatusBadRequest, "date query parameter is required")
		return time.Time{}, false
	}
	date, err := parseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be an ISO-8601 date")
		return time.Time{}, false
	}
	return date, true
}

func optionalUUIDParam(w http.ResponseWriter, raw, name string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &id, true
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
