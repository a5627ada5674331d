package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

// FleetVehicleLister lists a fleet's vehicles.
type FleetVehicleLister interface {
	ListByFleet(ctx context.Context, fleetID uuid.UUID) ([]*models.Vehicle, error)
}

// FleetDriverLister lists a fleet's drivers.
type FleetDriverLister interface {
	ListByFleet(ctx context.Context, fleetID uuid.UUID) ([]*models.Driver, error)
}

// FleetAssociator adds resources to fleets, insert-or-ignore.
type FleetAssociator interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fleet, error)
	AddVehicle(ctx context.Context, fleetID, vehicleID uuid.UUID) (bool, error)
	AddDriver(ctx context.Context, fleetID, driverID uuid.UUID) (bool, error)
}

// CompanyReader resolves a company and its fleets.
type CompanyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListFleets(ctx context.Context, companyID uuid.UUID) ([]*models.Fleet, error)
}

// FleetHandler serves fleet-vehicle listing, company resource lookup
// and fleet association endpoints.
type FleetHandler struct {
	Fleets    FleetAssociator
	Vehicles  FleetVehicleLister
	Drivers   FleetDriverLister
	Companies CompanyReader
	Logger    *slog.Logger
}

// FleetVehicles handles GET /v1/fleet-vehicles?fleet_id=...
func (h *FleetHandler) FleetVehicles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	fleetID, err := uuid.Parse(r.URL.Query().Get("fleet_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "fleet_id query parameter is required")
		return
	}
	if _, err := h.Fleets.GetByID(r.Context(), fleetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "fleet not found")
			return
		}
		h.Logger.Error("fleet lookup failed", "fleet_id", fleetID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	vehicles, err := h.Vehicles.ListByFleet(r.Context(), fleetID)
	if err != nil {
		h.Logger.Error("fleet vehicles query failed", "fleet_id", fleetID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"fleet_id": fleetID.String(),
		"count":    len(vehicles),
		"vehicles": vehicles,
	})
}

// CompanyResources handles GET /v1/companies/{id}/resources: the
// company plus its fleets and their vehicles and drivers.
func (h *FleetHandler) CompanyResources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	companyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}
	company, err := h.Companies.GetByID(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "company not found")
			return
		}
		h.Logger.Error("company lookup failed", "company_id", companyID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	fleets, err := h.Companies.ListFleets(r.Context(), companyID)
	if err != nil {
		h.Logger.Error("company fleets query failed", "company_id", companyID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	type fleetResources struct {
		Fleet    *models.Fleet     `json:"fleet"`
		Vehicles []*models.Vehicle `json:"vehicles"`
		Drivers  []*models.Driver  `json:"drivers"`
	}
	out := make([]fleetResources, 0, len(fleets))
	for _, f := range fleets {
		vehicles, err := h.Vehicles.ListByFleet(r.Context(), f.ID)
		if err != nil {
			h.Logger.Error("fleet vehicles query failed", "fleet_id", f.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		drivers, err := h.Drivers.ListByFleet(r.Context(), f.ID)
		if err != nil {
			h.Logger.Error("fleet drivers query failed", "fleet_id", f.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		out = append(out, fleetResources{Fleet: f, Vehicles: vehicles, Drivers: drivers})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"company": company,
		"fleets":  out,
	})
}

type associateRequest struct {
	VehicleID string `json:"vehicle_id"`
	DriverID  string `json:"driver_id"`
}

// AddFleetVehicle handles POST /v1/fleets/{id}/vehicles.
func (h *FleetHandler) AddFleetVehicle(w http.ResponseWriter, r *http.Request) {
	h.associate(w, r, true)
}

// AddFleetDriver handles POST /v1/fleets/{id}/drivers.
func (h *FleetHandler) AddFleetDriver(w http.ResponseWriter, r *http.Request) {
	h.associate(w, r, false)
}

func (h *FleetHandler) associate(w http.ResponseWriter, r *http.Request, vehicle bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	fleetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fleet id")
		return
	}
	var req associateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var raw, field string
	if vehicle {
		raw, field = req.VehicleID, "vehicle_id"
	} else {
		raw, field = req.DriverID, "driver_id"
	}
	resourceID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, field+" is required")
		return
	}

	if _, err := h.Fleets.GetByID(r.Context(), fleetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "fleet not found")
			return
		}
		h.Logger.Error("fleet lookup failed", "fleet_id", fleetID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var created bool
	if vehicle {
		created, err = h.Fleets.AddVehicle(r.Context(), fleetID, resourceID)
	} else {
		created, err = h.Fleets.AddDriver(r.Context(), fleetID, resourceID)
	}
	if err != nil {
		h.Logger.Error("fleet association failed", "fleet_id", fleetID, field, resourceID, "error", err)
		writeError(w, http.StatusBadRequest, "association failed")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"success":  true,
		"fleet_id": fleetID.String(),
		field:      resourceID.String(),
		"created":  created,
	})
}
