package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/repository"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/services"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type stubVehicleLister struct {
	vehicles []*models.Vehicle
	lastF    repository.VehicleFilter
}

func (s *stubVehicleLister) ListCandidates(_ context.Context, f repository.VehicleFilter) ([]*models.Vehicle, error) {
	s.lastF = f
	return s.vehicles, nil
}

type stubDriverLister struct {
	drivers []*models.Driver
}

func (s *stubDriverLister) ListCandidates(_ context.Context, _ repository.DriverFilter) ([]*models.Driver, error) {
	return s.drivers, nil
}

type stubMissionLister struct {
	missions []*models.Mission
}

func (s *stubMissionLister) ListOverlappingDay(_ context.Context, _, _ time.Time) ([]*models.Mission, error) {
	return s.missions, nil
}

func newAvailHandler(vl *stubVehicleLister, dl *stubDriverLister, ml *stubMissionLister) *AvailabilityHandler {
	return &AvailabilityHandler{
		Availability: services.NewAvailability(vl, dl, ml),
		Logger:       slog.Default(),
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestVehiclesAvailable_EchoesFiltersAndList(t *testing.T) {
	v := &models.Vehicle{ID: uuid.New(), Registration: "AB-123-CD", Type: "minibus", Status: models.VehicleStatusActive}
	vl := &stubVehicleLister{vehicles: []*models.Vehicle{v}}
	h := newAvailHandler(vl, &stubDriverLister{}, &stubMissionLister{})

	fleetID := uuid.New()
	url := "/v1/vehicles-available?date=2026-03-14&vehicle_type=minibus&location=Lyon&fleet_id=" + fleetID.String()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.VehiclesAvailable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Date        string            `json:"date"`
		VehicleType string            `json:"vehicle_type"`
		FleetID     string            `json:"fleet_id"`
		Location    string            `json:"location"`
		Count       int               `json:"count"`
		Vehicles    []*models.Vehicle `json:"vehicles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "2026-03-14" || resp.VehicleType != "minibus" || resp.Location != "Lyon" {
		t.Errorf("response does not echo the filters: %+v", resp)
	}
	if resp.FleetID != fleetID.String() {
		t.Errorf("fleet_id = %q, want %s", resp.FleetID, fleetID)
	}
	if resp.Count != 1 || len(resp.Vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got count=%d len=%d", resp.Count, len(resp.Vehicles))
	}

	// Filter values propagate to the repository query.
	if vl.lastF.Type != "minibus" || vl.lastF.Location != "Lyon" {
		t.Errorf("filter not forwarded to store: %+v", vl.lastF)
	}
	if vl.lastF.FleetID == nil || *vl.lastF.FleetID != fleetID {
		t.Error("fleet_id filter not forwarded to store")
	}
}

func TestVehiclesAvailable_MissingDate(t *testing.T) {
	h := newAvailHandler(&stubVehicleLister{}, &stubDriverLister{}, &stubMissionLister{})

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles-available", nil)
	rec := httptest.NewRecorder()
	h.VehiclesAvailable(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without date, got %d", rec.Code)
	}
}

func TestVehiclesAvailable_BusyVehicleFilteredOut(t *testing.T) {
	busy := &models.Vehicle{ID: uuid.New(), Registration: "AA-111-AA", Status: models.VehicleStatusActive}
	free := &models.Vehicle{ID: uuid.New(), Registration: "BB-222-BB", Status: models.VehicleStatusActive}
	mission := &models.Mission{
		ID:        uuid.New(),
		Title:     "transfert",
		Date:      time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
		VehicleID: &busy.ID,
		Status:    models.MissionStatusConfirmed,
	}
	h := newAvailHandler(
		&stubVehicleLister{vehicles: []*models.Vehicle{busy, free}},
		&stubDriverLister{},
		&stubMissionLister{missions: []*models.Mission{mission}},
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles-available?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.VehiclesAvailable(rec, req)

	var resp struct {
		Count    int               `json:"count"`
		Vehicles []*models.Vehicle `json:"vehicles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || resp.Vehicles[0].ID != free.ID {
		t.Fatalf("expected only the free vehicle, got %+v", resp)
	}
}

func TestDriversAvailable_NoMissionsReturnsAll(t *testing.T) {
	d1 := &models.Driver{ID: uuid.New(), FirstName: "Marc", LastName: "Durand", Status: models.DriverStatusAvailable}
	d2 := &models.Driver{ID: uuid.New(), FirstName: "Lea", LastName: "Petit", Status: models.DriverStatusAvailable}
	h := newAvailHandler(&stubVehicleLister{}, &stubDriverLister{drivers: []*models.Driver{d1, d2}}, &stubMissionLister{})

	req := httptest.NewRequest(http.MethodGet, "/v1/drivers-available?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.DriversAvailable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Count   int              `json:"count"`
		Drivers []*models.Driver `json:"drivers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected the full driver set, got %d", resp.Count)
	}
}

func TestDriversAvailable_MethodNotAllowed(t *testing.T) {
	h := newAvailHandler(&stubVehicleLister{}, &stubDriverLister{}, &stubMissionLister{})

	req := httptest.NewRequest(http.MethodPost, "/v1/drivers-available?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.DriversAvailable(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestVehiclesAvailable_BadUUIDFilter(t *testing.T) {
	h := newAvailHandler(&stubVehicleLister{}, &stubDriverLister{}, &stubMissionLister{})

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles-available?date=2026-03-14&fleet_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.VehiclesAvailable(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed fleet_id, got %d", rec.Code)
	}
}
