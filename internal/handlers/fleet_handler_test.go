package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type pair struct{ a, b uuid.UUID }

type mockFleetStore struct {
	fleets   map[uuid.UUID]*models.Fleet
	vehicles map[pair]bool
	drivers  map[pair]bool
}

func newMockFleetStore(fleets ...*models.Fleet) *mockFleetStore {
	s := &mockFleetStore{
		fleets:   make(map[uuid.UUID]*models.Fleet),
		vehicles: make(map[pair]bool),
		drivers:  make(map[pair]bool),
	}
	for _, f := range fleets {
		s.fleets[f.ID] = f
	}
	return s
}

func (s *mockFleetStore) GetByID(_ context.Context, id uuid.UUID) (*models.Fleet, error) {
	f, ok := s.fleets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return f, nil
}

// AddVehicle mirrors the production insert-or-ignore contract.
func (s *mockFleetStore) AddVehicle(_ context.Context, fleetID, vehicleID uuid.UUID) (bool, error) {
	p := pair{fleetID, vehicleID}
	if s.vehicles[p] {
		return false, nil
	}
	s.vehicles[p] = true
	return true, nil
}

func (s *mockFleetStore) AddDriver(_ context.Context, fleetID, driverID uuid.UUID) (bool, error) {
	p := pair{fleetID, driverID}
	if s.drivers[p] {
		return false, nil
	}
	s.drivers[p] = true
	return true, nil
}

type mockFleetVehicles struct {
	byFleet map[uuid.UUID][]*models.Vehicle
}

func (m *mockFleetVehicles) ListByFleet(_ context.Context, fleetID uuid.UUID) ([]*models.Vehicle, error) {
	return m.byFleet[fleetID], nil
}

type mockFleetDrivers struct {
	byFleet map[uuid.UUID][]*models.Driver
}

func (m *mockFleetDrivers) ListByFleet(_ context.Context, fleetID uuid.UUID) ([]*models.Driver, error) {
	return m.byFleet[fleetID], nil
}

type mockCompanies struct {
	companies map[uuid.UUID]*models.Company
	fleets    map[uuid.UUID][]*models.Fleet
}

func (m *mockCompanies) GetByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockCompanies) ListFleets(_ context.Context, companyID uuid.UUID) ([]*models.Fleet, error) {
	return m.fleets[companyID], nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestFleetVehicles_ListsFleet(t *testing.T) {
	fleet := &models.Fleet{ID: uuid.New(), Name: "Navettes Lyon"}
	v := &models.Vehicle{ID: uuid.New(), Registration: "AB-123-CD"}
	h := &FleetHandler{
		Fleets:   newMockFleetStore(fleet),
		Vehicles: &mockFleetVehicles{byFleet: map[uuid.UUID][]*models.Vehicle{fleet.ID: {v}}},
		Logger:   slog.Default(),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/fleet-vehicles?fleet_id="+fleet.ID.String(), nil)
	rec := httptest.NewRecorder()
	h.FleetVehicles(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		FleetID  string            `json:"fleet_id"`
		Count    int               `json:"count"`
		Vehicles []*models.Vehicle `json:"vehicles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || resp.Vehicles[0].ID != v.ID {
		t.Fatalf("unexpected vehicle list: %+v", resp)
	}
}

func TestFleetVehicles_UnknownFleet(t *testing.T) {
	h := &FleetHandler{
		Fleets:   newMockFleetStore(),
		Vehicles: &mockFleetVehicles{},
		Logger:   slog.Default(),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/fleet-vehicles?fleet_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.FleetVehicles(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestFleetVehicles_MissingFleetID(t *testing.T) {
	h := &FleetHandler{Fleets: newMockFleetStore(), Vehicles: &mockFleetVehicles{}, Logger: slog.Default()}

	req := httptest.NewRequest(http.MethodGet, "/v1/fleet-vehicles", nil)
	rec := httptest.NewRecorder()
	h.FleetVehicles(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without fleet_id, got %d", rec.Code)
	}
}

func TestAddFleetVehicle_InsertOrIgnore(t *testing.T) {
	fleet := &models.Fleet{ID: uuid.New(), Name: "Navettes Lyon"}
	store := newMockFleetStore(fleet)
	h := &FleetHandler{Fleets: store, Logger: slog.Default()}
	vehicleID := uuid.New()
	body := `{"vehicle_id":"` + vehicleID.String() + `"}`

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/fleets/"+fleet.ID.String()+"/vehicles", strings.NewReader(body))
		req.SetPathValue("id", fleet.ID.String())
		return req
	}

	// First association creates.
	rec := httptest.NewRecorder()
	h.AddFleetVehicle(rec, newReq())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first insert, got %d: %s", rec.Code, rec.Body.String())
	}

	// Identical request is a no-op success, not a duplicate.
	rec = httptest.NewRecorder()
	h.AddFleetVehicle(rec, newReq())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat insert, got %d", rec.Code)
	}
	if len(store.vehicles) != 1 {
		t.Fatalf("expected a single association, got %d", len(store.vehicles))
	}
}

func TestAddFleetDriver_UnknownFleet(t *testing.T) {
	h := &FleetHandler{Fleets: newMockFleetStore(), Logger: slog.Default()}

	req := httptest.NewRequest(http.MethodPost, "/v1/fleets/x/drivers",
		strings.NewReader(`{"driver_id":"`+uuid.NewString()+`"}`))
	req.SetPathValue("id", uuid.NewString())
	rec := httptest.NewRecorder()
	h.AddFleetDriver(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCompanyResources(t *testing.T) {
	company := &models.Company{ID: uuid.New(), Name: "Transports Horizon"}
	fleet := &models.Fleet{ID: uuid.New(), Name: "Navettes", CompanyID: &company.ID}
	v := &models.Vehicle{ID: uuid.New(), Registration: "AB-123-CD"}
	d := &models.Driver{ID: uuid.New(), FirstName: "Marc", LastName: "Durand"}

	h := &FleetHandler{
		Fleets:   newMockFleetStore(fleet),
		Vehicles: &mockFleetVehicles{byFleet: map[uuid.UUID][]*models.Vehicle{fleet.ID: {v}}},
		Drivers:  &mockFleetDrivers{byFleet: map[uuid.UUID][]*models.Driver{fleet.ID: {d}}},
		Companies: &mockCompanies{
			companies: map[uuid.UUID]*models.Company{company.ID: company},
			fleets:    map[uuid.UUID][]*models.Fleet{company.ID: {fleet}},
		},
		Logger: slog.Default(),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/companies/"+company.ID.String()+"/resources", nil)
	req.SetPathValue("id", company.ID.String())
	rec := httptest.NewRecorder()
	h.CompanyResources(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Company *models.Company `json:"company"`
		Fleets  []struct {
			Fleet    *models.Fleet     `json:"fleet"`
			Vehicles []*models.Vehicle `json:"vehicles"`
			Drivers  []*models.Driver  `json:"drivers"`
		} `json:"fleets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Company.ID != company.ID {
		t.Errorf("wrong company in response")
	}
	if len(resp.Fleets) != 1 || len(resp.Fleets[0].Vehicles) != 1 || len(resp.Fleets[0].Drivers) != 1 {
		t.Fatalf("unexpected resource tree: %s", rec.Body.String())
	}
}

func TestCompanyResources_UnknownCompany(t *testing.T) {
	h := &FleetHandler{
		Fleets:    newMockFleetStore(),
		Companies: &mockCompanies{companies: map[uuid.UUID]*models.Company{}},
		Logger:    slog.Default(),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/companies/x/resources", nil)
	req.SetPathValue("id", uuid.NewString())
	rec := httptest.NewRecorder()
	h.CompanyResources(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
