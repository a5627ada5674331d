package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/repository"
)

// VehicleLister supplies candidate vehicles matching static filters.
type VehicleLister interface {
	ListCandidates(ctx context.Context, f repository.VehicleFilter) ([]*models.Vehicle, error)
}

// DriverLister supplies candidate drivers matching static filters.
type DriverLister interface {
	ListCandidates(ctx context.Context, f repository.DriverFilter) ([]*models.Driver, error)
}

// MissionLister supplies every mission touching a day window.
type MissionLister interface {
	ListOverlappingDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*models.Mission, error)
}

// Availability answers "which vehicles/drivers are free on this day".
// A resource is busy iff some non-cancelled mission referencing it
// overlaps the day; a mission with status "annulee" never blocks.
type Availability struct {
	Vehicles VehicleLister
	Drivers  DriverLister
	Missions MissionLister
}

func NewAvailability(vehicles VehicleLister, drivers DriverLister, missions MissionLister) *Availability {
	return &Availability{Vehicles: vehicles, Drivers: drivers, Missions: missions}
}

// DayWindow returns the [start, end) bounds of the calendar day
// containing t, in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// AvailableVehicles returns the candidate vehicles not blocked by any
// mission on the day of `date`. With zero non-cancelled missions the
// full candidate set comes back unfiltered.
func (a *Availability) AvailableVehicles(ctx context.Context, date time.Time, f repository.VehicleFilter) ([]*models.Vehicle, error) {
	candidates, err := a.Vehicles.ListCandidates(ctx, f)
	if err != nil {
		return nil, err
	}
	busy, err := a.busyResources(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Vehicle, 0, len(candidates))
	for _, v := range candidates {
		if !busy[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

// AvailableDrivers is the driver-side counterpart of AvailableVehicles.
func (a *Availability) AvailableDrivers(ctx context.Context, date time.Time, f repository.DriverFilter) ([]*models.Driver, error) {
	candidates, err := a.Drivers.ListCandidates(ctx, f)
	if err != nil {
		return nil, err
	}
	busy, err := a.busyResources(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Driver, 0, len(candidates))
	for _, d := range candidates {
		if !busy[d.ID] {
			out = append(out, d)
		}
	}
	return out, nil
}

// busyResources collects the driver and vehicle ids referenced by
// missions blocking the day. Driver and vehicle ids share one set:
// uuids cannot collide across tables.
func (a *Availability) busyResources(ctx context.Context, date time.Time) (map[uuid.UUID]bool, error) {
	dayStart, dayEnd := DayWindow(date)
	missions, err := a.Missions.ListOverlappingDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	busy := make(map[uuid.UUID]bool)
	for _, m := range missions {
		if !m.Blocks(dayStart, dayEnd) {
			continue
		}
		if m.VehicleID != nil {
			busy[*m.VehicleID] = true
		}
		if m.DriverID != nil {
			busy[*m.DriverID] = true
		}
	}
	return busy, nil
}
