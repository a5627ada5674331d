package main

import (
	"log/slog"
	"net/http"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/handlers"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/keys"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/middleware"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/notify"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/repository"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/services"
)

// RegisterV1Routes adds the API-key protected /v1/ resource endpoints.
// Every route runs the same chain: RequestLog -> APIKeyAuth -> handler,
// so each call produces exactly one log entry whatever its outcome.
func RegisterV1Routes(
	mux *http.ServeMux,
	keySvc *keys.Service,
	logRepo *repository.RequestLogRepo,
	missionRepo *repository.MissionRepo,
	vehicleRepo *repository.VehicleRepo,
	driverRepo *repository.DriverRepo,
	companyRepo *repository.CompanyRepo,
	fleetRepo *repository.FleetRepo,
	notifier *notify.Enqueuer,
	logger *slog.Logger,
) {
	availability := services.NewAvailability(vehicleRepo, driverRepo, missionRepo)

	mh := &handlers.MissionHandler{Missions: missionRepo, Notifier: notifier, Logger: logger}
	ah := &handlers.AvailabilityHandler{Availability: availability, Logger: logger}
	fh := &handlers.FleetHandler{
		Fleets:    fleetRepo,
		Vehicles:  vehicleRepo,
		Drivers:   driverRepo,
		Companies: companyRepo,
		Logger:    logger,
	}

	logged := middleware.RequestLog(logRepo, logger)
	auth := middleware.APIKeyAuth(keySvc)
	protect := func(h http.HandlerFunc) http.Handler {
		return logged(auth(h))
	}

	mux.Handle("/v1/missions", protect(mh.CreateMission))
	mux.Handle("/v1/vehicles-available", protect(ah.VehiclesAvailable))
	mux.Handle("/v1/drivers-available", protect(ah.DriversAvailable))
	mux.Handle("/v1/fleet-vehicles", protect(fh.FleetVehicles))
	// Path-only patterns: the handlers answer 405 themselves so the
	// rejection still flows through the request log.
	mux.Handle("/v1/companies/{id}/resources", protect(fh.CompanyResources))
	mux.Handle("/v1/fleets/{id}/vehicles", protect(fh.AddFleetVehicle))
	mux.Handle("/v1/fleets/{id}/drivers", protect(fh.AddFleetDriver))
}
