package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

// CompanyLookup resolves the company a mission belongs to.
type CompanyLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// InsertMissionCreatedFunc enqueues a MissionCreated job. main provides
// a closure over river.Client.Insert.
type InsertMissionCreatedFunc func(ctx context.Context, args MissionCreatedArgs) error

// Enqueuer translates "a mission was created" into a webhook job for
// the owning company, when that company has a webhook URL configured.
type Enqueuer struct {
	companies CompanyLookup
	insert    InsertMissionCreatedFunc
}

func NewEnqueuer(companies CompanyLookup, insert InsertMissionCreatedFunc) *Enqueuer {
	return &Enqueuer{companies: companies, insert: insert}
}

// MissionCreated enqueues the webhook delivery. Missions without a
// company, or whose company has no webhook URL, are skipped silently.
func (e *Enqueuer) MissionCreated(ctx context.Context, m *models.Mission) error {
	if m.CompanyID == nil {
		return nil
	}
	company, err := e.companies.GetByID(ctx, *m.CompanyID)
	if err != nil {
		return err
	}
	if company.WebhookURL == "" {
		return nil
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return e.insert(ctx, MissionCreatedArgs{
		MissionID:  m.ID,
		WebhookURL: company.WebhookURL,
		Payload:    payload,
	})
}
