// Package notify delivers mission-created webhooks to client companies
// through a River background job, so webhook latency and retries never
// touch the API response path.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

type MissionCreatedArgs struct {
	MissionID  uuid.UUID       `json:"mission_id"`
	WebhookURL string          `json:"webhook_url"`
	Payload    json.RawMessage `json:"payload"`
}

func (MissionCreatedArgs) Kind() string { return "mission_created" }

type MissionCreatedWorker struct {
	river.WorkerDefaults[MissionCreatedArgs]
	httpClient *http.Client
}

func NewMissionCreatedWorker() *MissionCreatedWorker {
	return &MissionCreatedWorker{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Work POSTs the mission payload to the company webhook. Network errors
// and non-2xx responses return an error so River retries with backoff.
func (w *MissionCreatedWorker) Work(ctx context.Context, job *river.Job[MissionCreatedArgs]) error {
	args := job.Args

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, args.WebhookURL, bytes.NewReader(args.Payload))
	if err != nil {
		return river.JobCancel(fmt.Errorf("bad webhook request for mission %s: %w", args.MissionID, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook call for mission %s: %w", args.MissionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook for mission %s returned status %d", args.MissionID, resp.StatusCode)
	}
	return nil
}
