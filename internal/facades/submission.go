package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// SubmissionHTTPFacade performs one attempt against the submission endpoint.
// The endpoint is idempotent on the request id, so the coordinator may
// resend the identical signed payload after a transport failure.
type SubmissionHTTPFacade struct {
	url    string
	client *http.Client
}

func NewSubmissionHTTPFacade(url string) *SubmissionHTTPFacade {
	return &SubmissionHTTPFacade{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// submissionBody is the wire shape of one submission.
type submissionBody struct {
	Request   models.TransactionRequest `json:"request"`
	ActorID   string                    `json:"actor_id"`
	Signature models.SignatureTriple    `json:"signature"`
}

// Send posts the signed request once. A transport failure or a 5xx answer
// is returned as an error (no definitive outcome, safe to retry with the
// same id); any definitive answer is decoded into the result.
func (f *SubmissionHTTPFacade) Send(ctx context.Context, actorID uuid.UUID, req models.TransactionRequest, sig models.SignatureTriple) (*models.SubmissionResult, error) {
	body, err := json.Marshal(submissionBody{
		Request:   req,
		ActorID:   actorID.String(),
		Signature: sig,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit transaction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("submission endpoint returned status %d", resp.StatusCode)
	}

	var result models.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode submission response: %w", err)
	}

	logger.Log.Infow("submission answered",
		"transaction_id", req.ID, "accepted", result.Accepted, "reason", result.Reason)
	return &result, nil
}
