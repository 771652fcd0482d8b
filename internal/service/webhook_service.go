package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/metrics"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// TypeWebhookDispatch is the asynq task type for a single webhook delivery
// attempt. EnqueueWebhook pushes one of these immediately after persisting
// the pending delivery row, giving first-attempt delivery sub-second
// latency; the orchestrator's "notifications" cron sweep is the fallback
// path for anything the queue drops or that needs a backed-off retry.
const TypeWebhookDispatch = "webhook:dispatch"

// WebhookDispatchPayload is the asynq task payload for TypeWebhookDispatch.
type WebhookDispatchPayload struct {
	DeliveryID uuid.UUID `json:"delivery_id"`
}

// WebhookDispatchHandler adapts ports.WebhookService.Dispatch into an
// asynq.Handler for registration on the worker's asynq.ServeMux.
type WebhookDispatchHandler struct {
	svc ports.WebhookService
}

// NewWebhookDispatchHandler creates a new WebhookDispatchHandler.
func NewWebhookDispatchHandler(svc ports.WebhookService) *WebhookDispatchHandler {
	return &WebhookDispatchHandler{svc: svc}
}

// ProcessTask unmarshals the delivery ID and dispatches it.
func (h *WebhookDispatchHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload WebhookDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal webhook dispatch payload: %w", err)
	}
	if err := h.svc.Dispatch(ctx, payload.DeliveryID); err != nil {
		return fmt.Errorf("dispatch webhook delivery %s: %w", payload.DeliveryID, err)
	}
	return nil
}

// webhookRetryIntervals is the fixed backoff schedule for webhook delivery
// retries (spec.md §4.7): 15s, 1m, 2m, 5m, 10m, then give up.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Webhook event types, mirrored in the payload's event_type field.
const (
	EventPaymentAuthorized = "PAYMENT_AUTHORIZED"
	EventPaymentConfirmed  = "PAYMENT_CONFIRMED"
	EventPaymentCancelled  = "PAYMENT_CANCELLED"
	EventPaymentRefunded   = "PAYMENT_REFUNDED"
	EventPaymentRejected   = "PAYMENT_REJECTED"
)

// WebhookPayload is the JSON structure POSTed to a team's webhook URL.
type WebhookPayload struct {
	EventType string             `json:"event_type"`
	Data      WebhookPayloadData `json:"data"`
	Signature string             `json:"signature"`
}

// WebhookPayloadData holds the payment details sent in a webhook.
type WebhookPayloadData struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Timestamp int64  `json:"timestamp"`
}

// HTTPClient is the transport webhookService posts through, narrowed for
// testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// webhookService implements ports.WebhookService. EnqueueWebhook persists
// a pending delivery row and returns immediately; Dispatch, driven by the
// background worker's asynq queue, performs the actual HTTP delivery and
// records its outcome.
type webhookService struct {
	teamRepo    ports.TeamRepository
	webhookRepo ports.WebhookDeliveryRepository
	encSvc      ports.EncryptionService
	sigSvc      ports.SignatureService
	httpClient  HTTPClient
	asynqClient *asynq.Client // nil = rely solely on the cron sweep to pick up pending deliveries
	log         zerolog.Logger
}

// NewWebhookService creates a new webhook service. asynqClient may be nil,
// in which case EnqueueWebhook skips the immediate-dispatch fast path and
// every delivery waits for the orchestrator's notifications sweep.
func NewWebhookService(
	teamRepo ports.TeamRepository,
	webhookRepo ports.WebhookDeliveryRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	asynqClient *asynq.Client,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		teamRepo:    teamRepo,
		webhookRepo: webhookRepo,
		encSvc:      encSvc,
		sigSvc:      sigSvc,
		httpClient:  httpClient,
		asynqClient: asynqClient,
		log:         log,
	}
}

func eventTypeForStatus(status domain.PaymentStatus) (string, bool) {
	switch status {
	case domain.StatusAuthorized:
		return EventPaymentAuthorized, true
	case domain.StatusConfirmed:
		return EventPaymentConfirmed, true
	case domain.StatusCancelled:
		return EventPaymentCancelled, true
	case domain.StatusRefunded, domain.StatusPartialRefunded:
		return EventPaymentRefunded, true
	case domain.StatusRejected:
		return EventPaymentRejected, true
	default:
		return "", false
	}
}

// EnqueueWebhook builds and persists a pending delivery row for payment's
// current status, if the team has a webhook URL configured and the status
// is one the spec notifies on. The actual send happens in Dispatch.
func (s *webhookService) EnqueueWebhook(ctx context.Context, payment *domain.Payment) error {
	eventType, notifiable := eventTypeForStatus(payment.Status)
	if !notifiable {
		return nil
	}

	team, err := s.teamRepo.GetByID(ctx, payment.TeamID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("fetch team: %w", err))
	}
	if team == nil || team.WebhookURL == nil || *team.WebhookURL == "" {
		s.log.Debug().Str("team_id", payment.TeamID.String()).Msg("webhook: no webhook url configured, skipping")
		return nil
	}

	data := WebhookPayloadData{
		OrderID:   payment.OrderID,
		PaymentID: payment.PaymentID,
		Status:    string(payment.Status),
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Timestamp: time.Now().Unix(),
	}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal webhook payload: %w", err))
	}

	secret, err := s.encSvc.Decrypt(team.WebhookSecretEncrypted)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("decrypt webhook secret: %w", err))
	}
	signature := s.sigSvc.Sign(secret, string(dataBytes))

	payload := WebhookPayload{EventType: eventType, Data: data, Signature: signature}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal webhook envelope: %w", err))
	}

	now := time.Now()
	log := &domain.WebhookDeliveryLog{
		ID:         uuid.New(),
		PaymentID:  payment.ID,
		TeamID:     team.ID,
		WebhookURL: *team.WebhookURL,
		Payload:    string(payloadJSON),
		Signature:  signature,
		Attempt:    0,
		Status:     domain.WebhookStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.webhookRepo.Create(ctx, log); err != nil {
		return apperror.InternalError(fmt.Errorf("persist webhook delivery log: %w", err))
	}

	s.enqueueDispatch(ctx, log.ID)

	return nil
}

// enqueueDispatch pushes an immediate dispatch task for a freshly created
// delivery. Failure to enqueue is logged and swallowed -- the delivery row
// is already durable, so the orchestrator's notifications sweep will still
// pick it up on its next run.
func (s *webhookService) enqueueDispatch(ctx context.Context, deliveryID uuid.UUID) {
	if s.asynqClient == nil {
		return
	}
	payload, err := json.Marshal(WebhookDispatchPayload{DeliveryID: deliveryID})
	if err != nil {
		s.log.Warn().Err(err).Str("delivery_id", deliveryID.String()).Msg("webhook: failed to marshal dispatch task")
		return
	}
	task := asynq.NewTask(TypeWebhookDispatch, payload)
	if _, err := s.asynqClient.EnqueueContext(ctx, task, asynq.Queue("webhooks"), asynq.MaxRetry(0), asynq.Timeout(15*time.Second)); err != nil {
		s.log.Warn().Err(err).Str("delivery_id", deliveryID.String()).Msg("webhook: failed to enqueue dispatch task")
	}
}

// Dispatch performs one delivery attempt for the given delivery log,
// updating its status, attempt count and next-retry time. Exhausting
// webhookRetryIntervals marks the delivery permanently FAILED. The asynq
// task is enqueued once, with no retries; later attempts come from the
// orchestrator's notifications sweep, which lists PENDING deliveries that
// were never attempted or whose NextRetryAt has passed.
func (s *webhookService) Dispatch(ctx context.Context, deliveryID uuid.UUID) error {
	entry, err := s.lookupDelivery(ctx, deliveryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.ErrNotFound("webhook delivery")
	}
	if entry.Status != domain.WebhookStatusPending {
		return nil
	}

	entry.Attempt++
	entry.UpdatedAt = time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, entry.WebhookURL, bytes.NewReader([]byte(entry.Payload)))
	if err != nil {
		s.recordFailure(ctx, entry, err.Error())
		return apperror.InternalError(fmt.Errorf("build webhook request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.recordFailure(ctx, entry, err.Error())
		return nil
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	entry.HTTPStatus = &status

	if status >= 200 && status < 300 {
		entry.Status = domain.WebhookStatusDelivered
		entry.LastError = nil
		entry.NextRetryAt = nil
		metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
		return s.persist(ctx, entry)
	}

	s.recordFailure(ctx, entry, fmt.Sprintf("HTTP %d", status))
	return nil
}

func (s *webhookService) recordFailure(ctx context.Context, entry *domain.WebhookDeliveryLog, errMsg string) {
	entry.LastError = &errMsg
	if entry.Attempt-1 < len(webhookRetryIntervals) {
		next := time.Now().Add(webhookRetryIntervals[entry.Attempt-1])
		entry.NextRetryAt = &next
		entry.Status = domain.WebhookStatusPending
		metrics.WebhookDeliveriesTotal.WithLabelValues("pending").Inc()
	} else {
		entry.Status = domain.WebhookStatusFailed
		entry.NextRetryAt = nil
		metrics.WebhookDeliveriesTotal.WithLabelValues("failed").Inc()
	}
	if err := s.persist(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("delivery_id", entry.ID.String()).Msg("webhook: failed to persist delivery outcome")
	}
}

func (s *webhookService) persist(ctx context.Context, entry *domain.WebhookDeliveryLog) error {
	if err := s.webhookRepo.Update(ctx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("persist webhook delivery log: %w", err))
	}
	return nil
}

// lookupDelivery finds a pending delivery by ID among the rows due for
// retry; WebhookDeliveryRepository has no GetByID, so the due-list (which
// includes Attempt == 0, next-retry-at-or-before-now rows) is the only
// lookup surface available.
func (s *webhookService) lookupDelivery(ctx context.Context, deliveryID uuid.UUID) (*domain.WebhookDeliveryLog, error) {
	entries, err := s.webhookRepo.ListPendingRetries(ctx, time.Now().Unix(), 500)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pending webhook deliveries: %w", err))
	}
	for i := range entries {
		if entries[i].ID == deliveryID {
			return &entries[i], nil
		}
	}
	return nil, nil
}
