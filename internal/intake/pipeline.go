package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nitrondigital/wholesaling-api/internal/notify"
	"github.com/nitrondigital/wholesaling-api/internal/observability/metrics"
	"github.com/nitrondigital/wholesaling-api/internal/relay"
	"github.com/nitrondigital/wholesaling-api/pkg/logging"
)

// Pipeline runs one submission through validate -> persist -> relay -> notify.
// Validation failure is the only outcome the caller ever sees; every
// downstream channel fails in isolation so a misbehaving dependency cannot
// turn a genuine lead into a user-visible error. The store and the webhook
// are each other's redundancy.
type Pipeline struct {
	repo     Repository
	relay    *relay.Client
	mailer   notify.EmailSender
	notifyTo string
	metrics  *metrics.IntakeMetrics
	logger   *logging.Logger
	now      func() time.Time
}

// PipelineConfig wires the pipeline's collaborators. Relay and Mailer are
// optional; a nil Relay skips the webhook step with a warning, a nil Mailer
// (or empty NotifyTo) disables the email copy.
type PipelineConfig struct {
	Repository Repository
	Relay      *relay.Client
	Mailer     notify.EmailSender
	NotifyTo   string
	Metrics    *metrics.IntakeMetrics
	Logger     *logging.Logger
	Now        func() time.Time
}

// NewPipeline creates a pipeline from the given configuration.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Repository == nil {
		panic("intake: repository required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Pipeline{
		repo:     cfg.Repository,
		relay:    cfg.Relay,
		mailer:   cfg.Mailer,
		notifyTo: cfg.NotifyTo,
		metrics:  cfg.Metrics,
		logger:   logger,
		now:      now,
	}
}

// Result reports which downstream channels accepted the submission. The
// HTTP envelope does not depend on these flags; they exist for logging and
// tests.
type Result struct {
	Submission *Submission
	Persisted  bool
	Relayed    bool
	Notified   bool
}

// Submit validates the payload against the form and, when it passes, stamps
// the record server-side and fans it out to the store, the webhook, and the
// notification email. The fan-out calls are independent of each other, so
// they run concurrently; all are awaited before returning. Only a validation
// failure produces a non-nil error.
func (p *Pipeline) Submit(ctx context.Context, form Form, payload *Payload) (*Result, error) {
	if err := form.Validate(payload); err != nil {
		p.metrics.ObserveSubmission(form.Name, "rejected")
		return nil, err
	}

	sub := &Submission{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(payload.Name),
		Phone:        strings.TrimSpace(payload.Phone),
		Address:      strings.TrimSpace(payload.Address),
		Email:        strings.TrimSpace(payload.Email),
		Message:      strings.TrimSpace(payload.Message),
		Areas:        strings.TrimSpace(payload.Areas),
		InvestorType: strings.TrimSpace(payload.InvestorType),
		DealID:       strings.TrimSpace(payload.DealID),
		Source:       form.Source,
		SubmittedAt:  p.now(),
	}

	res := &Result{Submission: sub}

	var g errgroup.Group
	g.Go(func() error {
		if err := p.repo.Insert(ctx, form.Collection, sub); err != nil {
			p.logger.Error("persist failed", "form", form.Name, "collection", form.Collection, "error", err)
			p.metrics.ObservePersistFailure(form.Name)
			return nil
		}
		res.Persisted = true
		return nil
	})
	g.Go(func() error {
		if p.relay == nil {
			p.logger.Warn("no webhook configured, skipping relay", "form", form.Name)
			return nil
		}
		start := time.Now()
		if err := p.relay.Send(ctx, relayPayload(sub)); err != nil {
			p.logger.Error("relay failed", "form", form.Name, "error", err)
			p.metrics.ObserveRelayFailure(form.Name)
			return nil
		}
		p.metrics.ObserveRelayLatency(time.Since(start).Seconds())
		res.Relayed = true
		return nil
	})
	if p.mailer != nil && p.notifyTo != "" {
		g.Go(func() error {
			if err := p.mailer.Send(ctx, p.notificationEmail(form, sub)); err != nil {
				p.logger.Error("notification email failed", "form", form.Name, "error", err)
				return nil
			}
			res.Notified = true
			return nil
		})
	}
	_ = g.Wait()

	p.metrics.ObserveSubmission(form.Name, "accepted")
	return res, nil
}

// relayPayload maps a submission onto the webhook contract's exact field set.
func relayPayload(sub *Submission) relay.Payload {
	return relay.Payload{
		Name:      sub.Name,
		Phone:     sub.Phone,
		Address:   sub.Address,
		Email:     sub.Email,
		Message:   sub.Message,
		Timestamp: sub.SubmittedAt.Format(time.RFC3339),
		Source:    sub.Source,
	}
}

func (p *Pipeline) notificationEmail(form Form, sub *Submission) notify.EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	if sub.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", sub.Address)
	}
	if sub.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	}
	if sub.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", sub.Message)
	}
	if sub.Areas != "" {
		fmt.Fprintf(&b, "Areas: %s\n", sub.Areas)
	}
	if sub.InvestorType != "" {
		fmt.Fprintf(&b, "Investor type: %s\n", sub.InvestorType)
	}
	if sub.DealID != "" {
		fmt.Fprintf(&b, "Deal: %s\n", sub.DealID)
	}
	fmt.Fprintf(&b, "Received: %s\n", sub.SubmittedAt.Format(time.RFC3339))
	return notify.EmailMessage{
		To:      p.notifyTo,
		Subject: fmt.Sprintf("New %s: %s", form.Label, sub.Name),
		Body:    b.String(),
	}
}
