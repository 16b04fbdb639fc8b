package submission

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pizzaorder/internal/domain"
)

// Options configure the user-facing text and request behaviour.
type Options struct {
	SizeWords   map[domain.Size]string
	FailureText string
	Timeout     time.Duration // 0 = wait for the endpoint indefinitely
}

// Service submits orders through an OrderClient.
type Service struct {
	client    domain.OrderClient
	sizeWords map[domain.Size]string
	failure   string
	timeout   time.Duration
	log       *zap.Logger
}

// New returns a submitter. A nil logger disables logging.
func New(client domain.OrderClient, opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	words := make(map[domain.Size]string, len(opts.SizeWords))
	for k, v := range opts.SizeWords {
		words[k] = v
	}
	return &Service{
		client:    client,
		sizeWords: words,
		failure:   opts.FailureText,
		timeout:   opts.Timeout,
		log:       log,
	}
}

// Submit posts d once. The draft is expected to be valid already.
func (s *Service) Submit(ctx context.Context, d domain.OrderDraft) (domain.SubmissionOutcome, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	payload := d.Payload()
	s.log.Debug("submitting order",
		zap.String("full_name", payload.FullName),
		zap.String("size", payload.Size.String()),
		zap.Strings("toppings", payload.Toppings))

	body, err := s.client.PlaceOrder(ctx, payload)
	if err != nil {
		s.log.Error("error submitting order", zap.Error(err))
		return domain.SubmissionOutcome{Failure: s.failure}, &domain.SubmissionError{Err: err}
	}
	s.log.Info("order submitted successfully", zap.ByteString("response", body))

	return domain.SubmissionOutcome{Success: s.Confirmation(d)}, nil
}

// Confirmation composes the success message for d.
func (s *Service) Confirmation(d domain.OrderDraft) string {
	return Confirmation(d.TrimmedName(), s.sizeWords[d.Size], len(d.Toppings))
}

// Confirmation formats the thank-you text. The toppings are reported by
// count only.
func Confirmation(name, sizeWord string, toppings int) string {
	return fmt.Sprintf("Thank you for your order, %s! Your %s pizza with %s is on the way.",
		name, sizeWord, ToppingPhrase(toppings))
}

// ToppingPhrase renders a topping count: "no toppings", "1 topping", "3 toppings".
func ToppingPhrase(n int) string {
	switch {
	case n <= 0:
		return "no toppings"
	case n == 1:
		return "1 topping"
	default:
		return fmt.Sprintf("%d toppings", n)
	}
}

// Compile-time assertion that Service implements domain.Submitter.
var _ domain.Submitter = (*Service)(nil)
