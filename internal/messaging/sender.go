package messaging

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var ErrNotWhitelisted = errors.New("number not in whitelist (debug mode)")

// Sender delivers one text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

// NormalizePhone strips everything but digits. Spanish mobile numbers
// written without prefix (9 digits starting with 6 or 7) get "34".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	if len(clean) == 9 && (clean[0] == '6' || clean[0] == '7') {
		clean = "34" + clean
	}
	return clean
}

// ======================================================
// WHITELIST GUARD
// ======================================================

// Guard refuses numbers outside the whitelist while debug mode is on.
type Guard struct {
	next    Sender
	debug   bool
	allowed map[string]struct{}
	log     *zap.Logger
}

func NewGuard(next Sender, debug bool, whitelist []string, log *zap.Logger) *Guard {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, n := range whitelist {
		if clean := NormalizePhone(n); clean != "" {
			allowed[clean] = struct{}{}
		}
	}
	return &Guard{next: next, debug: debug, allowed: allowed, log: log}
}

func (g *Guard) Allowed(phone string) bool {
	if !g.debug {
		return true
	}
	_, ok := g.allowed[NormalizePhone(phone)]
	return ok
}

func (g *Guard) Send(ctx context.Context, phone, text string) error {
	if !g.Allowed(phone) {
		g.log.Warn("message blocked by debug whitelist", zap.String("phone", NormalizePhone(phone)))
		return ErrNotWhitelisted
	}
	return g.next.Send(ctx, phone, text)
}

// ======================================================
// THROTTLE
// ======================================================

// Throttled spaces out consecutive sends.
type Throttled struct {
	next    Sender
	limiter *rate.Limiter
}

func NewThrottled(next Sender, limiter *rate.Limiter) *Throttled {
	return &Throttled{next: next, limiter: limiter}
}

func (t *Throttled) Send(ctx context.Context, phone, text string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.next.Send(ctx, phone, text)
}

// ======================================================
// LOG SENDER
// ======================================================

// LogSender writes messages to the log instead of a provider.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, phone, text string) error {
	s.log.Info("outbound message",
		zap.String("phone", NormalizePhone(phone)),
		zap.Int("length", len(text)),
	)
	return nil
}

var (
	_ Sender = (*Guard)(nil)
	_ Sender = (*Throttled)(nil)
	_ Sender = (*LogSender)(nil)
)
