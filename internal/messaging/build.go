package messaging

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Spacing between outbound messages.
const sendInterval = 2 * time.Second

// NewOutbound assembles the sender used by the reminder job: the debug
// whitelist in front of a throttled log sender.
func NewOutbound(debug bool, whitelist []string, log *zap.Logger) Sender {
	throttled := NewThrottled(NewLogSender(log), rate.NewLimiter(rate.Every(sendInterval), 1))
	return NewGuard(throttled, debug, whitelist, log)
}
