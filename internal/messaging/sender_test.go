package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

type captureSender struct {
	phones []string
}

func (c *captureSender) Send(_ context.Context, phone, _ string) error {
	c.phones = append(c.phones, phone)
	return nil
}

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"+34 600 000 000":   "34600000000",
		"600 000 000":       "34600000000",
		"711-22-33-44":      "34711223344",
		"912 345 678":       "912345678",
		"34600000000":       "34600000000",
		"(+44) 7700 900123": "447700900123",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestGuard(t *testing.T) {
	next := &captureSender{}
	g := NewGuard(next, true, []string{" 600000000", "+34 611 111 111", ""}, zap.NewNop())

	require.NoError(t, g.Send(context.Background(), "34600000000", "hola"))
	require.NoError(t, g.Send(context.Background(), "611 111 111", "hola"))
	assert.ErrorIs(t, g.Send(context.Background(), "622 222 222", "hola"), ErrNotWhitelisted)

	assert.Equal(t, []string{"34600000000", "611 111 111"}, next.phones)
}

func TestGuardOffLetsEverythingThrough(t *testing.T) {
	next := &captureSender{}
	g := NewGuard(next, false, nil, zap.NewNop())

	require.NoError(t, g.Send(context.Background(), "622 222 222", "hola"))
	assert.Len(t, next.phones, 1)
}

func TestThrottledRespectsContext(t *testing.T) {
	next := &captureSender{}
	s := NewThrottled(next, rate.NewLimiter(rate.Every(time.Hour), 1))

	require.NoError(t, s.Send(context.Background(), "600000000", "1"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, s.Send(ctx, "600000000", "2"))
	assert.Len(t, next.phones, 1)
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, NewLogSender(zap.New(core)).Send(context.Background(), "600 000 000", "hola"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "34600000000", logs.All()[0].ContextMap()["phone"])
}
