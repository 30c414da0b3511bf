package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Request controls for the network simulation
const (
	SimDelayHeader = "x-sim-delay"
	SimErrorHeader = "x-sim-error"
	SimDelayQuery  = "__delay"
	SimErrorQuery  = "__error"
)

// Simulate injects latency and failures. A status in 400..599 from the
// x-sim-error header or __error query replaces the real response. Every
// response, injected or not, waits for the x-sim-delay header or __delay
// query in milliseconds, else defaultDelay.
func Simulate(defaultDelay time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, injectError := simulatedStatus(c)

		delay := defaultDelay
		if ms, ok := leadingInt(firstNonEmpty(c.Get(SimDelayHeader), c.Query(SimDelayQuery))); ok {
			delay = time.Duration(ms) * time.Millisecond
		}

		if err := wait(c.Context(), delay); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, response.ServerErrorMessage)
		}

		if injectError {
			return response.Simulated(c, status)
		}
		return c.Next()
	}
}

func simulatedStatus(c *fiber.Ctx) (int, bool) {
	status, ok := leadingInt(firstNonEmpty(c.Get(SimErrorHeader), c.Query(SimErrorQuery)))
	if !ok || status < fiber.StatusBadRequest || status > 599 {
		return 0, false
	}
	return status, true
}

// wait sleeps for d unless ctx is done first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// leadingInt reads a non-negative integer prefix the way browsers parse
// form values: leading whitespace and trailing garbage are ignored.
func leadingInt(value string) (int, bool) {
	value = strings.TrimLeft(value, " \t\n\r")
	if value == "" {
		return 0, false
	}

	end := 0
	if value[0] == '+' || value[0] == '-' {
		end = 1
	}
	start := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
