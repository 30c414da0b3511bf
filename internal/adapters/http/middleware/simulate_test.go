package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"503", 503, true},
		{" 404", 404, true},
		{"250ms", 250, true},
		{"0", 0, true},
		{"+12", 12, true},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1e3", 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := leadingInt(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWait_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := wait(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func newSimulatedApp(defaultDelay time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Use(Simulate(defaultDelay))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})
	return app
}

func TestSimulate_PassThrough(t *testing.T) {
	app := newSimulatedApp(0)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSimulate_ErrorHeader(t *testing.T) {
	app := newSimulatedApp(0)

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(SimErrorHeader, "503")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Error struct {
			StatusCode int    `json:"statusCode"`
			Message    string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 503, body.Error.StatusCode)
	assert.NotEmpty(t, body.Error.Message)
}

func TestSimulate_ErrorQuery(t *testing.T) {
	app := newSimulatedApp(0)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping?__error=404", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSimulate_IgnoresNonErrorStatus(t *testing.T) {
	app := newSimulatedApp(0)

	for _, value := range []string{"200", "302", "600", "abc", "-500"} {
		req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
		req.Header.Set(SimErrorHeader, value)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, value)
	}
}

func TestSimulate_HeaderWinsOverQuery(t *testing.T) {
	app := newSimulatedApp(0)

	req := httptest.NewRequest(fiber.MethodGet, "/ping?__error=500", nil)
	req.Header.Set(SimErrorHeader, "418")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}

func TestSimulate_DelayOverride(t *testing.T) {
	app := newSimulatedApp(0)

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping?__delay=60", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestSimulate_DelayAppliesToInjectedErrors(t *testing.T) {
	app := newSimulatedApp(0)

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(SimErrorHeader, "500")
	req.Header.Set(SimDelayHeader, "40")

	start := time.Now()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestSimulate_DefaultDelayAndZeroOverride(t *testing.T) {
	app := newSimulatedApp(80 * time.Millisecond)

	start := time.Now()
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(SimDelayHeader, "0")
	start = time.Now()
	_, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 80*time.Millisecond)
}
