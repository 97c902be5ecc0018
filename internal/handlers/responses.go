package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var envelopeFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "envelope_failures_total",
		Help: "Total number of failure envelopes returned, by path",
	},
	[]string{"path"},
)

// Envelope is the uniform response wrapper. Every endpoint returns it, and
// failures ride HTTP 200: clients inspect status, not the transport code.
// This is a deliberate external contract carried over from the deployed API.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// Success sends a success envelope.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  statusSuccess,
		Message: statusSuccess,
		Data:    data,
	})
}

// Failure sends a failure envelope with the stringified cause. Always 200.
func Failure(c echo.Context, message string, err error) error {
	envelopeFailuresTotal.WithLabelValues(c.Path()).Inc()

	env := Envelope{
		Status:  statusFailure,
		Message: message,
	}
	if err != nil {
		env.Error = err.Error()
	}
	return c.JSON(http.StatusOK, env)
}
