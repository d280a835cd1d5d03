package catalog

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

// Health check messages
const (
	MsgHealthy   = "hdx catalog is ok"
	MsgUnhealthy = "hdx catalog is unavailable"
)

// Checker reports the health of the catalog using the status_show action
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	if err := c.action(ctx, "status_show", map[string]string{}, nil); err != nil {
		log.Warn(ctx, "catalog health check failed", log.Data{"error": err.Error()})

		code := http.StatusInternalServerError
		if catalogErr, ok := err.(*Error); ok {
			code = catalogErr.Code()
		}
		return state.Update(healthcheck.StatusCritical, MsgUnhealthy, code)
	}

	return state.Update(healthcheck.StatusOK, MsgHealthy, http.StatusOK)
}
