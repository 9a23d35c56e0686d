package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Pinger é uma dependência verificada no healthcheck
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(dependencies map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		healthy := true
		checks := make(map[string]string, len(dependencies))
		for name, dependency := range dependencies {
			if err := dependency.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("error responding to healthcheck")
				checks[name] = "down"
				healthy = false
				continue
			}
			checks[name] = "up"
		}

		if !healthy {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Dependências indisponíveis", checks)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"time":   time.Now().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
