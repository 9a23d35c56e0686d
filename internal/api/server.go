package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
	dependencies map[string]handler.Pinger,
) (*Server, error) {
	authEnabled := config.Auth.Enabled

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(dependencies)...),
		router.WithRoutes(handler.Dashboard(reporter, authEnabled)...),
		router.WithRoutes(handler.Authentication(authenticator, authEnabled)...),
		router.WithRoutes(handler.CronJobs(cronServices, authEnabled)...),
	)

	for _, route := range rt.Routes() {
		logrus.Debugf("Rota disponível: %s", route)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator, authEnabled),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	if !authEnabled {
		logrus.Warn("Autenticação desabilitada: todos os painéis estão acessíveis sem token")
	}

	return srv, nil
}

// shutdownTimeout limita a espera pelas requisições em andamento
const shutdownTimeout = 15 * time.Second

// Run atende até receber SIGINT/SIGTERM ou o contexto ser cancelado
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("servidor HTTP encerrado com erro: %w", err)
	case <-ctx.Done():
		logrus.Info("Sinal de encerramento recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro no desligamento do servidor: %w", err)
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
