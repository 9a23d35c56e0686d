package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Warmer recarrega no cache as linhas de um cliente para o período
type Warmer interface {
	WarmUp(ctx context.Context, ownerID string, start, end time.Time) error
}

// CacheWarmupConfig representa a configuração do agendador de aquecimento do cache
type CacheWarmupConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	Enabled           bool
}

// CacheWarmupService aquece o cache do ano corrente e do mês até hoje para os clientes com KPI
type CacheWarmupService struct {
	scheduler           *gocron.Scheduler
	config              CacheWarmupConfig
	location            *time.Location
	profileRepo         repository.ProfileRepository
	warmer              Warmer
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

func NewCacheWarmupService(
	profileRepo repository.ProfileRepository,
	warmer Warmer,
	appConfig *config.Config,
) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule:      appConfig.CacheWarmup.CronSchedule,
		MaxConcurrentJobs: appConfig.CacheWarmup.MaxConcurrentJobs,
		Enabled:           appConfig.CacheWarmup.Enabled,
	}
	if warmupConfig.MaxConcurrentJobs <= 0 {
		warmupConfig.MaxConcurrentJobs = 1
	}

	loc := appConfig.App.Location
	if loc == nil {
		loc = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       warmupConfig.CronSchedule,
		"max_concurrent_jobs": warmupConfig.MaxConcurrentJobs,
		"enabled":             warmupConfig.Enabled,
	}).Info("Configuração do aquecimento de cache carregada")

	return &CacheWarmupService{
		scheduler:   gocron.NewScheduler(loc),
		config:      warmupConfig,
		location:    loc,
		profileRepo: profileRepo,
		warmer:      warmer,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmUpAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// warmUpAll aquece o cache de todos os clientes com KPI habilitado
func (s *CacheWarmupService) warmUpAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	peopleIDs, err := s.profileRepo.ListKPIProfiles(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes para aquecimento de cache")
		return
	}

	if len(peopleIDs) == 0 {
		logrus.Info("Nenhum cliente com KPI habilitado para aquecimento de cache")
		return
	}

	ranges := s.rangesToWarm()
	failures := s.warmUpProfiles(ctx, peopleIDs, ranges)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": s.now().Sub(s.lastSyncStartedAt).String(),
		"profiles": len(peopleIDs),
		"failures": failures,
	}).Info("Aquecimento de cache concluído")
}

// rangesToWarm cobre o ano corrente (visão de KPI) e o mês até hoje (período padrão de vendas)
func (s *CacheWarmupService) rangesToWarm() []domain.DateRange {
	today := s.now().In(s.location)

	year := domain.YearRange(today.Year(), s.location)
	monthToDate := domain.NewDateRange(
		time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.location),
		today,
		s.location,
	)

	return []domain.DateRange{year, monthToDate}
}

func (s *CacheWarmupService) warmUpProfiles(ctx context.Context, peopleIDs []string, ranges []domain.DateRange) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var failuresMutex sync.Mutex
	failures := 0

	for _, peopleID := range peopleIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(peopleID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			for _, rng := range ranges {
				err := s.warmer.WarmUp(ctx, peopleID, rng.StartInstant(), rng.EndInstant())
				if err == nil {
					continue
				}

				logrus.WithFields(logrus.Fields{
					"people_id":  peopleID,
					"start_date": rng.Start.Format(time.DateOnly),
					"end_date":   rng.End.Format(time.DateOnly),
					"error":      err.Error(),
				}).Error("Erro ao aquecer cache do cliente")

				failuresMutex.Lock()
				failures++
				failuresMutex.Unlock()
			}
		}(peopleID)
	}

	wg.Wait()
	return failures
}

// TriggerManualSync inicia manualmente o aquecimento do cache
func (s *CacheWarmupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do cache")
	go s.warmUpAll(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
