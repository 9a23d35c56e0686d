// Package reporting monta as visões do painel (vendas, gestão de pedidos e KPI) de um cliente
package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/evaluating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/paginating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Reporter interface {
	GetProfile(ctx context.Context, peopleID string) (*domain.ProfileSummary, error)
	GetSalesReport(ctx context.Context, peopleID string, filters domain.ReportFilters) (*domain.SalesReport, error)
	GetOrderManagementReport(ctx context.Context, peopleID string, filters domain.ReportFilters) (*domain.OrderManagementReport, error)
	GetKPIReport(ctx context.Context, peopleID string, month *domain.MonthKey) (*domain.KPIReport, error)
	SaveGoal(ctx context.Context, peopleID string, request domain.SaveGoalRequest) (*domain.Goal, error)
}

type Service struct {
	profileRepository repository.ProfileRepository
	fetcher           warehouse.Fetcher
	location          *time.Location
	salesMaxDays      int
	ordersMaxDays     int
	pageSize          int
	now               func() time.Time
}

func NewService(
	profileRepository repository.ProfileRepository,
	fetcher warehouse.Fetcher,
	cfg *config.Config,
) *Service {
	loc := cfg.App.Location
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		profileRepository: profileRepository,
		fetcher:           fetcher,
		location:          loc,
		salesMaxDays:      positiveOr(cfg.Dashboard.SalesMaxDays, domain.SalesMaxRangeDays),
		ordersMaxDays:     positiveOr(cfg.Dashboard.OrdersMaxDays, domain.OrderManagementMaxRangeDays),
		pageSize:          positiveOr(cfg.Dashboard.PageSize, domain.DefaultPageSize),
		now:               time.Now,
	}
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func (s *Service) GetProfile(ctx context.Context, peopleID string) (*domain.ProfileSummary, error) {
	profile, err := s.loadProfile(ctx, peopleID)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileSummary{
		PeopleID:               peopleID,
		KPIEnabled:             profile.KPIEnabled,
		OrderManagementEnabled: profile.OrderManagementEnabled,
		GoalMonths:             evaluating.AvailableMonths(profile.GMVGoals, profile.TPVGoals),
	}, nil
}

func (s *Service) GetSalesReport(ctx context.Context, peopleID string, filters domain.ReportFilters) (*domain.SalesReport, error) {
	rng, err := s.resolveRange(peopleID, filters, s.salesMaxDays)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadProfile(ctx, peopleID); err != nil {
		return nil, err
	}

	var (
		orders       []domain.Order
		transactions []domain.Transaction
	)
	err = fetchConcurrently(ctx,
		func(ctx context.Context) (err error) {
			orders, err = s.fetcher.FetchOrders(ctx, peopleID, rng.StartInstant(), rng.EndInstant())
			if err != nil {
				return fetchError(peopleID, "Falha ao buscar pedidos no warehouse", err)
			}
			return nil
		},
		func(ctx context.Context) (err error) {
			transactions, err = s.fetcher.FetchTransactions(ctx, peopleID, rng.StartInstant(), rng.EndInstant())
			if err != nil {
				return fetchError(peopleID, "Falha ao buscar transações no warehouse", err)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	sortByNewest(transactions)

	report := &domain.SalesReport{
		PeopleID:     peopleID,
		Range:        rng,
		OrderCount:   len(orders),
		Transactions: aggregating.AggregateTransactions(transactions),
		ByMethod:     aggregating.MethodBreakdown(transactions),
		ByStatus:     aggregating.StatusBreakdown(transactions),
		Daily:        aggregating.DailySeries(transactions, rng),
		TransactionsPage: paginating.PaginateWithSize(
			transactions,
			customerName,
			filters.CustomerFilter,
			filters.Page,
			s.pageSize,
		),
	}

	logrus.WithFields(logrus.Fields{
		"people_id":    peopleID,
		"view":         domain.ViewSales,
		"orders":       report.OrderCount,
		"transactions": len(transactions),
	}).Info("Relatório de vendas gerado")

	return report, nil
}

func (s *Service) GetOrderManagementReport(ctx context.Context, peopleID string, filters domain.ReportFilters) (*domain.OrderManagementReport, error) {
	rng, err := s.resolveRange(peopleID, filters, s.ordersMaxDays)
	if err != nil {
		return nil, err
	}

	profile, err := s.loadProfile(ctx, peopleID)
	if err != nil {
		return nil, err
	}

	if !profile.OrderManagementEnabled {
		return nil, NewReportError(ErrFeatureDisabled, apiErrors.ErrInsufficientPrivilege, peopleID, "Gestão de pedidos não habilitada para o cliente")
	}

	var (
		orders []domain.Order
		items  []domain.OrderItem
	)
	err = fetchConcurrently(ctx,
		func(ctx context.Context) (err error) {
			orders, err = s.fetcher.FetchOrders(ctx, peopleID, rng.StartInstant(), rng.EndInstant(), domain.PassedThroughStatuses...)
			if err != nil {
				return fetchError(peopleID, "Falha ao buscar pedidos no warehouse", err)
			}
			return nil
		},
		func(ctx context.Context) (err error) {
			items, err = s.fetcher.FetchOrderItems(ctx, peopleID, rng.StartInstant(), rng.EndInstant())
			if err != nil {
				return fetchError(peopleID, "Falha ao buscar itens de pedidos no warehouse", err)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"people_id": peopleID,
		"view":      domain.ViewOrderManagement,
		"orders":    len(orders),
		"items":     len(items),
	}).Info("Relatório de gestão de pedidos gerado")

	return &domain.OrderManagementReport{
		PeopleID:       peopleID,
		Range:          rng,
		Orders:         aggregating.AggregateOrders(orders),
		ByProfessional: aggregating.RevenueByProfessional(items, orders),
		ByProduct:      aggregating.RevenueByProduct(items, orders),
	}, nil
}

// GetKPIReport avalia o mês informado, ou o mês padrão quando month é nil
func (s *Service) GetKPIReport(ctx context.Context, peopleID string, month *domain.MonthKey) (*domain.KPIReport, error) {
	profile, err := s.loadProfile(ctx, peopleID)
	if err != nil {
		return nil, err
	}

	if !profile.KPIEnabled {
		return nil, NewReportError(ErrFeatureDisabled, apiErrors.ErrInsufficientPrivilege, peopleID, "KPI não habilitado para o cliente")
	}

	selected, err := evaluating.DefaultMonth(profile.GMVGoals, profile.TPVGoals, s.now().In(s.location))
	if err != nil {
		return nil, noGoalsError(peopleID)
	}
	if month != nil {
		selected = *month
	}

	year := domain.YearRange(selected.Year, s.location)

	var (
		orders       []domain.Order
		transactions []domain.Transaction
	)
	err = fetchConcurrently(ctx,
		func(ctx context.Context) (err error) {
			orders, err = s.fetcher.FetchOrders(ctx, peopleID, year.StartInstant(), year.EndInstant())
			if err != nil {
				return fetchError(peopleID, "Falha ao buscar pedidos do ano no warehouse", err)
			}
			return nil
		},
		func(ctx context.Context) (err error) {
			transactions, err = s.fetcher.FetchTransactions(ctx, peopleID, year.StartInstant(), year.EndInstant())
			if err != nil {
				return fetchError(peopleID, "Falha ao buscar transações do ano no warehouse", err)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	report, err := evaluating.Evaluate(evaluating.Input{
		Orders:       orders,
		Transactions: transactions,
		Month:        selected,
		GMVGoals:     profile.GMVGoals,
		TPVGoals:     profile.TPVGoals,
		Location:     s.location,
	})
	if err != nil {
		if errors.Is(err, evaluating.ErrNoGoalsConfigured) {
			return nil, noGoalsError(peopleID)
		}
		return nil, err
	}
	report.PeopleID = peopleID

	logrus.WithFields(logrus.Fields{
		"people_id": peopleID,
		"view":      domain.ViewKPI,
		"month":     selected.String(),
	}).Info("Relatório de KPI gerado")

	return report, nil
}

// SaveGoal grava a meta de um mês para um cliente existente
func (s *Service) SaveGoal(ctx context.Context, peopleID string, request domain.SaveGoalRequest) (*domain.Goal, error) {
	if err := request.Validate(); err != nil {
		return nil, NewReportError(ErrInvalidGoal, apiErrors.ErrInvalidFormat, peopleID,
			"Métrica deve ser GMV ou TPV e o mês deve estar no formato mm/aaaa").WithCause(err)
	}

	month, err := domain.ParseMonthKey(request.Month)
	if err != nil {
		return nil, NewReportError(ErrInvalidGoal, apiErrors.ErrInvalidFormat, peopleID, "Mês deve estar no formato mm/aaaa")
	}

	if request.Target.IsNegative() {
		return nil, NewReportError(ErrInvalidGoal, apiErrors.ErrInvalidFormat, peopleID, "Meta não pode ser negativa")
	}

	if _, err := s.loadProfile(ctx, peopleID); err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		PeopleID: peopleID,
		Metric:   request.Metric,
		Month:    month,
		Target:   request.Target.String(),
	}

	if err := s.profileRepository.SaveGoal(ctx, goal); err != nil {
		logrus.WithError(err).WithField("people_id", peopleID).Error("Erro ao salvar meta")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, peopleID, "Falha ao salvar meta").WithCause(err)
	}

	return goal, nil
}

func (s *Service) loadProfile(ctx context.Context, peopleID string) (*domain.Profile, error) {
	profile, err := s.profileRepository.GetProfile(ctx, peopleID)
	if err != nil {
		logrus.WithError(err).WithField("people_id", peopleID).Error("Erro ao buscar perfil")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, peopleID, "Falha ao buscar perfil do cliente").WithCause(err)
	}

	if profile == nil {
		return nil, NewReportError(ErrUnknownOwner, apiErrors.ErrOwnerNotFound, peopleID, "Cliente não encontrado")
	}

	return profile, nil
}

// resolveRange aplica o período padrão (início do mês até hoje) e valida o tamanho máximo da visão
func (s *Service) resolveRange(peopleID string, filters domain.ReportFilters, maxDays int) (domain.DateRange, error) {
	today := s.now().In(s.location)

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.location)
	if filters.StartDate != nil {
		start = *filters.StartDate
	}

	end := today
	if filters.EndDate != nil {
		end = *filters.EndDate
	}

	rng := domain.NewDateRange(start, end, s.location)

	if rng.End.Before(rng.Start) {
		return domain.DateRange{}, NewReportError(ErrInvalidRange, apiErrors.ErrInvalidDateRange, peopleID, "Data inicial posterior à data final")
	}

	if rng.Days() > maxDays {
		return domain.DateRange{}, NewReportError(ErrInvalidRange, apiErrors.ErrInvalidDateRange, peopleID,
			"Período maior que o permitido para a visão")
	}

	return rng, nil
}

// fetchConcurrently executa as buscas em paralelo; a primeira falha cancela as demais
func fetchConcurrently(ctx context.Context, fetches ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}

func fetchError(peopleID, details string, cause error) error {
	logrus.WithError(cause).WithField("people_id", peopleID).Error(details)
	return NewReportError(ErrDataFetch, apiErrors.ErrExternalService, peopleID, details).WithCause(cause)
}

func noGoalsError(peopleID string) error {
	return NewReportError(ErrNoGoalsConfigured, apiErrors.ErrNoGoalsConfigured, peopleID, "nenhuma meta de KPI configurada")
}

func customerName(tx domain.Transaction) *string {
	return tx.CustomerName
}

func sortByNewest(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
}
