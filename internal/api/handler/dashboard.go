package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// peopleIDFromRequest lê o cliente da rota e o registra no contexto de log
func peopleIDFromRequest(r *http.Request) (*http.Request, string) {
	peopleID := httprouter.ParamsFromContext(r.Context()).ByName(middleware.PeopleIDParam)
	return r.WithContext(log.WithPeopleID(r.Context(), peopleID)), peopleID
}

func parseReportFilters(r *http.Request) (domain.ReportFilters, string) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.ReportFilters{}, "start_date deve estar no formato yyyy-mm-dd"
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.ReportFilters{}, "end_date deve estar no formato yyyy-mm-dd"
	}

	page := 0
	if raw := query.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return domain.ReportFilters{}, "page deve ser um número inteiro"
		}
	}

	return domain.ReportFilters{
		StartDate:      startDate,
		EndDate:        endDate,
		CustomerFilter: query.Get("customer"),
		Page:           page,
	}, ""
}

func GetProfile(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, peopleID := peopleIDFromRequest(r)

		summary, err := service.GetProfile(r.Context(), peopleID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar perfil do painel")
			writeServiceError(w, err, "Erro ao buscar perfil")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func GetSalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, peopleID := peopleIDFromRequest(r)

		filters, invalid := parseReportFilters(r)
		if invalid != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, invalid, nil)
			return
		}

		report, err := service.GetSalesReport(r.Context(), peopleID, filters)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{"view": domain.ViewSales}).WithError(err).Error("Erro ao gerar relatório de vendas")
			writeServiceError(w, err, "Erro ao gerar relatório de vendas")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetOrderManagementReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, peopleID := peopleIDFromRequest(r)

		filters, invalid := parseReportFilters(r)
		if invalid != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, invalid, nil)
			return
		}

		report, err := service.GetOrderManagementReport(r.Context(), peopleID, filters)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{"view": domain.ViewOrderManagement}).WithError(err).Error("Erro ao gerar relatório de pedidos")
			writeServiceError(w, err, "Erro ao gerar relatório de gestão de pedidos")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetKPIReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, peopleID := peopleIDFromRequest(r)

		var month *domain.MonthKey
		if raw := r.URL.Query().Get("month"); raw != "" {
			parsed, err := domain.ParseMonthKey(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "month deve estar no formato mm/aaaa", nil)
				return
			}
			month = &parsed
		}

		report, err := service.GetKPIReport(r.Context(), peopleID, month)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{"view": domain.ViewKPI}).WithError(err).Error("Erro ao gerar relatório de KPI")
			writeServiceError(w, err, "Erro ao gerar relatório de KPI")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func SaveGoal(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, peopleID := peopleIDFromRequest(r)

		var request domain.SaveGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		goal, err := service.SaveGoal(r.Context(), peopleID, request)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao salvar meta")
			writeServiceError(w, err, "Erro ao salvar meta")
			return
		}

		writeJSON(w, http.StatusOK, goal)
	})
}

// GenerateEmbedToken emite o token que o site do cliente usa para incorporar o painel
func GenerateEmbedToken(authenticator authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, peopleID := peopleIDFromRequest(r)

		var request domain.TokenRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}

		token, err := authenticator.GenerateToken(peopleID, request.Admin)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar token de incorporação")
			writeServiceError(w, err, "Erro ao gerar token")
			return
		}

		writeJSON(w, http.StatusCreated, token)
	})
}
