package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
)

type ManualReportRequest struct {
	SubID        string          `json:"sub_id" validate:"required"`
	Data         string          `json:"data" validate:"required"`
	ReceitaTotal decimal.Decimal `json:"receita_total"`
	GastoTotal   decimal.Decimal `json:"gasto_total"`
}

// UpsertManualReport grava o relatório diário de um sub_id. Retorna 201
// quando o relatório é criado e 200 quando a chave (sub_id, data) já existia
// e foi atualizada.
func UpsertManualReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		var req ManualReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sub ID e data são obrigatórios", nil)
			return
		}

		date, err := domain.ParseDateOnly(req.Data)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		report := &domain.DailyReport{
			UserID:       claims.UserID,
			SubID:        req.SubID,
			Data:         date,
			ReceitaTotal: req.ReceitaTotal,
			GastoTotal:   req.GastoTotal,
		}

		saved, created, err := service.UpsertManualReport(report)
		if err != nil {
			if errors.Is(err, reporting.ErrMissingReportKey) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sub ID e data são obrigatórios", nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"user_id": claims.UserID,
				"sub_id":  req.SubID,
			}).Error("reports: erro ao gravar relatório manual")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar relatório", nil)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}

		writeJSON(w, status, saved)
	})
}

// ListReports lista relatórios por data exata (?date=YYYY-MM-DD) ou por
// período nomeado (?range=today|yesterday|week|month|all)
func ListReports(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		date := r.URL.Query().Get("date")
		period := domain.ParsePeriod(r.URL.Query().Get("range"))

		reports, err := service.ListReports(claims.UserID, date, period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    date,
				"range":   string(period),
			}).Error("reports: erro ao listar relatórios")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios", nil)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	})
}

// ListReportSummaries retorna os consolidados semanais (?period=weekly) ou
// mensais (?period=monthly) do usuário
func ListReportSummaries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		period := r.URL.Query().Get("period")

		var (
			body any
			err  error
		)

		switch period {
		case "monthly":
			body, err = service.ListMonthlySummaries(claims.UserID)
		case "", "weekly":
			body, err = service.ListWeeklySummaries(claims.UserID)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido, use weekly ou monthly", nil)
			return
		}

		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": claims.UserID,
				"period":  period,
			}).Error("reports: erro ao listar consolidados")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar consolidados", nil)
			return
		}

		writeJSON(w, http.StatusOK, body)
	})
}
