package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
)

type ExpenseRequest struct {
	RelatorioID *int64          `json:"relatorio_id"`
	Descricao   string          `json:"descricao" validate:"required"`
	Valor       decimal.Decimal `json:"valor"`
}

// CreateExpense registra um gasto, opcionalmente vinculado a um relatório
// diário. Quando vinculado, o gasto_total e o lucro do relatório são
// recalculados a partir da soma dos gastos.
func CreateExpense(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		var req ExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição do gasto é obrigatória", nil)
			return
		}

		expense := &domain.Expense{
			UserID:      claims.UserID,
			RelatorioID: req.RelatorioID,
			Descricao:   req.Descricao,
			Valor:       req.Valor,
		}

		created, err := service.CreateExpense(expense)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrMissingExpense):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição do gasto é obrigatória", nil)
			case errors.Is(err, reporting.ErrReportNotFound):
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório vinculado não encontrado", nil)
			default:
				logger.WithError(err).WithFields(log.Fields{
					"user_id": claims.UserID,
				}).Error("expenses: erro ao registrar gasto")

				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar gasto", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

// ListExpenses lista os gastos vinculados a um relatório
func ListExpenses(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		rawReportID := r.URL.Query().Get("relatorio_id")
		if rawReportID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro relatorio_id é obrigatório", nil)
			return
		}

		reportID, err := strconv.ParseInt(rawReportID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro relatorio_id deve ser numérico", nil)
			return
		}

		expenses, err := service.ListExpenses(claims.UserID, reportID)
		if err != nil {
			if errors.Is(err, reporting.ErrReportNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório vinculado não encontrado", nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"user_id":   claims.UserID,
				"report_id": reportID,
			}).Error("expenses: erro ao listar gastos do relatório")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar gastos", nil)
			return
		}

		writeJSON(w, http.StatusOK, expenses)
	})
}
