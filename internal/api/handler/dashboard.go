package handler

import (
	"net/http"

	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
)

// GetDashboardStats retorna os ganhos por canal no período informado
func GetDashboardStats(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		period := domain.ParsePeriod(r.URL.Query().Get("range"))

		stats, err := service.GetStats(claims.UserID, period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": claims.UserID,
				"range":   string(period),
			}).Error("dashboard: erro ao buscar estatísticas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

// ListSales retorna as vendas individuais de uma data, para conferência do
// que o upload gravou
func ListSales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		rawDate := r.URL.Query().Get("date")
		if rawDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		date, err := domain.ParseDateOnly(rawDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		sales, err := service.ListSales(claims.UserID, date)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    date.String(),
			}).Error("dashboard: erro ao listar vendas da data")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

// GetDashboardProducts retorna as vendas agrupadas por data e sub_id
func GetDashboardProducts(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		filter := domain.ParseProductFilter(r.URL.Query().Get("filter"))

		products, err := service.GetProducts(claims.UserID, filter)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": claims.UserID,
				"filter":  string(filter),
			}).Error("dashboard: erro ao buscar produtos")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":         claims.UserID,
			"groups_returned": len(products),
		}).Info("dashboard: produtos agrupados retornados")

		writeJSON(w, http.StatusOK, products)
	})
}
