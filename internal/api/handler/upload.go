package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/uploading"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/utils"
)

// Limite de 10 MB por planilha enviada
const maxUploadSize = 10 << 20

type UploadRequest struct {
	DataPlanilha string             `json:"data_planilha"`
	Registros    []uploading.RawRow `json:"registros"`
}

type UploadResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// UploadSalesRows recebe as linhas da planilha já parseadas (JSON) e
// substitui as vendas da data de referência
func UploadSalesRows(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		var req UploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.DataPlanilha == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da planilha é obrigatória", nil)
			return
		}

		if log.IsDevelopment() && len(req.Registros) > 0 {
			logger.Debugf("upload: primeira linha recebida: %s", utils.PrettyJson(req.Registros[0]))
		}

		result, err := service.ReplaceDailySales(r.Context(), claims.UserID, req.DataPlanilha, req.Registros)
		if err != nil {
			writeUploadError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":   claims.UserID,
			"batch_id":  result.BatchID,
			"inserted":  result.Inserted,
			"discarded": result.Discarded,
		}).Info("upload: vendas da data substituídas")

		writeJSON(w, http.StatusOK, UploadResponse{
			Message: "Sucesso",
			Count:   result.Inserted,
		})
	})
}

// UploadSalesFile recebe a planilha como arquivo (multipart) nos formatos
// .csv ou .xlsx
func UploadSalesFile(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		referenceDate := r.FormValue("data_planilha")
		if referenceDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da planilha é obrigatória", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo da planilha é obrigatório", nil)
			return
		}
		defer file.Close()

		result, err := service.ReplaceDailySalesFromFile(r.Context(), claims.UserID, referenceDate, header.Filename, file)
		if err != nil {
			writeUploadError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":   claims.UserID,
			"batch_id":  result.BatchID,
			"filename":  header.Filename,
			"inserted":  result.Inserted,
			"discarded": result.Discarded,
		}).Info("upload: planilha processada")

		writeJSON(w, http.StatusOK, UploadResponse{
			Message: fmt.Sprintf("Sucesso: %d registros importados", result.Inserted),
			Count:   result.Inserted,
		})
	})
}

func writeUploadError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, uploading.ErrMissingReferenceDate) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da planilha é obrigatória", nil)
		return
	}

	if errors.Is(err, uploading.ErrInvalidReferenceDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da planilha inválida, use o formato YYYY-MM-DD", nil)
		return
	}

	logger.WithError(err).Error("upload: erro ao processar lote de vendas")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro no upload", nil)
}
