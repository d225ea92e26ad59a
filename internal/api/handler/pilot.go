package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/pilot"
	"github.com/vfg2006/finance-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-pilot-api/pkg/log"
	"github.com/vfg2006/finance-pilot-api/pkg/middleware"
	"github.com/vfg2006/finance-pilot-api/pkg/utils"
)

type checkinResponse struct {
	Saved bool   `json:"saved"`
	Date  string `json:"date"`
}

type historyResponse struct {
	Items []*domain.DailyRecommendation `json:"items"`
	Count int                           `json:"count"`
}

func GetTodayRecommendation(service pilot.PilotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			writeUnauthenticated(w)
			return
		}

		recommendation, err := service.GetTodayRecommendation(r.Context(), claims.UserID, claims.OrgID)
		writeRecommendation(w, r, recommendation, err)
	})
}

func GetRecommendationByDate(service pilot.PilotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			writeUnauthenticated(w)
			return
		}

		date, ok := parseDateParam(w, r, service)
		if !ok {
			return
		}

		recommendation, err := service.GetOrCreateDailyRecommendation(r.Context(), claims.UserID, claims.OrgID, date)
		writeRecommendation(w, r, recommendation, err)
	})
}

func ListRecommendationHistory(service pilot.PilotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			writeUnauthenticated(w)
			return
		}

		limit := 0
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		history, err := service.ListHistory(r.Context(), claims.UserID, limit)
		if err != nil {
			writePilotError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, historyResponse{Items: history, Count: len(history)})
	})
}

func SaveEmotionalCheckin(service pilot.PilotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			writeUnauthenticated(w)
			return
		}

		date, ok := parseDateParam(w, r, service)
		if !ok {
			return
		}

		var request domain.SaveEmotionalCheckinRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		saved, err := service.SaveEmotionalCheckin(r.Context(), claims.UserID, date, request.Value)
		if err != nil {
			writePilotError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, checkinResponse{Saved: saved, Date: date.Format(time.DateOnly)})
	})
}

// writeRecommendation traduz ausência de recomendação no estado "sem orientação hoje"
func writeRecommendation(w http.ResponseWriter, r *http.Request, recommendation *domain.DailyRecommendation, err error) {
	if err != nil && !pilot.IsUnavailable(err) {
		writePilotError(w, r, err)
		return
	}

	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Recomendação do piloto indisponível")
	}

	writeJSON(w, http.StatusOK, domain.DailyRecommendationResponse{
		Available:      recommendation != nil,
		Recommendation: recommendation,
	})
}

func writePilotError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Erro no piloto financeiro")

	var pilotErr *pilot.PilotError
	if errors.As(err, &pilotErr) && pilotErr.Code != "" {
		message := pilotErr.Err.Error()
		if errors.Is(err, pilot.ErrInvalidCheckin) {
			message = "O check-in deve ter entre 1 e 100 caracteres"
		}
		if errors.Is(err, pilot.ErrFutureDate) {
			message = "A data não pode ser posterior ao dia atual"
		}
		apiErrors.WriteError(w, pilotErr.Code, message, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no piloto financeiro", nil)
}

func parseDateParam(w http.ResponseWriter, r *http.Request, service pilot.PilotService) (time.Time, bool) {
	rawDate := httprouter.ParamsFromContext(r.Context()).ByName("date")

	date, err := utils.ParseDateIn(rawDate, service.Today().Location())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrPilotInvalidDate, "Data deve estar no formato AAAA-MM-DD", nil)
		return time.Time{}, false
	}

	return date, true
}
