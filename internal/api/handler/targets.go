package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/targeting"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
)

// ListTargets returns every stored target, or one month's worth when the
// month parameter (YYYY-MM) is present.
func ListTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, _ := employeeClaims(r)

		locationID, err := resolveLocationID(r, claims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "location_id must be an integer", nil)
			return
		}

		month := r.URL.Query().Get("month")

		var targets []*domain.SalesTarget
		if month != "" {
			targets, err = service.TargetsForMonth(r.Context(), month, locationID)
		} else {
			targets, err = service.ListTargets(r.Context())
		}
		if err != nil {
			if errors.Is(err, targeting.ErrInvalidTarget) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("targets: failed to list targets")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to list targets", nil)
			return
		}

		writeJSON(w, map[string]any{
			"items": targets,
			"total": len(targets),
		})
	})
}

func SaveTarget(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var target domain.SalesTarget
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.SaveTarget(r.Context(), &target); err != nil {
			switch {
			case errors.Is(err, targeting.ErrInvalidTarget), errors.Is(err, targeting.ErrInvalidLocation):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				logger.WithError(err).Error("targets: failed to save target")
				apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to save target", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"location_id": target.LocationID,
			"target_date": target.TargetDate,
		}).Info("targets: target saved")

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, map[string]string{"message": "target saved"})
	})
}
