package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/team6/sales-report-api/internal/scheduler"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
)

const (
	CronJobTypeDailySummary = "daily-summary"
	CronJobTypeAll          = "all"
)

// CronJobServices bundles the schedulers exposed for manual triggering.
type CronJobServices struct {
	DailySummarySyncService *scheduler.DailySummarySyncService
}

// RunCronJob triggers a sync job outside its schedule.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailySummary, CronJobTypeAll:
			if services.DailySummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "daily summary sync service unavailable", nil)
				return
			}
			if err := services.DailySummarySyncService.RunNow(); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"invalid cron job type, accepted values: daily-summary, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: manual sync triggered")

		writeJSON(w, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	})
}

// GetCronStatus reports the state of the sync schedulers.
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if services.DailySummarySyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "daily summary sync service unavailable", nil)
			return
		}

		writeJSON(w, map[string]any{
			"daily-summary": services.DailySummarySyncService.Status(),
		})
	})
}
