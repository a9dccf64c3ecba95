package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReconciliation = "reconciliation"
	CronJobTypeAdMetrics      = "ad-metrics"
	CronJobTypeAll            = "all"
)

// CronJob é o que o handler precisa de cada agendador.
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	Reconciliation CronJob
	AdMetrics      CronJob
}

func (s CronJobServices) byType(cronType string) []CronJob {
	switch cronType {
	case CronJobTypeReconciliation:
		return []CronJob{s.Reconciliation}
	case CronJobTypeAdMetrics:
		return []CronJob{s.AdMetrics}
	case CronJobTypeAll:
		return []CronJob{s.Reconciliation, s.AdMetrics}
	}
	return nil
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType(cronType)
		if jobs == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: reconciliation, ad-metrics, all", nil)
			return
		}

		triggered := 0
		for _, job := range jobs {
			if job == nil {
				continue
			}
			job.TriggerManualSync()
			triggered++
		}

		if triggered == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.Reconciliation != nil {
			status[CronJobTypeReconciliation] = services.Reconciliation.GetStatus()
		}
		if services.AdMetrics != nil {
			status[CronJobTypeAdMetrics] = services.AdMetrics.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
