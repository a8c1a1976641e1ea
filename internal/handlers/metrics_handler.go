package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucmetrics "github.com/BruksfildServices01/barber-queue/internal/usecase/metrics"
)

type MetricsHandler struct {
	summaryUC *ucmetrics.Summary
}

func NewMetricsHandler(summaryUC *ucmetrics.Summary) *MetricsHandler {
	return &MetricsHandler{summaryUC: summaryUC}
}

// Summary atende GET /metrics?startDate&endDate&barberId. Datas no
// formato 2006-01-02; endDate conta até o fim do dia.
func (h *MetricsHandler) Summary(c *gin.Context) {
	var in ucmetrics.SummaryInput

	loc := timezone.Location()

	if raw := c.Query("startDate"); raw != "" {
		start, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "Data inicial inválida.")
			return
		}
		in.Start = start
	}

	if raw := c.Query("endDate"); raw != "" {
		end, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Data final inválida.")
			return
		}
		in.End = end.Add(24*time.Hour - time.Nanosecond)
	}

	if raw := c.Query("barberId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Identificador de barbeiro inválido.")
			return
		}
		barberID := uint(id)
		in.BarbeiroID = &barberID
	}

	summary, err := h.summaryUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_build_metrics", "Erro ao calcular métricas.")
		return
	}

	httpresp.OK(c, summary)
}
