package http

import (
	"net/http"

	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
	"github.com/tp-labs/pulsedash/pkg/utils/apperr"
)

// handleCharts handles GET /api/charts: a chart spec for the requested
// kind over the filtered dataset. An unknown type is a client error.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParseChartKind(r.URL.Query().Get("type"))
	if err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	filter := model.ParseFilterSpec(r.URL.Query())

	spec, err := s.chart.BuildChart(r.Context(), kind, filter)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(r.Context(), w, err, errorStatus(err))
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, spec)
}
