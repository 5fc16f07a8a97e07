package http

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/interfaces"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
	"github.com/tp-labs/pulsedash/pkg/utils/apperr"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

// topCustomerRows is the size of the top-customers table on the
// dashboard page
const topCustomerRows = 10

// DashboardHandler renders the dashboard page. All figures come from
// the use cases; the handler only assembles them for the template.
type DashboardHandler struct {
	metrics interfaces.Metrics
	chart   interfaces.Chart
	tmpl    *template.Template
}

// NewDashboardHandler creates a DashboardHandler with the embedded
// page template
func NewDashboardHandler(metrics interfaces.Metrics, chart interfaces.Chart) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard template")
	}
	return &DashboardHandler{
		metrics: metrics,
		chart:   chart,
		tmpl:    tmpl,
	}, nil
}

type dashboardData struct {
	Revenue        string
	RevenueGrowth  string
	Customers      int
	CustomerGrowth string
	AvgRevenue     string
	ActiveUsers    int
	TopCustomers   []*model.CustomerRevenue
	RevenueTrend   template.JS
	SKUChart       template.JS
	IndustryChart  template.JS
}

// HandleDashboard handles GET /: the server-rendered dashboard page
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := model.ParseFilterSpec(r.URL.Query())

	summary, err := h.metrics.Summarize(ctx, filter)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}

	growth, err := h.metrics.GrowthSnapshot(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}

	topCustomers, err := h.metrics.TopCustomers(ctx, filter, topCustomerRows)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}

	data := dashboardData{
		Revenue:        model.FormatINR(summary.TotalRevenue),
		RevenueGrowth:  fmt.Sprintf("%+.1f%%", growth.RevenueGrowth),
		Customers:      summary.TotalCustomers,
		CustomerGrowth: fmt.Sprintf("%+.1f%%", growth.CustomerGrowth),
		AvgRevenue:     model.FormatINR(summary.AvgRevenuePerCustomer),
		ActiveUsers:    summary.ActiveUsers,
		TopCustomers:   topCustomers,
	}

	charts := []struct {
		kind types.ChartKind
		dst  *template.JS
	}{
		{types.ChartRevenueTrend, &data.RevenueTrend},
		{types.ChartSKUDistribution, &data.SKUChart},
		{types.ChartIndustryCustomers, &data.IndustryChart},
	}
	for _, c := range charts {
		spec, err := h.chart.BuildChart(ctx, c.kind, filter)
		if err != nil {
			apperr.Handle(ctx, err)
			writeError(ctx, w, err, http.StatusInternalServerError)
			return
		}
		raw, err := json.Marshal(spec)
		if err != nil {
			apperr.Handle(ctx, err)
			writeError(ctx, w, err, http.StatusInternalServerError)
			return
		}
		*c.dst = template.JS(raw)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		apperr.Handle(ctx, err)
	}
}
