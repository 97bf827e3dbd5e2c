package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalRecordsRequests     = "total_records_requests"
	NameTotalPanelOriginRequests = "total_panel_origin_requests"
	NameTotalReportDownloads     = "total_report_downloads"
	NameRateLimitedRequests      = "rate_limited_requests_total"
)

var TotalRecordsRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalRecordsRequests,
		Help:      "Total records listing requests",
		Namespace: Namespace,
	},
	[]string{LabelKind},
)

var TotalPanelOriginRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalPanelOriginRequests,
		Help:      "Total notification panel origin computations",
		Namespace: Namespace,
	},
)

var TotalReportDownloads = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalReportDownloads,
		Help:      "Total XLSX report downloads",
		Namespace: Namespace,
	},
	[]string{LabelKind},
)

var RateLimitedRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameRateLimitedRequests,
		Help:      "Requests rejected by the rate limiter",
		Namespace: Namespace,
	},
)
