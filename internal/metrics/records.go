package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameDeletedRecords  = "deleted_records_total"
	NameWorkspaces      = "workspaces"
	NameWorkspaceResets = "workspace_resets_total"
	LabelKind           = "kind"
	LabelMode           = "mode"
)

var DeletedRecords = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameDeletedRecords,
		Help:      "Records deleted from visitors workspaces",
		Namespace: Namespace,
	},
	[]string{LabelKind, LabelMode},
)

var Workspaces = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameWorkspaces,
		Help:      "Current live workspaces",
		Namespace: Namespace,
	},
)

var WorkspaceResets = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameWorkspaceResets,
		Help:      "Workspaces reset to their seed",
		Namespace: Namespace,
	},
)
