package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameWidgetWrites        = "widget_writes_total"
	NameWidgetLoadFallbacks = "widget_load_fallbacks_total"
	LabelKey                = "key"
	LabelReason             = "reason"
)

var WidgetWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameWidgetWrites,
		Help:      "Widget payloads written to the store",
		Namespace: Namespace,
	},
	[]string{LabelKey},
)

var WidgetLoadFallbacks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameWidgetLoadFallbacks,
		Help:      "Widget payloads replaced by their default value on load",
		Namespace: Namespace,
	},
	[]string{LabelKey, LabelReason},
)
