package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "linkbio_exports_total",
	Help: "Total number of export requests by kind and outcome.",
}, []string{"kind", "outcome"})
