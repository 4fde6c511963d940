package backend

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusOK          = "ok"
	statusError       = "error"
	statusUnavailable = "unavailable"
)

var (
	imageListTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "school_images_list_total",
			Help: "Count of school image list requests by outcome",
		},
		[]string{"status"},
	)

	imageCreateTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "school_images_create_total",
			Help: "Count of school image create requests by outcome",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(imageListTotal)
	prometheus.MustRegister(imageCreateTotal)
}
