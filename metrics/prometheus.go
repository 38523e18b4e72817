// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/rs/cors"
)

// registryCollector 把 go-metrics 的数据转成 prometheus 格式
// Describe 不输出任何描述, 是一个 unchecked collector
type registryCollector struct {
	registry go_metrics.Registry
}

func (c *registryCollector) Describe(ch chan<- *prometheus.Desc) {}

func (c *registryCollector) Collect(ch chan<- prometheus.Metric) {
	c.registry.Each(func(name string, i interface{}) {
		fqName := metricName(name)
		switch m := i.(type) {
		case go_metrics.Counter:
			desc := prometheus.NewDesc(fqName, name, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(m.Count()))
		case go_metrics.Gauge:
			desc := prometheus.NewDesc(fqName, name, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(m.Value()))
		case go_metrics.Meter:
			snap := m.Snapshot()
			desc := prometheus.NewDesc(fqName+"_total", name, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(snap.Count()))
			desc = prometheus.NewDesc(fqName+"_rate1", name+" one-minute rate", nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, snap.Rate1())
		}
	})
}

func metricName(name string) string {
	return strings.NewReplacer(".", "_", "-", "_", " ", "_").Replace(name)
}

// Handler 返回 prometheus 格式的 http handler
func Handler(r go_metrics.Registry) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(&registryCollector{registry: r})
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// NewServeMux 注册 /metrics, 允许跨域访问
func NewServeMux(r go_metrics.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(r))
	return cors.Default().Handler(mux)
}

// ServePrometheus 在 addr 上提供 /metrics
func ServePrometheus(addr string, r go_metrics.Registry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServeMux(r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
