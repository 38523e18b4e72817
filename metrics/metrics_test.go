// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/33cn/dice/types"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusHandler(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("dice.commit", r).Inc(3)
	go_metrics.GetOrRegisterGauge("dice.pool", r).Update(400000)

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "dice_commit 3")
	assert.Contains(t, string(body), "dice_pool 400000")
}

func TestServeMuxCors(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("dice.sweep", r).Inc(1)

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	rec := httptest.NewRecorder()
	NewServeMux(r).ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), "dice_sweep 1")

	rec = httptest.NewRecorder()
	NewServeMux(r).ServeHTTP(rec, httptest.NewRequest("GET", "/other", nil))
	assert.Equal(t, 404, rec.Code)
}

func TestCounterAndWriteOnce(t *testing.T) {
	c := Counter("test.metrics.counter")
	c.Inc(2)
	assert.Equal(t, int64(2), Counter("test.metrics.counter").Count())

	var buf bytes.Buffer
	WriteOnce(&buf)
	assert.Contains(t, buf.String(), "test.metrics.counter")
}

func TestStartMetricsDisabled(t *testing.T) {
	StartMetrics(nil)
	StartMetrics(&types.Metrics{EnableMetrics: false})
	StartMetrics(&types.Metrics{EnableMetrics: true, DataEmitMode: "unknown"})
}
