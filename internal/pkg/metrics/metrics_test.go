package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronJobMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCronJobMetrics(reg)
	m.ObserveDuration("daily_drafts", 250*time.Millisecond)
	m.IncSuccess("daily_drafts")
	m.IncFailure("daily_drafts")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	assert.InDelta(t, 1, counterValue(t, mfs, "orderdesk_job_success_total", "job", "daily_drafts"), 0)
	assert.InDelta(t, 1, counterValue(t, mfs, "orderdesk_job_failure_total", "job", "daily_drafts"), 0)
	assert.Greater(t, histogramSum(t, mfs, "orderdesk_job_duration_seconds", "job", "daily_drafts"), 0.0)
}

func TestOrderMetricsCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetrics(reg)
	m.IncNumberIssued("ORD")
	m.IncNumberIssued("ORD")
	m.IncOrderCreated("pending")
	m.IncTransition("paid")
	m.AddDraftsGenerated(3)
	m.AddDraftsGenerated(0)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	assert.InDelta(t, 2, counterValue(t, mfs, "orderdesk_order_numbers_issued_total", "prefix", "ORD"), 0)
	assert.InDelta(t, 1, counterValue(t, mfs, "orderdesk_orders_created_total", "status", "pending"), 0)
	assert.InDelta(t, 1, counterValue(t, mfs, "orderdesk_order_status_transitions_total", "status", "paid"), 0)
	assert.InDelta(t, 3, counterValue(t, mfs, "orderdesk_draft_orders_generated_total", "", ""), 0)
}

func TestNilRecordersAreNoOps(t *testing.T) {
	var orders *OrderMetrics
	var jobs *CronJobMetrics

	assert.NotPanics(t, func() {
		orders.IncTransition("paid")
		orders.AddDraftsGenerated(1)
		jobs.IncSuccess("x")
		jobs.ObserveDuration("x", time.Second)
		NewOrderMetrics(nil).IncOrderCreated("confirmed")
	})
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) float64 {
	t.Helper()
	metric := findMetric(t, mfs, name, label, value)
	require.NotNil(t, metric.GetCounter(), "metric %s is not a counter", name)
	return metric.GetCounter().GetValue()
}

func histogramSum(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) float64 {
	t.Helper()
	metric := findMetric(t, mfs, name, label, value)
	require.NotNil(t, metric.GetHistogram(), "metric %s is not a histogram", name)
	return metric.GetHistogram().GetSampleSum()
}

func findMetric(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) *dto.Metric {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if label == "" {
				return metric
			}
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return metric
				}
			}
		}
	}
	require.FailNow(t, fmt.Sprintf("metric %s{%s=%q} not found", name, label, value))
	return nil
}
