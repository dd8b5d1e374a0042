package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	builderEditsTotal    atomic.Uint64
	remoteRequestsTotal  atomic.Uint64
	remoteFailuresTotal  atomic.Uint64
	remoteFallbacksTotal atomic.Uint64
	uploadsAcceptedTotal atomic.Uint64
	uploadsRejectedTotal atomic.Uint64
	atsAnalysesTotal     atomic.Uint64
	activeSessions       atomic.Int64

	remoteDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000})
)

// IncBuilderEdit counts a document mutation.
func IncBuilderEdit() {
	builderEditsTotal.Add(1)
}

// IncRemoteRequest counts a call to the remote API.
func IncRemoteRequest() {
	remoteRequestsTotal.Add(1)
}

// IncRemoteFailure counts a remote call that failed or returned a non-success status.
func IncRemoteFailure() {
	remoteFailuresTotal.Add(1)
}

// IncRemoteFallback counts a failed remote call answered with built-in data.
func IncRemoteFallback() {
	remoteFallbacksTotal.Add(1)
}

// IncUploadAccepted counts an ATS upload that passed validation.
func IncUploadAccepted() {
	uploadsAcceptedTotal.Add(1)
}

// IncUploadRejected counts an ATS upload refused for type or size.
func IncUploadRejected() {
	uploadsRejectedTotal.Add(1)
}

// IncATSAnalysis counts a completed ATS analysis.
func IncATSAnalysis() {
	atsAnalysesTotal.Add(1)
}

// SetActiveSessions records the number of live builder sessions.
func SetActiveSessions(n int) {
	activeSessions.Store(int64(n))
}

// ObserveRemoteDurationMs records a remote call duration in milliseconds.
func ObserveRemoteDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	remoteDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "builder_edits_total", "Total resume document edits", builderEditsTotal.Load())
	writeCounter(&buf, "remote_requests_total", "Total remote API requests", remoteRequestsTotal.Load())
	writeCounter(&buf, "remote_failures_total", "Total failed remote API requests", remoteFailuresTotal.Load())
	writeCounter(&buf, "remote_fallbacks_total", "Total responses served from built-in fallback data", remoteFallbacksTotal.Load())
	writeCounter(&buf, "ats_uploads_accepted_total", "Total ATS uploads accepted", uploadsAcceptedTotal.Load())
	writeCounter(&buf, "ats_uploads_rejected_total", "Total ATS uploads rejected", uploadsRejectedTotal.Load())
	writeCounter(&buf, "ats_analyses_total", "Total ATS analyses completed", atsAnalysesTotal.Load())
	writeGauge(&buf, "builder_sessions_active", "Live builder sessions", activeSessions.Load())
	writeHistogram(&buf, "remote_request_duration_ms", "Remote API request duration in milliseconds", remoteDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeGauge(buf *bytes.Buffer, name, help string, value int64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s gauge\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Since returns the milliseconds elapsed since start.
func Since(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
