// Package metrics exposes Prometheus instruments for transcription jobs and
// summaries.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transcription outcomes.
const (
	OutcomeCompleted       = "completed"
	OutcomeUploadError     = "upload_error"
	OutcomeSubmissionError = "submission_error"
	OutcomeFailed          = "failed"
	OutcomeTimeout         = "timeout"
	OutcomeTransportError  = "transport_error"
	OutcomeAborted         = "aborted"
)

// Recorder receives pipeline events.
type Recorder interface {
	TranscriptionFinished(outcome string, elapsed time.Duration)
	PollAttempts(n int)
	SummaryProduced(source string)
}

type promRecorder struct {
	transcriptions *prometheus.CounterVec
	duration       prometheus.Histogram
	polls          prometheus.Histogram
	summaries      *prometheus.CounterVec
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) Recorder {
	r := &promRecorder{
		transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voice_notes",
			Name:      "transcriptions_total",
			Help:      "Transcription jobs by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voice_notes",
			Name:      "transcription_duration_seconds",
			Help:      "Wall time from upload to terminal job state.",
			Buckets:   []float64{5, 15, 30, 60, 120, 180, 300},
		}),
		polls: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voice_notes",
			Name:      "poll_attempts",
			Help:      "Status polls needed per job.",
			Buckets:   prometheus.LinearBuckets(1, 5, 12),
		}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voice_notes",
			Name:      "summaries_total",
			Help:      "Summaries produced by source.",
		}, []string{"source"}),
	}
	reg.MustRegister(r.transcriptions, r.duration, r.polls, r.summaries)
	return r
}

func (r *promRecorder) TranscriptionFinished(outcome string, elapsed time.Duration) {
	r.transcriptions.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
}

func (r *promRecorder) PollAttempts(n int) {
	r.polls.Observe(float64(n))
}

func (r *promRecorder) SummaryProduced(source string) {
	r.summaries.WithLabelValues(source).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

// Nop returns a Recorder that drops everything.
func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) TranscriptionFinished(string, time.Duration) {}
func (nopRecorder) PollAttempts(int)                            {}
func (nopRecorder) SummaryProduced(string)                      {}
