package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ats"

// Recorder holds the hiring pipeline counters. A nil *Recorder records nothing.
type Recorder struct {
	applicantsSubmitted *prometheus.CounterVec
	transitions         *prometheus.CounterVec
	notesAppended       *prometheus.CounterVec
	uploadSlots         *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	return &Recorder{
		applicantsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applicants_submitted_total",
			Help:      "Applications accepted by public intake, by source channel.",
		}, []string{"source"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Pipeline status transition attempts, by target stage and result.",
		}, []string{"to", "result"}),
		notesAppended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_appended_total",
			Help:      "Notes appended to applicant ledgers, by author kind.",
		}, []string{"author"}),
		uploadSlots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_slots_issued_total",
			Help:      "Resume upload slots requested, by result.",
		}, []string{"result"}),
	}
}

// Collectors returns every counter for registration.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.applicantsSubmitted, r.transitions, r.notesAppended, r.uploadSlots}
}

func (r *Recorder) ApplicantSubmitted(source string) {
	if r == nil {
		return
	}
	if source == "" {
		source = "unknown"
	}
	r.applicantsSubmitted.WithLabelValues(source).Inc()
}

func (r *Recorder) Transition(to, result string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(to, result).Inc()
}

func (r *Recorder) NoteAppended(author string) {
	if r == nil {
		return
	}
	r.notesAppended.WithLabelValues(author).Inc()
}

func (r *Recorder) UploadSlot(result string) {
	if r == nil {
		return
	}
	r.uploadSlots.WithLabelValues(result).Inc()
}
