package domain

import "time"

// MetricKey identifies one of the four index categories in the envelope.
type MetricKey string

const (
	MetricPoverty     MetricKey = "poverty"
	MetricChutzpah    MetricKey = "chutzpah"
	MetricWisdomDecay MetricKey = "wisdomDecay"
	MetricDistraction MetricKey = "distraction"
)

// MetricKeys lists the categories in envelope order.
var MetricKeys = []MetricKey{MetricPoverty, MetricChutzpah, MetricWisdomDecay, MetricDistraction}

// MaxSubScore is the ceiling every category score is clamped to.
const MaxSubScore = 25

// SubScoreResult is the output of one metric evaluator for one run.
// Immutable once produced.
type SubScoreResult struct {
	Score   int            `json:"score"`
	Summary string         `json:"summary"`
	Details map[string]any `json:"details"`
	Quote   string         `json:"quote,omitempty"`
}

// Quote is a single instrument observation: the current market price plus
// the window of historical closes it is scored against.
type Quote struct {
	Symbol  string
	Current float64
	Closes  []float64
}

// CalendarEvent is one row from the holiday calendar feed.
type CalendarEvent struct {
	Category string `json:"category"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	YomTov   bool   `json:"yomtov"`
}

// BlackoutState reports whether scoring is suppressed for the current run.
type BlackoutState struct {
	Suppressed bool
	Reason     string
}

// IndexReport is the response envelope. Produced once per invocation,
// never stored.
type IndexReport struct {
	TotalScore int                          `json:"totalScore"`
	RawScore   int                          `json:"rawScore"`
	MaxScore   int                          `json:"maxScore"`
	Timestamp  time.Time                    `json:"timestamp"`
	NextUpdate time.Time                    `json:"nextUpdate"`
	Metrics    map[MetricKey]SubScoreResult `json:"metrics"`
	Status     string                       `json:"status,omitempty"`
	Error      string                       `json:"error,omitempty"`
}
