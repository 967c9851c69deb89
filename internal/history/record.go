package history

import "time"

// Sources a fetch can settle on.
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Entry is one settled quote fetch.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Quote      string    `json:"quote"`
	Author     string    `json:"author"`
	Color      string    `json:"color"`
	Source     string    `json:"source"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}

// Stats summarises a window of entries.
type Stats struct {
	Total     int           `json:"total"`
	Remote    int           `json:"remote"`
	Fallback  int           `json:"fallback"`
	Latencies []float64     `json:"latencies_ms"`
	Average   time.Duration `json:"average"`
}

// Summarize computes Stats over entries, oldest first for the latency series.
func Summarize(entries []Entry) Stats {
	st := Stats{Total: len(entries)}
	if len(entries) == 0 {
		return st
	}

	var sum int64
	st.Latencies = make([]float64, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		switch e.Source {
		case SourceRemote:
			st.Remote++
		case SourceFallback:
			st.Fallback++
		}
		sum += e.DurationMs
		st.Latencies = append(st.Latencies, float64(e.DurationMs))
	}
	st.Average = time.Duration(sum/int64(len(entries))) * time.Millisecond
	return st
}
