package domain

// Pipeline names one of the queue-driven background pipelines.
type Pipeline string

const (
	PipelineDiscovery   Pipeline = "discovery"
	PipelineContactSync Pipeline = "contact_sync"
)

// Queue is the durable work state of one pipeline run. Its existence is the
// "run in progress" flag; TotalCount is frozen at enqueue time so progress
// stays exact while Items only ever shrinks.
type Queue struct {
	Pipeline   Pipeline `json:"pipeline"`
	Items      []City   `json:"items"`
	TotalCount int      `json:"total_count"`
}

// Progress returns the completed fraction in [0, 1].
func (q *Queue) Progress() float64 {
	if q == nil || q.TotalCount == 0 {
		return 0
	}
	return float64(q.TotalCount-len(q.Items)) / float64(q.TotalCount)
}
