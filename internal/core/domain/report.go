package domain

import "fmt"

// DefaultTopWords is the number of terms reported per topic.
const DefaultTopWords = 5

// Topic is one entry of a TopicReport.
type Topic struct {
	// Index is the zero-based topic index.
	Index int `json:"index"`

	// Label is "Topic {Index+1}".
	Label string `json:"label"`

	// Words are the top terms, highest weight first.
	Words []string `json:"words"`

	// Weights are the topic-word weights of Words.
	Weights []float64 `json:"weights"`

	// DominantDocuments is how many documents have this as their strongest topic.
	DominantDocuments int `json:"dominant_documents"`
}

// TopicLabel returns the display label of topic index i.
func TopicLabel(i int) string {
	return fmt.Sprintf("Topic %d", i+1)
}

// TopicReport is the output of a run: top words per topic plus the
// corpus-average topic distribution.
type TopicReport struct {
	Topics []Topic `json:"topics"`

	// AverageDistribution has one entry per topic and sums to 1.
	AverageDistribution []float64 `json:"average_distribution"`
}

// Labels returns the topic labels in order.
func (r *TopicReport) Labels() []string {
	out := make([]string, len(r.Topics))
	for i, t := range r.Topics {
		out[i] = t.Label
	}
	return out
}

// WordsByLabel maps each topic label to its top words.
func (r *TopicReport) WordsByLabel() map[string][]string {
	out := make(map[string][]string, len(r.Topics))
	for _, t := range r.Topics {
		out[t.Label] = t.Words
	}
	return out
}
