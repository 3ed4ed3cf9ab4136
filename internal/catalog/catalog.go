// Package catalog holds the static reference data the diagnosis pipeline
// consumes: the misconception taxonomy, per-topic follow-up questions, and
// the heuristic-eligible topic table. All records are immutable and loaded
// once at init.
package catalog

// Misconception defines a known misconception pattern.
type Misconception struct {
	ID                  string
	Topic               string
	Name                string
	Description         string
	EvidencePatterns    []string
	RemediationTemplate string
}

// FollowUpQuestion is a static practice question served when the model
// cannot produce one.
type FollowUpQuestion struct {
	Prompt        string
	CorrectAnswer string
	Rationale     string
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

// byTopic indexes misconceptions by topic.
var byTopic map[string][]*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	byTopic = make(map[string][]*Misconception)
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
		byTopic[m.Topic] = append(byTopic[m.Topic], m)
	}
}

// Get returns a misconception by ID, or nil if not found.
func Get(id string) *Misconception {
	return registry[id]
}

// ByTopic returns all misconceptions for a given topic.
func ByTopic(topic string) []*Misconception {
	return byTopic[topic]
}

// All returns every misconception in the taxonomy.
func All() []*Misconception {
	result := make([]*Misconception, 0, len(registry))
	for _, m := range registry {
		result = append(result, m)
	}
	return result
}

// heuristicTopics maps heuristic-eligible topics to the misconception ID
// their structural check detects.
var heuristicTopics = map[string]string{
	"fractions": "frac-invert",
}

// HeuristicMisconceptionID returns the misconception ID detected by the
// structural heuristic for the given topic, if the topic is eligible.
func HeuristicMisconceptionID(topic string) (string, bool) {
	id, ok := heuristicTopics[topic]
	return id, ok
}
