package sse

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	StarKey   string      `json:"star_key,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Filter selects which events a client receives. Empty fields match all.
type Filter struct {
	Types   []string
	StarKey string
}

func (f Filter) matches(e Event) bool {
	if f.StarKey != "" && e.StarKey != f.StarKey {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == e.Type {
			return true
		}
	}
	return false
}
