package core

const (
	StateStopped = "stopped"
	StateRunning = "running"

	DefaultTagKey = "Client"
)

// InstanceFilter selects instances whose tag TagKey equals ClientName and whose
// power state equals State. Both conditions must hold.
type InstanceFilter struct {
	TagKey     string
	ClientName string
	State      string
}

// NewInstanceFilter builds the filter for a client and target state, using the Client tag when tagKey is empty
func NewInstanceFilter(tagKey, clientName, state string) InstanceFilter {
	if tagKey == "" {
		tagKey = DefaultTagKey
	}
	return InstanceFilter{
		TagKey:     tagKey,
		ClientName: clientName,
		State:      state,
	}
}

// TagFilterName returns the provider filter key for the client tag, e.g. tag:Client
func (f InstanceFilter) TagFilterName() string {
	return "tag:" + f.TagKey
}

// Matches reports whether an instance with the given tags and state passes the filter
func (f InstanceFilter) Matches(tags map[string]string, state string) bool {
	value, ok := tags[f.TagKey]
	return ok && value == f.ClientName && state == f.State
}
