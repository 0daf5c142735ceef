package core

import "testing"

// TestNewInstanceFilter_DefaultTagKey verifies the Client tag is used when no key is configured
func TestNewInstanceFilter_DefaultTagKey(t *testing.T) {
	f := NewInstanceFilter("", "acme", StateStopped)

	if f.TagKey != "Client" {
		t.Errorf("Expected tag key Client, got %q", f.TagKey)
	}
	if f.TagFilterName() != "tag:Client" {
		t.Errorf("Expected tag:Client, got %q", f.TagFilterName())
	}
}

// TestInstanceFilter_Matches verifies both the tag and the state condition must hold
func TestInstanceFilter_Matches(t *testing.T) {
	f := NewInstanceFilter("Client", "acme", StateRunning)

	tests := []struct {
		name  string
		tags  map[string]string
		state string
		want  bool
	}{
		{"tag and state match", map[string]string{"Client": "acme"}, "running", true},
		{"wrong state", map[string]string{"Client": "acme"}, "stopped", false},
		{"wrong client", map[string]string{"Client": "other"}, "running", false},
		{"tag missing", map[string]string{"Name": "acme"}, "running", false},
		{"no tags", nil, "running", false},
		{"tag value differs by case", map[string]string{"Client": "ACME"}, "running", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(tt.tags, tt.state); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestInstanceFilter_EmptyClientName verifies an empty client only matches an explicitly empty tag value
func TestInstanceFilter_EmptyClientName(t *testing.T) {
	f := NewInstanceFilter("Client", "", StateStopped)

	if f.Matches(map[string]string{"Client": "acme"}, "stopped") {
		t.Error("Expected empty client name not to match a tagged instance")
	}
	if f.Matches(map[string]string{}, "stopped") {
		t.Error("Expected empty client name not to match an untagged instance")
	}
}
