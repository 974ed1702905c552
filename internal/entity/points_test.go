package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolutionPoints(t *testing.T) {
	cases := []struct {
		name     string
		category string
		priority WorkItemPriority
		expected int
	}{
		{"pothole high rounds up", "pothole", PriorityHigh, 23},
		{"pothole low", "pothole", PriorityLow, 15},
		{"garbage medium", "garbage", PriorityMedium, 14},
		{"water supply critical", "water_supply", PriorityCritical, 24},
		{"street light medium", "street_light", PriorityMedium, 12},
		{"unknown category falls back to default", "graffiti", PriorityLow, 10},
		{"unknown priority uses base", "pothole", WorkItemPriority("Urgent"), 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolutionPoints(tc.category, tc.priority))
		})
	}
}
