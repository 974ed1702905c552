package entity

import "math"

// Base award per report category. Categories outside the table fall back to
// the default so a new category never blocks resolution.
var categoryBasePoints = map[string]int{
	"pothole":      15,
	"road_damage":  15,
	"sewage":       14,
	"water_supply": 12,
	"garbage":      12,
	"street_light": 10,
}

const defaultBasePoints = 10

var priorityMultiplier = map[WorkItemPriority]float64{
	PriorityLow:      1.0,
	PriorityMedium:   1.2,
	PriorityHigh:     1.5,
	PriorityCritical: 2.0,
}

// ResolutionPoints computes the award credited to a reporter when their
// report reaches Resolved: round(base(category) * multiplier(priority)).
func ResolutionPoints(category string, priority WorkItemPriority) int {
	base, ok := categoryBasePoints[category]
	if !ok {
		base = defaultBasePoints
	}
	mult, ok := priorityMultiplier[priority]
	if !ok {
		mult = 1.0
	}
	return int(math.Round(float64(base) * mult))
}
