package app

import (
	"fmt"
	"strings"

	"menuvroom/internal/eventbus"
)

// Report tallies what happened while the catalog was built or loaded
type Report struct {
	ScannedDirs     int
	SkippedDirs     int
	SkippedEntries  int
	RejectedRecords int
	LaunchFailures  int
	Rebuilt         bool
}

// NewReport creates a report fed by bus
func NewReport(bus eventbus.EventBus) *Report {
	r := &Report{}
	bus.Subscribe(eventbus.EventDirectoryScanned, func(eventbus.DomainEvent) { r.ScannedDirs++ })
	bus.Subscribe(eventbus.EventDirectorySkipped, func(eventbus.DomainEvent) { r.SkippedDirs++ })
	bus.Subscribe(eventbus.EventEntrySkipped, func(eventbus.DomainEvent) { r.SkippedEntries++ })
	bus.Subscribe(eventbus.EventRecordRejected, func(eventbus.DomainEvent) { r.RejectedRecords++ })
	bus.Subscribe(eventbus.EventLaunchFailed, func(eventbus.DomainEvent) { r.LaunchFailures++ })
	bus.Subscribe(eventbus.EventCacheRebuilt, func(eventbus.DomainEvent) { r.Rebuilt = true })
	return r
}

// Summary renders a one-line status
func (r *Report) Summary(entries int) string {
	parts := []string{fmt.Sprintf("%d entries", entries)}
	if r.Rebuilt {
		parts = append(parts, fmt.Sprintf("rebuilt from %d dirs", r.ScannedDirs))
	} else {
		parts = append(parts, "cached")
	}
	if r.SkippedDirs > 0 {
		parts = append(parts, fmt.Sprintf("%d dirs unreadable", r.SkippedDirs))
	}
	if r.SkippedEntries > 0 {
		parts = append(parts, fmt.Sprintf("%d entries skipped", r.SkippedEntries))
	}
	if r.RejectedRecords > 0 {
		parts = append(parts, fmt.Sprintf("%d cache records rejected", r.RejectedRecords))
	}
	return strings.Join(parts, " · ")
}
