package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryScanned EventType = "DirectoryScanned"
	EventDirectorySkipped EventType = "DirectorySkipped"
	EventEntrySkipped     EventType = "EntrySkipped"
	EventCacheLoaded      EventType = "CacheLoaded"
	EventCacheRebuilt     EventType = "CacheRebuilt"
	EventRecordRejected   EventType = "RecordRejected"
	EventLaunchFailed     EventType = "LaunchFailed"
	EventSessionEnded     EventType = "SessionEnded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryScannedEvent is emitted after a directory has been listed
type DirectoryScannedEvent struct {
	Dir     string
	Entries int // executables contributed by the directory
}

func (e DirectoryScannedEvent) Type() EventType { return EventDirectoryScanned }

// DirectorySkippedEvent is emitted when a directory cannot be read
type DirectorySkippedEvent struct {
	Dir string
	Err error
}

func (e DirectorySkippedEvent) Type() EventType { return EventDirectorySkipped }

// EntrySkippedEvent is emitted when a single directory entry is ignored
type EntrySkippedEvent struct {
	Path   string
	Reason string
}

func (e EntrySkippedEvent) Type() EventType { return EventEntrySkipped }

// CacheLoadedEvent is emitted when the catalog came from the cache file
type CacheLoadedEvent struct {
	Path     string
	Entries  int
	Rejected int
}

func (e CacheLoadedEvent) Type() EventType { return EventCacheLoaded }

// CacheRebuiltEvent is emitted after a rescan has been written to disk
type CacheRebuiltEvent struct {
	Path    string
	Entries int
}

func (e CacheRebuiltEvent) Type() EventType { return EventCacheRebuilt }

// RecordRejectedEvent is emitted for each corrupt cache line
type RecordRejectedEvent struct {
	Line   int
	Record string
	Err    error
}

func (e RecordRejectedEvent) Type() EventType { return EventRecordRejected }

// LaunchFailedEvent is emitted when the committed command could not be spawned
type LaunchFailedEvent struct {
	Command string
	Err     error
}

func (e LaunchFailedEvent) Type() EventType { return EventLaunchFailed }

// SessionEndedEvent is emitted once the interactive session terminates
type SessionEndedEvent struct {
	Committed bool
	Command   string
}

func (e SessionEndedEvent) Type() EventType { return EventSessionEnded }
