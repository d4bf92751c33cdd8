package assemblyai

// Status is the lifecycle state of a remote transcription job.
type Status int

const (
	StatusUnknown Status = iota
	StatusQueued
	StatusProcessing
	StatusCompleted
	StatusError
)

// ParseStatus maps the wire value to a Status. Unrecognized values map to StatusUnknown.
func ParseStatus(s string) Status {
	switch s {
	case "queued":
		return StatusQueued
	case "processing":
		return StatusProcessing
	case "completed":
		return StatusCompleted
	case "error":
		return StatusError
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether polling stops at this status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}
