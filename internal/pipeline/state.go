package pipeline

// State identifies the phase a compliance check run is in. Runs advance
// strictly forward; Failed is terminal and records the phase that failed
// via the returned error.
type State string

// Compliance check run states.
const (
	StateIdle       State = "idle"
	StateUploading  State = "uploading"
	StateExtracting State = "extracting"
	StateAnalyzing  State = "analyzing"
	StatePersisting State = "persisting"
	StateComplete   State = "complete"
	StateFailed     State = "failed"
)
