package provider

// ChangedMsg reports that the queue contents changed.
type ChangedMsg struct{}

// EnqueuedMsg carries the id assigned by an Enqueue command.
type EnqueuedMsg struct {
	ID string
}
