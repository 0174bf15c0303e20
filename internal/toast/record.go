package toast

import "time"

// Variant selects the visual treatment of a toast. The queue never
// interprets it.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// Variants lists every supported variant in display order.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantSuccess, VariantError, VariantWarning, VariantInfo}
}

// ParseVariant maps a variant name to a Variant. Unknown names report false.
func ParseVariant(name string) (Variant, bool) {
	for _, v := range Variants() {
		if string(v) == name {
			return v, true
		}
	}
	return VariantDefault, false
}

// Action describes an optional button rendered alongside a toast.
type Action struct {
	Label string
	ID    string
}

// IsZero reports whether no action was supplied.
func (a Action) IsZero() bool {
	return a.Label == "" && a.ID == ""
}

// Record is an immutable queued toast.
type Record struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	Icon        string
	Action      Action
	// Duration is the time-to-live. Zero or negative persists until dismissed.
	Duration  time.Duration
	CreatedAt time.Time
}

// Persistent reports whether the record stays queued until dismissed.
func (r Record) Persistent() bool {
	return r.Duration <= 0
}

// Options describes a toast to enqueue.
type Options struct {
	// ID is optional; the queue generates one when empty.
	ID          string
	Title       string
	Description string
	Variant     Variant
	Icon        string
	Action      Action
	// Duration overrides the queue default when non-nil. Use Duration or
	// Persistent to build the pointer.
	Duration *time.Duration
}

// Duration returns a pointer suitable for Options.Duration.
func Duration(d time.Duration) *time.Duration {
	return &d
}

// Persistent returns an Options.Duration that keeps the toast until dismissed.
func Persistent() *time.Duration {
	return Duration(0)
}
