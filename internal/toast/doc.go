// Package toast implements the bounded notification queue behind Wisp toasts.
//
// A Queue keeps at most Max records in arrival order. Records with a positive
// Duration own exactly one expiry timer while queued; every removal path
// (explicit dismissal, expiry, DismissAll, eviction of the oldest record on
// overflow, Close) cancels that timer so no stale expiry fires later.
//
//	q := toast.New(toast.WithMax(3))
//	id := q.Enqueue(toast.Options{Title: "Saved", Variant: toast.VariantSuccess})
//	q.Dismiss(id)
//
// Queue operations never fail. Dismissing an unknown id is a no-op.
package toast
