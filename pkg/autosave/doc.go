// Package autosave defers persistence of a changing value behind a
// cancelable debounce timer.
//
// Editors produce a burst of snapshots while the user types or drags
// blocks around; saving each one would hammer storage. A Debouncer keeps
// only the latest scheduled value and fires the save function once the
// configured delay passes without a newer schedule. Scheduling again before
// the timer fires cancels and re-arms it.
//
// # Usage
//
//	saver := autosave.New(2*time.Second, func(ctx context.Context, doc document.Document) error {
//	    return store.Save(ctx, doc)
//	})
//	defer saver.Stop()
//
//	saver.Schedule(doc)   // called on every edit
//	saver.Flush(ctx)      // e.g. before navigating away
//
// Save failures are logged, not returned: by the time the timer fires the
// caller that scheduled the value is long gone. Use Flush when the caller
// needs the error.
package autosave
