package driver

import (
	"errors"
	"fmt"
	"time"
)

// ErrSessionActive is returned by New when another session already holds the
// singleton slot. Close the existing session first.
var ErrSessionActive = errors.New("a session is already active; close it before creating another")

// ErrElementPermanentlyNotFound is returned when every resolution tier has
// been exhausted: live lookup, refresh, locator re-resolution and the
// original-id retry all failed.
var ErrElementPermanentlyNotFound = errors.New("element permanently not found")

// ElementNotFoundError reports which link of a locator chain failed to match
// any live node.
type ElementNotFoundError struct {
	Locator string
	Link    string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element not found: no match for %q in %q", e.Link, e.Locator)
}

// AmbiguousMatchError reports that multiple live nodes satisfied the locator
// and none survived clickable-point disambiguation.
type AmbiguousMatchError struct {
	Locator    string
	Candidates int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match: %d candidates for %q, none validated", e.Candidates, e.Locator)
}

// StaleElementError reports a live-lookup miss while auto-refresh is
// disabled. The caller must refresh the session and re-find the element.
type StaleElementError struct {
	Name    string
	Locator string
}

func (e *StaleElementError) Error() string {
	return fmt.Sprintf("stale element %q (%s): refresh the session and look the element up again", e.Name, e.Locator)
}

// RefreshTimeoutError reports that a background tree rebuild exceeded its
// bound. The build keeps running and is discarded when it completes.
type RefreshTimeoutError struct {
	Timeout time.Duration
}

func (e *RefreshTimeoutError) Error() string {
	return fmt.Sprintf("tree rebuild did not complete within %s", e.Timeout)
}
