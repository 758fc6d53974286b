package browser

import "errors"

var (
	// ErrNotFound means a required element did not appear within the wait.
	ErrNotFound = errors.New("element not found")

	// ErrNotInteractable means an element exists but could not be acted on yet.
	ErrNotInteractable = errors.New("element not interactable")

	// ErrReadOnly is returned by documents that cannot be interacted with.
	ErrReadOnly = errors.New("document is read-only")
)
