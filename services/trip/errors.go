package trip

import "errors"

var (
	// ErrTooManyExtras is returned when a selection carries more extras than
	// the a-z suffix alphabet can identify.
	ErrTooManyExtras = errors.New("line item supports at most 26 extras")

	// ErrItemNotFound is returned when the referenced main item does not
	// exist for the trip.
	ErrItemNotFound = errors.New("trip item not found")

	// ErrNotMainItem is returned when an operation targets an extra id
	// instead of a main item id.
	ErrNotMainItem = errors.New("id does not identify a main trip item")

	// ErrIncompleteSelection is returned when the selection lacks the branch
	// data needed to compose a line item.
	ErrIncompleteSelection = errors.New("selection is missing its accommodation or tour data")

	// ErrSessionNotFound is returned when an edit session has expired or
	// never existed.
	ErrSessionNotFound = errors.New("edit session not found or expired")
)
