package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors for the store layer. Repositories return these (wrapped)
// and handlers map them to HTTP statuses with errors.Is.
var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID means the identifier is not a syntactically valid store
	// identifier. It is returned before any store round-trip.
	ErrInvalidID = errors.New("invalid document id")
	// ErrUnavailable means no document store is configured or reachable.
	ErrUnavailable = errors.New("document store not available")
)

// ParseID is the single conversion boundary between the API's string
// identifiers and the store's native ObjectID representation. No other code
// converts in either direction: ids leave the store as ObjectID.Hex() and
// come back in through here.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
