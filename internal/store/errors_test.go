package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/internal/store"
)

func TestParseID(t *testing.T) {
	// A freshly minted ObjectID round-trips through its hex form.
	oid := primitive.NewObjectID()
	parsed, err := store.ParseID(oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, oid, parsed)
	assert.Equal(t, oid.Hex(), parsed.Hex())
}

func TestParseIDInvalid(t *testing.T) {
	cases := []string{
		"",
		"not-an-id",
		"123",
		"zzzzzzzzzzzzzzzzzzzzzzzz",   // right length, not hex
		"68a1b2c3d4e5f6a7b8c9d0e1f2", // too long
		"68a1b2c3d4e5f6a7b8c9d0",     // too short
	}
	for _, id := range cases {
		_, err := store.ParseID(id)
		assert.ErrorIs(t, err, store.ErrInvalidID, "id %q", id)
	}
}
