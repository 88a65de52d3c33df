package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseEntityIDRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()

	id, err := ParseEntityID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id.Hex())
	assert.Equal(t, oid, id.ObjectID())
}

func TestParseEntityIDCanonicalizesCase(t *testing.T) {
	raw := "507F1F77BCF86CD799439011"

	id, err := ParseEntityID(raw)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(raw), id.Hex())
}

func TestParseEntityIDRejectsMalformedInput(t *testing.T) {
	malformed := []string{
		"",
		"garbage",
		"507f1f77bcf86cd79943901",    // 23 chars
		"507f1f77bcf86cd7994390111",  // 25 chars
		"507f1f77bcf86cd79943901z",   // non-hex
		" 507f1f77bcf86cd799439011",  // leading space
		"507f1f77bcf86cd799439011 ",  // trailing space
		"507f1f77-bcf8-6cd7-99439011",
	}

	for _, raw := range malformed {
		_, err := ParseEntityID(raw)
		assert.ErrorIs(t, err, ErrMalformedEntityID, "input %q", raw)
	}
}
