package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSequence(t *testing.T) {
	assert.Equal(t, "001", NextSequence(nil))
	assert.Equal(t, "003", NextSequence([]string{"TRIP42_001", "TRIP42_002"}))
	// Gaps are not reused.
	assert.Equal(t, "008", NextSequence([]string{"TRIP42_002", "TRIP42_007"}))
}

func TestNextSequenceStripsExtraSuffixes(t *testing.T) {
	// Extras should already be filtered out, but a stray suffix must not
	// break the allocation.
	assert.Equal(t, "004", NextSequence([]string{"TRIP42_001", "TRIP42_003a"}))
}

func TestNextSequenceIgnoresJunk(t *testing.T) {
	assert.Equal(t, "001", NextSequence([]string{"TRIP42_abc", "TRIP42_000", "TRIP42_-05", ""}))
	assert.Equal(t, "002", NextSequence([]string{"TRIP42_junk", "TRIP42_001"}))
}

func TestIsMainID(t *testing.T) {
	assert.True(t, IsMainID("TRIP42_001"))
	assert.False(t, IsMainID("TRIP42_001a"))
	assert.False(t, IsMainID("TRIP42_001z"))
	assert.False(t, IsMainID(""))
	// Uppercase tails are not extra suffixes.
	assert.True(t, IsMainID("TRIP42_001A"))
}

func TestComposeID(t *testing.T) {
	assert.Equal(t, "TRIP42_003", ComposeID("TRIP42", "003"))
}

func TestExtraID(t *testing.T) {
	first, err := ExtraID("TRIP42_001", 0)
	require.NoError(t, err)
	assert.Equal(t, "TRIP42_001a", first)

	last, err := ExtraID("TRIP42_001", 25)
	require.NoError(t, err)
	assert.Equal(t, "TRIP42_001z", last)

	_, err = ExtraID("TRIP42_001", 26)
	assert.ErrorIs(t, err, ErrTooManyExtras)
}

func TestSequenceOf(t *testing.T) {
	assert.Equal(t, "017", SequenceOf("TRIP42_017"))
	assert.Equal(t, "017", SequenceOf("TRIP_42_017"))
}
