package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	tags := NewTagStore(newTestDB(t))

	require.NoError(t, tags.Seed([]string{"nature", "animal"}))
	first, err := tags.ListAll()
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Reseeding with overlap adds only the new name and keeps existing ids
	require.NoError(t, tags.Seed([]string{"nature", "animal", "city"}))
	second, err := tags.ListAll()
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, []string{"nature", "animal", "city"}, []string{second[0].Name, second[1].Name, second[2].Name})
}

func TestFindByName(t *testing.T) {
	tags := NewTagStore(newTestDB(t))
	require.NoError(t, tags.Seed([]string{"nature"}))

	tag, err := tags.FindByName("nature")
	require.NoError(t, err)
	assert.Equal(t, "nature", tag.Name)

	_, err = tags.FindByName("doesnotexist")
	assert.ErrorIs(t, err, ErrTagNotFound)
}
