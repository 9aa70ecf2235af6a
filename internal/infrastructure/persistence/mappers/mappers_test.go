package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
)

func TestPotluckMapper_ToEntities(t *testing.T) {
	now := time.Now().UTC()
	m := NewPotluckMapper()

	entities, err := m.ToEntities([]*models.PotluckModel{
		{ID: 1, Name: "BBQ", URLSlug: "aaaaaaaa", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Picnic", URLSlug: "bbbbbbbb", CreatedAt: now, UpdatedAt: now},
	})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "bbbbbbbb", entities[1].URLSlug())

	back := m.ToModel(entities[0])
	assert.Equal(t, uint(1), back.ID)
	assert.Equal(t, "BBQ", back.Name)
}

func TestPotluckMapper_RejectsZeroID(t *testing.T) {
	_, err := NewPotluckMapper().ToEntities([]*models.PotluckModel{{ID: 0, URLSlug: "x"}})
	assert.Error(t, err)
}

func TestClaimMapper_PreservesNullSession(t *testing.T) {
	m := NewClaimMapper()

	entity, err := m.ToEntity(&models.ClaimModel{ID: 3, ItemID: 9, AttendeeName: "Alice", ClaimedAt: time.Now()})
	require.NoError(t, err)
	assert.Nil(t, entity.SessionID())
	assert.Nil(t, m.ToModel(entity).SessionID)

	entity, err = m.ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, entity)
}
