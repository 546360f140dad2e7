package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karzone-backend/internal/domains/catalog/model"
)

func TestStaticCatalog(t *testing.T) {
	repo := NewStaticCarRepository()

	cars := repo.List()
	require.NotEmpty(t, cars)

	for _, car := range cars {
		assert.NotEmpty(t, car.Name)
		assert.True(t, car.PricePerDay.IsPositive(), "car %d has no daily rate", car.ID)
	}
}

func TestStaticCatalogGetByID(t *testing.T) {
	repo := NewStaticCarRepository()

	car, err := repo.GetByID(5)
	require.NoError(t, err)
	assert.Equal(t, 5, car.ID)

	_, err = repo.GetByID(999)
	assert.Equal(t, model.ErrCarNotFound, err)
}

func TestStaticCatalogListReturnsCopy(t *testing.T) {
	repo := NewStaticCarRepository()

	cars := repo.List()
	original := cars[0].Name
	cars[0].Name = "Mutated"

	again := repo.List()
	assert.Equal(t, original, again[0].Name)
}
