package services

import (
	"testing"

	"restaurant-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurant(t *testing.T) {
	restaurants, _ := newServices(t)

	resp, err := restaurants.Create("Cafe X", "Main St")
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Cafe X", resp.Name)
	assert.Equal(t, "Main St", resp.Location)
	assert.True(t, resp.IsOpen)

	got, err := restaurants.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestCreateRestaurantDuplicateName(t *testing.T) {
	restaurants, _ := newServices(t)

	_, err := restaurants.Create("Joe's", "")
	require.NoError(t, err)

	_, err = restaurants.Create("Joe's", "Other St")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeDuplicate, ae.Code)

	// the failed attempt must not leave a row behind
	var count int64
	require.NoError(t, restaurants.Repo.DB.Table("restaurants").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetRestaurantNotFound(t *testing.T) {
	restaurants, _ := newServices(t)

	_, err := restaurants.GetByID(99)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
}

func TestUpdateOpenStatus(t *testing.T) {
	restaurants, _ := newServices(t)

	created, err := restaurants.Create("Joe's", "")
	require.NoError(t, err)

	closed, err := restaurants.UpdateOpenStatus(created.ID, false)
	require.NoError(t, err)
	assert.False(t, closed.IsOpen)

	// closed -> open is always legal too
	reopened, err := restaurants.UpdateOpenStatus(created.ID, true)
	require.NoError(t, err)
	assert.True(t, reopened.IsOpen)
}

func TestUpdateOpenStatusNotFound(t *testing.T) {
	restaurants, _ := newServices(t)

	_, err := restaurants.UpdateOpenStatus(42, false)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
}
