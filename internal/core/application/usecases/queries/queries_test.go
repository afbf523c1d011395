package queries_test

import (
	"testing"

	"picking/internal/core/application/usecases/queries"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPickingListQuery(t *testing.T) {
	t.Run("should create query with valid list id", func(t *testing.T) {
		listID := kernel.NewUUID()

		query, err := queries.NewGetPickingListQuery(listID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.ListID().IsEqual(listID))
	})

	t.Run("should reject not constructed query", func(t *testing.T) {
		query := queries.GetPickingListQuery{}

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetPickingListQueryIsNotConstructed)
	})
}

func TestNewGetListsByStatusQuery(t *testing.T) {
	t.Run("should create query without status filter", func(t *testing.T) {
		query, err := queries.NewGetListsByStatusQuery("WH-1", "")

		require.NoError(t, err)
		_, hasStatus := query.Status()
		assert.False(t, hasStatus)
	})

	t.Run("should create query with status filter", func(t *testing.T) {
		query, err := queries.NewGetListsByStatusQuery("WH-1", "in_progress")

		require.NoError(t, err)
		status, hasStatus := query.Status()
		assert.True(t, hasStatus)
		assert.Equal(t, pickinglist.InProgress, status)
	})

	t.Run("should reject empty warehouse", func(t *testing.T) {
		_, err := queries.NewGetListsByStatusQuery("", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown status name", func(t *testing.T) {
		_, err := queries.NewGetListsByStatusQuery("WH-1", "archived")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetProgressQuery(t *testing.T) {
	listID := kernel.NewUUID()

	query, err := queries.NewGetProgressQuery(listID)

	require.NoError(t, err)
	assert.True(t, query.ListID().IsEqual(listID))
}

func TestNewGetNextItemQuery(t *testing.T) {
	listID := kernel.NewUUID()

	query, err := queries.NewGetNextItemQuery(listID)

	require.NoError(t, err)
	assert.True(t, query.ListID().IsEqual(listID))
}
