package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetArchivedRunsQuery(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		query := queries.NewGetArchivedRunsQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetArchivedRunsQuery
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetArchivedRunsQueryIsNotConstructed)
	})
}
