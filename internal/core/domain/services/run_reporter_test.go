package services_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successOutcome(t *testing.T, id string) batch.Outcome {
	t.Helper()

	o, err := order.New([]string{"SALES_ORDER_"}, map[string]string{"SALES_ORDER_": id})
	require.NoError(t, err)
	return batch.Succeed(o, batch.Success{OrderID: id, LabelPath: id + ".pdf", TrackingNumber: "T" + id})
}

func failureOutcome(t *testing.T, id string, reason string) batch.Outcome {
	t.Helper()

	o, err := order.New([]string{"SALES_ORDER_"}, map[string]string{"SALES_ORDER_": id})
	require.NoError(t, err)
	return batch.Fail(o, errors.New(reason))
}

func TestRunReporter_Report(t *testing.T) {
	reporter := services.NewRunReporter()

	t.Run("uses singular noun for one shipment", func(t *testing.T) {
		b := batch.New()
		b.Collect([]batch.Outcome{successOutcome(t, "1")})

		lines := reporter.Report(b)

		require.Len(t, lines, 1)
		assert.Equal(t, "1 shipment purchased successfully.", lines[0])
	})

	t.Run("uses plural noun otherwise", func(t *testing.T) {
		b := batch.New()
		b.Collect([]batch.Outcome{successOutcome(t, "1"), successOutcome(t, "2")})

		lines := reporter.Report(b)

		require.Len(t, lines, 1)
		assert.Equal(t, "2 shipments purchased successfully.", lines[0])
	})

	t.Run("reports zero shipments without failure detail", func(t *testing.T) {
		lines := reporter.Report(batch.New())

		require.Len(t, lines, 1)
		assert.Equal(t, "0 shipments purchased successfully.", lines[0])
	})

	t.Run("appends one JSON detail line per failed order", func(t *testing.T) {
		b := batch.New()
		b.Collect([]batch.Outcome{
			successOutcome(t, "1"),
			failureOutcome(t, "123987", "Sales Order 123987: Missing CONTACT_NAME"),
			failureOutcome(t, "222", "Address not found: nowhere"),
		})

		lines := reporter.Report(b)

		require.Len(t, lines, 4)
		assert.Equal(t, "1 shipment purchased successfully.", lines[0])
		assert.Equal(t, "The following 2 orders encountered errors and could not be purchased:", lines[1])
		assert.JSONEq(t,
			`{"order_number":"123987","errors":"Sales Order 123987: Missing CONTACT_NAME"}`,
			lines[2])
		assert.JSONEq(t,
			`{"order_number":"222","errors":"Address not found: nowhere"}`,
			lines[3])
	})

	t.Run("uses singular noun for one failed order", func(t *testing.T) {
		b := batch.New()
		b.Collect([]batch.Outcome{failureOutcome(t, "9", "boom")})

		lines := reporter.Report(b)

		require.Len(t, lines, 3)
		assert.Equal(t, "0 shipments purchased successfully.", lines[0])
		assert.Equal(t, "The following 1 order encountered errors and could not be purchased:", lines[1])
	})
}
