package order_test

import (
	"testing"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func TestCarrierConstructors(t *testing.T) {
	t.Run("unassigned_carrier_has_no_references", func(t *testing.T) {
		c := order.UnassignedCarrier()

		assert.Equal(t, order.CarrierUnassigned, c.Kind())
		assert.True(t, c.TripID().IsZero())
		assert.True(t, c.DriverID().IsZero())
	})

	t.Run("in_transit_carrier_holds_trip", func(t *testing.T) {
		c, err := order.InTransitCarrier(mustID(t, "TR-9"))

		require.NoError(t, err)
		assert.Equal(t, order.CarrierInTransit, c.Kind())
		assert.Equal(t, "TR-9", c.TripID().String())
		assert.True(t, c.TruckID().IsZero())
	})

	t.Run("in_transit_carrier_requires_trip_id", func(t *testing.T) {
		var zero kernel.ID
		_, err := order.InTransitCarrier(zero)
		require.Error(t, err)
	})

	t.Run("on_truck_carrier_requires_full_crew", func(t *testing.T) {
		truckID := mustID(t, "TRK-1")
		driverID := mustID(t, "USR-D1")
		assistantID := mustID(t, "USR-A1")

		c, err := order.OnTruckCarrier(truckID, driverID, assistantID)
		require.NoError(t, err)
		assert.Equal(t, order.CarrierOnTruck, c.Kind())
		assert.Equal(t, "TRK-1", c.TruckID().String())
		assert.Equal(t, "USR-D1", c.DriverID().String())
		assert.Equal(t, "USR-A1", c.AssistantID().String())

		var zero kernel.ID
		_, err = order.OnTruckCarrier(truckID, driverID, zero)
		require.Error(t, err)
		_, err = order.OnTruckCarrier(truckID, zero, assistantID)
		require.Error(t, err)
		_, err = order.OnTruckCarrier(zero, driverID, assistantID)
		require.Error(t, err)
	})

	t.Run("delivered_carrier_retains_driver", func(t *testing.T) {
		c, err := order.DeliveredCarrier(mustID(t, "USR-D1"))

		require.NoError(t, err)
		assert.Equal(t, order.CarrierDelivered, c.Kind())
		assert.Equal(t, "USR-D1", c.DriverID().String())
	})
}

func TestCarrier_MatchesStatus(t *testing.T) {
	inTransit, err := order.InTransitCarrier(mustID(t, "TR-9"))
	require.NoError(t, err)
	inStore, err := order.InStoreCarrier(mustID(t, "ST-CMB-01"))
	require.NoError(t, err)
	onTruck, err := order.OnTruckCarrier(mustID(t, "TRK-1"), mustID(t, "USR-D1"), mustID(t, "USR-A1"))
	require.NoError(t, err)
	delivered, err := order.DeliveredCarrier(mustID(t, "USR-D1"))
	require.NoError(t, err)

	t.Run("each_status_has_exactly_one_legal_carrier_kind", func(t *testing.T) {
		require.NoError(t, order.UnassignedCarrier().MatchesStatus(order.Pending))
		require.NoError(t, inTransit.MatchesStatus(order.OnTrain))
		require.NoError(t, inStore.MatchesStatus(order.InStore))
		require.NoError(t, onTruck.MatchesStatus(order.OnTruck))
		require.NoError(t, delivered.MatchesStatus(order.Delivered))
	})

	t.Run("mismatched_pairs_are_rejected", func(t *testing.T) {
		require.Error(t, order.UnassignedCarrier().MatchesStatus(order.OnTrain))
		require.Error(t, inTransit.MatchesStatus(order.Pending))
		require.Error(t, inTransit.MatchesStatus(order.InStore))
		require.Error(t, onTruck.MatchesStatus(order.Delivered))
		require.Error(t, delivered.MatchesStatus(order.OnTruck))
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		require.Error(t, order.UnassignedCarrier().MatchesStatus(order.Unknown))
	})
}
