package worker_test

import (
	"testing"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func newTestWorker(t *testing.T, role worker.Role, hours float64) *worker.DeliveryWorker {
	t.Helper()
	w, err := worker.RestoreDeliveryWorker(
		mustID(t, "USR-D1"), mustID(t, "ST-CMB-01"), "Kasun Perera", role, hours)
	require.NoError(t, err)
	return w
}

func TestRoleFromString(t *testing.T) {
	r, err := worker.RoleFromString("Driver")
	require.NoError(t, err)
	assert.Equal(t, worker.RoleDriver, r)

	r, err = worker.RoleFromString("Assistant")
	require.NoError(t, err)
	assert.Equal(t, worker.RoleAssistant, r)

	_, err = worker.RoleFromString("Manager")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDeliveryWorker(t *testing.T) {
	t.Run("starts_with_zero_hours", func(t *testing.T) {
		w, err := worker.NewDeliveryWorker(
			mustID(t, "USR-D1"), mustID(t, "ST-CMB-01"), "Kasun Perera", worker.RoleDriver)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, w.WorkedHours(), 0.0001)
		assert.True(t, w.CanAssign())
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := worker.NewDeliveryWorker(
			mustID(t, "USR-X1"), mustID(t, "ST-CMB-01"), "Nimal Silva", worker.RoleUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := worker.NewDeliveryWorker(
			mustID(t, "USR-D1"), mustID(t, "ST-CMB-01"), "", worker.RoleDriver)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_worker_fails_validation", func(t *testing.T) {
		var w worker.DeliveryWorker
		require.ErrorIs(t, w.Validate(), worker.ErrWorkerIsNotConstructed)
	})
}

// TestDeliveryWorker_CanAssign pins the hour-ceiling boundary: exactly 40
// hours is already ineligible, just below it is eligible.
func TestDeliveryWorker_CanAssign(t *testing.T) {
	tests := []struct {
		name      string
		hours     float64
		canAssign bool
	}{
		{"zero_hours", 0, true},
		{"just_below_ceiling", 39.99, true},
		{"exactly_at_ceiling", 40.0, false},
		{"over_ceiling", 45.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorker(t, worker.RoleDriver, tt.hours)
			assert.Equal(t, tt.canAssign, w.CanAssign())
		})
	}
}

func TestDeliveryWorker_SetWeeklyHours(t *testing.T) {
	t.Run("records_external_accrual", func(t *testing.T) {
		w := newTestWorker(t, worker.RoleAssistant, 10)

		require.NoError(t, w.SetWeeklyHours(38.5))

		assert.InDelta(t, 38.5, w.WorkedHours(), 0.0001)
	})

	t.Run("accepts_overtime_beyond_ceiling", func(t *testing.T) {
		w := newTestWorker(t, worker.RoleDriver, 0)

		require.NoError(t, w.SetWeeklyHours(44))

		assert.InDelta(t, 44.0, w.WorkedHours(), 0.0001)
		assert.False(t, w.CanAssign())
	})

	t.Run("rejects_negative_hours", func(t *testing.T) {
		w := newTestWorker(t, worker.RoleDriver, 10)

		require.ErrorIs(t, w.SetWeeklyHours(-1), errs.ErrValueIsInvalid)
		assert.InDelta(t, 10.0, w.WorkedHours(), 0.0001)
	})
}

func TestDeliveryWorker_ResetWeeklyHours(t *testing.T) {
	w := newTestWorker(t, worker.RoleDriver, 40)
	require.False(t, w.CanAssign())

	w.ResetWeeklyHours()

	assert.InDelta(t, 0.0, w.WorkedHours(), 0.0001)
	assert.True(t, w.CanAssign())
}
