package guard_test

import (
	"errors"
	"testing"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("trip not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern
// on a command-like value object.
func TestConstructorGuardUsage(t *testing.T) {
	type reserveRequest struct {
		tripID string
		amount float64
		guard  guard.ConstructorGuard
	}

	errNotConstructed := errors.New("reserveRequest must be created via newReserveRequest")

	newReserveRequest := func(tripID string, amount float64) (reserveRequest, error) {
		if tripID == "" {
			return reserveRequest{}, errors.New("trip id is required")
		}
		if amount < 0 {
			return reserveRequest{}, errors.New("amount cannot be negative")
		}
		return reserveRequest{
			tripID: tripID,
			amount: amount,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction", func(t *testing.T) {
		req, err := newReserveRequest("TR-9", 12.5)

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var req reserveRequest

		err := req.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("constructor_enforces_business_rules", func(t *testing.T) {
		_, err := newReserveRequest("", 1)
		require.Error(t, err)

		_, err = newReserveRequest("TR-9", -1)
		require.Error(t, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
