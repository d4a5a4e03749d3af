//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/domain/tariff"
	"rentafleet/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookedAt = time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	pickup   = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

func newFactory() *reservation.Factory {
	return reservation.NewFactory(clock.NewMockClock(bookedAt))
}

func fixedDayPlan(t *testing.T) tariff.Plan {
	t.Helper()
	cutoff := int32(18*60 + 30)
	plan, err := tariff.NewPlan(uuid.New(), "half-day", 3000, tariff.RuleFixedDay, &cutoff)
	require.NoError(t, err)
	return plan
}

func rollingPlan(t *testing.T) tariff.Plan {
	t.Helper()
	plan, err := tariff.NewPlan(uuid.New(), "24-hour", 4000, tariff.RuleRolling24h, nil)
	require.NoError(t, err)
	return plan
}

func TestCreateReservation(t *testing.T) {
	t.Run("固定日プランは当日18:30終了・タリフ価格が見積総額", func(t *testing.T) {
		res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), fixedDayPlan(t), pickup, nil)
		require.NoError(t, err)

		assert.Equal(t, pickup, res.Window().Start())
		assert.Equal(t, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC), res.Window().End())
		assert.Equal(t, int64(3000), res.Total().Cents())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, bookedAt, res.RequestedAt())
		assert.Nil(t, res.ApprovedAt())
	})

	t.Run("24時間プランは翌日同時刻終了", func(t *testing.T) {
		res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), rollingPlan(t), pickup, nil)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), res.Window().End())
		assert.Equal(t, int64(4000), res.Total().Cents())
	})

	t.Run("支払い方法ありの場合はpending_payment", func(t *testing.T) {
		method := "card"
		res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), rollingPlan(t), pickup, &method)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPendingPayment, res.Status())

		payment := res.PaymentIntent()
		require.NotNil(t, payment)
		assert.Equal(t, res.ID(), payment.ReservationID)
		assert.Equal(t, int64(4000), payment.AmountCents)
		assert.Equal(t, "card", payment.Method)
		assert.Equal(t, reservation.PaymentStatusPending, payment.Status)
	})

	t.Run("支払い方法なしの場合はPaymentIntentはnil", func(t *testing.T) {
		res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), rollingPlan(t), pickup, nil)
		require.NoError(t, err)
		assert.Nil(t, res.PaymentIntent())
	})

	t.Run("カットオフ後のピックアップは不正なウィンドウ", func(t *testing.T) {
		late := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
		_, err := newFactory().CreateReservation(uuid.New(), uuid.New(), fixedDayPlan(t), late, nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidWindow)
	})
}

func TestLineItem(t *testing.T) {
	res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), fixedDayPlan(t), pickup, nil)
	require.NoError(t, err)

	item := res.BuildLineItem()
	assert.Equal(t, res.ID(), item.ReservationID)
	assert.Equal(t, res.VehicleID(), item.VehicleID)
	assert.Equal(t, res.TariffID(), item.TariffID)
	assert.Equal(t, int64(3000), item.UnitPriceCents)
	assert.Equal(t, item.UnitPriceCents, item.SubtotalCents)
}

func TestApply(t *testing.T) {
	decidedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *reservation.Reservation {
		res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), fixedDayPlan(t), pickup, nil)
		require.NoError(t, err)
		return res
	}

	t.Run("承認でapproved_atが設定される", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Apply(reservation.DecisionApprove, decidedAt))

		assert.Equal(t, reservation.StatusApproved, res.Status())
		require.NotNil(t, res.ApprovedAt())
		assert.Equal(t, decidedAt, *res.ApprovedAt())
	})

	t.Run("却下でapproved_atは空になる", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Apply(reservation.DecisionReject, decidedAt))

		assert.Equal(t, reservation.StatusRejected, res.Status())
		assert.Nil(t, res.ApprovedAt())
	})

	t.Run("同じ決定の再適用は冪等", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Apply(reservation.DecisionApprove, decidedAt))
		first := *res.ApprovedAt()

		require.NoError(t, res.Apply(reservation.DecisionApprove, decidedAt.Add(time.Hour)))
		assert.Equal(t, reservation.StatusApproved, res.Status())
		assert.Equal(t, first, *res.ApprovedAt())
	})

	t.Run("終端状態からの別決定は不可", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Apply(reservation.DecisionApprove, decidedAt))

		err := res.Apply(reservation.DecisionReject, decidedAt)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
		assert.Equal(t, reservation.StatusApproved, res.Status())
	})

	t.Run("pending_paymentはこのコントローラでは遷移しない", func(t *testing.T) {
		method := "card"
		res, err := newFactory().CreateReservation(uuid.New(), uuid.New(), fixedDayPlan(t), pickup, &method)
		require.NoError(t, err)

		err = res.Apply(reservation.DecisionApprove, decidedAt)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("不正な決定値", func(t *testing.T) {
		res := newPending(t)
		err := res.Apply(reservation.Decision("cancel"), decidedAt)
		assert.ErrorIs(t, err, reservation.ErrInvalidDecision)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, reservation.CanTransition(reservation.StatusPending, reservation.StatusApproved))
	assert.True(t, reservation.CanTransition(reservation.StatusPending, reservation.StatusRejected))
	assert.True(t, reservation.CanTransition(reservation.StatusApproved, reservation.StatusApproved))
	assert.False(t, reservation.CanTransition(reservation.StatusApproved, reservation.StatusRejected))
	assert.False(t, reservation.CanTransition(reservation.StatusRejected, reservation.StatusApproved))
	assert.False(t, reservation.CanTransition(reservation.StatusPendingPayment, reservation.StatusApproved))
}
