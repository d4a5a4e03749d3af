//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/infra"
	"rentafleet/internal/pkg/clock"
	"rentafleet/internal/pkg/errs"
	"rentafleet/internal/usecase/commands"
	"rentafleet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LifecycleUseCaseTestSuite struct {
	suite.Suite
	reservations *mockReservationRepo
	vehicles     *mockVehicleRepo
	resQueries   *mockReservationQueries
	uow          *fakeUoW
	clock        *clock.MockClock
	uc           commands.LifecycleCommands
}

func (s *LifecycleUseCaseTestSuite) SetupTest() {
	s.reservations = &mockReservationRepo{}
	s.vehicles = &mockVehicleRepo{}
	s.resQueries = &mockReservationQueries{}
	s.uow = &fakeUoW{tx: &fakeTx{
		vehicles:     s.vehicles,
		reservations: s.reservations,
	}}
	s.clock = clock.NewMockClock(time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC))
	s.uc = commands.NewLifecycleUseCase(s.uow, s.resQueries, s.clock)
}

// storedReservation rebuilds an aggregate the way the repository would after
// locking the row.
func (s *LifecycleUseCaseTestSuite) storedReservation(id, vehicleID uuid.UUID, status reservation.Status) *reservation.Reservation {
	now := s.clock.Now()
	window, err := reservation.NewWindow(now.Add(24*time.Hour), now.Add(48*time.Hour))
	s.Require().NoError(err)
	return reservation.ReconstructReservation(
		id, uuid.New(), vehicleID, uuid.New(),
		now.Add(-time.Hour), window, reservation.NewMoney(12800), status,
		nil, nil, now.Add(-time.Hour), now.Add(-time.Hour),
	)
}

func TestLifecycleUseCaseSuite(t *testing.T) {
	suite.Run(t, new(LifecycleUseCaseTestSuite))
}

func (s *LifecycleUseCaseTestSuite) TestDecide() {
	s.Run("承認はapproved_atを刻む", func() {
		s.SetupTest()
		id := uuid.New()
		vehicleID := uuid.New()
		now := s.clock.Now()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(s.storedReservation(id, vehicleID, reservation.StatusPending), nil)
		s.reservations.On("UpdateDecision", mock.Anything, id,
			reservation.StatusPending, reservation.StatusApproved, &now).Return(nil)
		s.resQueries.On("GetByID", mock.Anything, id).
			Return(&queries.ReservationView{ID: id, Status: "approved"}, nil)

		view, err := s.uc.Decide(context.Background(), id, reservation.DecisionApprove)
		s.Require().NoError(err)
		s.Equal("approved", view.Status)
		s.True(s.uow.committed)
		s.vehicles.AssertNotCalled(s.T(), "Release", mock.Anything, mock.Anything)
	})

	s.Run("却下は車両を解放する", func() {
		s.SetupTest()
		id := uuid.New()
		vehicleID := uuid.New()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(s.storedReservation(id, vehicleID, reservation.StatusPending), nil)
		s.reservations.On("UpdateDecision", mock.Anything, id,
			reservation.StatusPending, reservation.StatusRejected, (*time.Time)(nil)).Return(nil)
		s.vehicles.On("Release", mock.Anything, vehicleID).Return(nil)
		s.resQueries.On("GetByID", mock.Anything, id).
			Return(&queries.ReservationView{ID: id, Status: "rejected"}, nil)

		view, err := s.uc.Decide(context.Background(), id, reservation.DecisionReject)
		s.Require().NoError(err)
		s.Equal("rejected", view.Status)
		s.vehicles.AssertCalled(s.T(), "Release", mock.Anything, vehicleID)
	})

	s.Run("同じ決定の再送はノーオペ", func() {
		s.SetupTest()
		id := uuid.New()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(s.storedReservation(id, uuid.New(), reservation.StatusApproved), nil)
		s.resQueries.On("GetByID", mock.Anything, id).
			Return(&queries.ReservationView{ID: id, Status: "approved"}, nil)

		_, err := s.uc.Decide(context.Background(), id, reservation.DecisionApprove)
		s.Require().NoError(err)
		s.reservations.AssertNotCalled(s.T(), "UpdateDecision",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("確定済みの反転は不許可", func() {
		s.SetupTest()
		id := uuid.New()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(s.storedReservation(id, uuid.New(), reservation.StatusRejected), nil)

		_, err := s.uc.Decide(context.Background(), id, reservation.DecisionApprove)
		s.Require().ErrorIs(err, commands.ErrDecisionNotAllowed)
		s.False(s.uow.committed)
	})

	s.Run("pending_paymentは操作者決定を受けない", func() {
		s.SetupTest()
		id := uuid.New()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(s.storedReservation(id, uuid.New(), reservation.StatusPendingPayment), nil)

		_, err := s.uc.Decide(context.Background(), id, reservation.DecisionApprove)
		s.Require().ErrorIs(err, commands.ErrDecisionNotAllowed)
	})

	s.Run("存在しない予約", func() {
		s.SetupTest()
		id := uuid.New()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.uc.Decide(context.Background(), id, reservation.DecisionApprove)
		s.Require().ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("不明な決定値", func() {
		s.SetupTest()
		_, err := s.uc.Decide(context.Background(), uuid.New(), reservation.Decision("archive"))
		s.Require().ErrorIs(err, commands.ErrInvalidDecision)
		s.False(s.uow.began)
	})

	s.Run("コミット後の読み戻し失敗はエラーにしない", func() {
		s.SetupTest()
		id := uuid.New()
		now := s.clock.Now()

		s.reservations.On("FindForUpdate", mock.Anything, id).
			Return(s.storedReservation(id, uuid.New(), reservation.StatusPending), nil)
		s.reservations.On("UpdateDecision", mock.Anything, id,
			reservation.StatusPending, reservation.StatusApproved, &now).Return(nil)
		s.resQueries.On("GetByID", mock.Anything, id).
			Return(nil, errs.New("read replica down"))

		view, err := s.uc.Decide(context.Background(), id, reservation.DecisionApprove)
		s.Require().NoError(err)
		s.Nil(view)
		s.True(s.uow.committed)
	})
}
