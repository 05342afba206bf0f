package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
	"github.com/samandr77/microservices/vstpayment/internal/mocks"
	"github.com/samandr77/microservices/vstpayment/internal/service"
)

func TestDispatcher_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("tax payment", func(t *testing.T) {
		t.Parallel()

		r := newTestResolvers(t)
		ctx := context.Background()

		r.settings.EXPECT().CurrentSettings(ctx).Return(testSettings(""), nil)
		r.debtors.EXPECT().Debtor(ctx, int64(42)).Return(testDebtor(), nil)
		r.expectRecord(1)

		p, err := service.NewDispatcher(r.tax, r.cnap).Resolve(ctx, "421")
		require.NoError(t, err)
		require.Equal(t, "18010300", p.Code)
		require.Equal(t, int64(250075), p.SumMinorUnits)
	})

	t.Run("falls back to service payment", func(t *testing.T) {
		t.Parallel()

		r := newTestResolvers(t)
		ctx := context.Background()

		account := testServiceAccount()
		account.AccountNumber = "999991"

		gomock.InOrder(
			r.settings.EXPECT().CurrentSettings(ctx).Return(testSettings(""), nil),
			r.debtors.EXPECT().Debtor(ctx, int64(99999)).Return(entity.Debtor{}, entity.ErrNotFound),
			r.accounts.EXPECT().ServiceAccount(ctx, "999991").Return(account, nil),
		)
		recorded := r.expectRecord(1)

		p, err := service.NewDispatcher(r.tax, r.cnap).Resolve(ctx, "999991")
		require.NoError(t, err)
		require.Equal(t, "0101", p.Code)
		require.Equal(t, "cnap", p.Type)
		require.Equal(t, entity.AccountTypeCNAP, (*recorded)[0].AccountType)
	})

	t.Run("misconfigured tax falls back", func(t *testing.T) {
		t.Parallel()

		r := newTestResolvers(t)
		ctx := context.Background()

		r.settings.EXPECT().CurrentSettings(ctx).Return(entity.NewSettings(1, "", nil), nil)
		r.debtors.EXPECT().Debtor(ctx, int64(42)).Return(testDebtor(), nil)
		r.accounts.EXPECT().ServiceAccount(ctx, "421").Return(entity.ServiceAccount{}, entity.ErrNotFound)

		_, err := service.NewDispatcher(r.tax, r.cnap).Resolve(ctx, "421")
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("not a tax identifier", func(t *testing.T) {
		t.Parallel()

		r := newTestResolvers(t)
		ctx := context.Background()

		r.accounts.EXPECT().ServiceAccount(ctx, "ABC-1").Return(entity.ServiceAccount{}, entity.ErrNotFound)

		_, err := service.NewDispatcher(r.tax, r.cnap).Resolve(ctx, "ABC-1")
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("infrastructure error stops dispatch", func(t *testing.T) {
		t.Parallel()

		r := newTestResolvers(t)
		dbErr := errors.New("too many connections")

		r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(testSettings(""), nil)
		r.debtors.EXPECT().Debtor(gomock.Any(), int64(42)).Return(entity.Debtor{}, dbErr)

		_, err := service.NewDispatcher(r.tax, r.cnap).Resolve(context.Background(), "421")
		require.ErrorIs(t, err, dbErr)
		require.NotErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("empty identifier", func(t *testing.T) {
		t.Parallel()

		r := newTestResolvers(t)

		_, err := service.NewDispatcher(r.tax, r.cnap).Resolve(context.Background(), "  ")
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestDispatcher_Resolve_Order(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	first := mocks.NewMockResolver(ctrl)
	second := mocks.NewMockResolver(ctrl)
	ctx := context.Background()

	first.EXPECT().Name().Return("first").AnyTimes()
	second.EXPECT().Name().Return("second").AnyTimes()

	gomock.InOrder(
		first.EXPECT().Resolve(ctx, "X").Return(entity.PaymentDescriptor{}, entity.ErrNotFound),
		second.EXPECT().Resolve(ctx, "X").Return(entity.PaymentDescriptor{ID: "X", Code: "second"}, nil),
	)

	p, err := service.NewDispatcher(first, second).Resolve(ctx, "X")
	require.NoError(t, err)
	require.Equal(t, "second", p.Code)
}

func TestDispatcher_Resolve_DistinctTransactions(t *testing.T) {
	t.Parallel()

	r := newTestResolvers(t)
	ctx := context.Background()

	r.accounts.EXPECT().ServiceAccount(ctx, "CNAP-2024-0001").Return(testServiceAccount(), nil).Times(2)
	recorded := r.expectRecord(2)

	d := service.NewDispatcher(r.tax, r.cnap)

	p1, err := d.Resolve(ctx, "CNAP-2024-0001")
	require.NoError(t, err)

	p2, err := d.Resolve(ctx, "CNAP-2024-0001")
	require.NoError(t, err)

	require.NotEqual(t, p1.TransactionID, p2.TransactionID)
	require.Equal(t, p1.SumMinorUnits, p2.SumMinorUnits)
	require.Len(t, *recorded, 2)
}
