package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
	"github.com/samandr77/microservices/vstpayment/internal/mocks"
	"github.com/samandr77/microservices/vstpayment/internal/service"
)

var gateway = service.Gateway{
	TerminalID:          "T-001",
	FallbackCallbackURL: "https://fallback.example.com/vst-success",
	ServicePaymentType:  "cnap",
}

type testResolvers struct {
	settings *mocks.MockSettingsRepository
	debtors  *mocks.MockDebtorRepository
	accounts *mocks.MockServiceAccountRepository
	recorder *mocks.MockTransactionRecorder
	producer *mocks.MockProducer
	tax      *service.TaxResolver
	cnap     *service.ServiceResolver
}

func newTestResolvers(t *testing.T) *testResolvers {
	t.Helper()

	ctrl := gomock.NewController(t)

	r := &testResolvers{
		settings: mocks.NewMockSettingsRepository(ctrl),
		debtors:  mocks.NewMockDebtorRepository(ctrl),
		accounts: mocks.NewMockServiceAccountRepository(ctrl),
		recorder: mocks.NewMockTransactionRecorder(ctrl),
		producer: mocks.NewMockProducer(ctrl),
	}

	r.tax = service.NewTaxResolver(r.settings, r.debtors, r.recorder, r.producer, gateway)
	r.cnap = service.NewServiceResolver(r.accounts, r.recorder, r.producer, gateway)

	return r
}

// expectRecord expects exactly times ledger inserts and returns the recorded transactions.
func (r *testResolvers) expectRecord(times int) *[]entity.TransactionRecord {
	var recorded []entity.TransactionRecord

	r.recorder.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx entity.TransactionRecord) (entity.TransactionRecord, error) {
			tx.ID = int64(len(recorded) + 1)
			recorded = append(recorded, tx)

			return tx, nil
		}).Times(times)
	r.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any()).Times(times)

	return &recorded
}

func testDebtor() entity.Debtor {
	return entity.Debtor{
		ID:                       42,
		Name:                     "Шевченко Тарас Григорович",
		TaxIdentification:        "1234567890",
		ResidentialDebt:          decimal.NewNullDecimal(decimal.RequireFromString("2500.75")),
		NonResidentialDebt:       decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
		LandDebt:                 decimal.NewNullDecimal(decimal.RequireFromString("300.00")),
		RentalDebt:               decimal.NewNullDecimal(decimal.RequireFromString("450.25")),
		MinimumTaxObligationDebt: decimal.NewNullDecimal(decimal.RequireFromString("100.00")),
	}
}

func testSettings(recipientSuffix string) entity.Settings {
	requisites := make(map[string]entity.Requisites)

	for _, c := range entity.TaxCategories {
		requisites[c.SettingsPrefix] = entity.Requisites{
			Account:       "UA00" + c.SettingsPrefix,
			EDRPOU:        "3700" + c.SettingsPrefix,
			RecipientName: "ГУК " + c.SettingsPrefix + recipientSuffix,
			Purpose:       "Сплата " + c.SettingsPrefix,
		}
	}

	return entity.NewSettings(1, "https://registry.example.com/vst-success", requisites)
}

func TestTaxResolver_Resolve(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		identifier string
		wantSum    int64
		wantPrefix string
	}{
		{identifier: "421", wantSum: 250075, wantPrefix: "residential"},
		{identifier: "422", wantSum: 150050, wantPrefix: "non_residential"},
		{identifier: "423", wantSum: 30000, wantPrefix: "land"},
		{identifier: "424", wantSum: 45025, wantPrefix: "rent"},
		{identifier: "425", wantSum: 10000, wantPrefix: "mpz"},
	} {
		tt := tt
		t.Run(tt.identifier, func(t *testing.T) {
			t.Parallel()

			r := newTestResolvers(t)
			ctx := context.Background()

			r.settings.EXPECT().CurrentSettings(ctx).Return(testSettings(""), nil)
			r.debtors.EXPECT().Debtor(ctx, int64(42)).Return(testDebtor(), nil)
			recorded := r.expectRecord(1)

			p, err := r.tax.Resolve(ctx, tt.identifier)
			require.NoError(t, err)

			require.Equal(t, tt.identifier, p.ID)
			require.Equal(t, tt.wantSum, p.SumMinorUnits)
			require.Equal(t, "UA00"+tt.wantPrefix, p.Account)
			require.Equal(t, "3700"+tt.wantPrefix, p.EDRPOU)
			require.Equal(t, "ГУК "+tt.wantPrefix, p.RecipientName)
			require.Equal(t, "Шевченко Тарас Григорович", p.SenderName)
			require.Equal(t, "https://registry.example.com/vst-success", p.CallbackURL)
			require.Equal(t, "T-001", p.TerminalID)
			require.NotEqual(t, uuid.Nil, p.TransactionID)

			require.Len(t, *recorded, 1)
			tx := (*recorded)[0]
			require.Equal(t, p.TransactionID, tx.UUID)
			require.Equal(t, entity.AccountTypeDebtor, tx.AccountType)
			require.Equal(t, entity.OperationStatusInitiated, tx.OperationStatus)
			require.Equal(t, tt.identifier, tx.AccountNumber)
			require.Equal(t, "42", tx.PersonID)

			var info entity.TaxPaymentInfo
			require.NoError(t, json.Unmarshal(tx.Info, &info))
			require.Equal(t, tt.wantSum, info.AmountMinor)
			require.Equal(t, int64(42), info.DebtorID)
			require.Equal(t, p.Code, info.TaxCode)
		})
	}
}

func TestTaxResolver_Resolve_NotFound(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")

	for _, tt := range []struct {
		name         string
		identifier   string
		mockBehavior func(r *testResolvers)
		wantNotFound bool
	}{
		{
			name:         "not a tax identifier",
			identifier:   "CNAP-001",
			mockBehavior: func(*testResolvers) {},
			wantNotFound: true,
		},
		{
			name:       "single digit identifier",
			identifier: "1",
			mockBehavior: func(r *testResolvers) {
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(testSettings(""), nil)
			},
			wantNotFound: true,
		},
		{
			name:       "no debtor",
			identifier: "999991",
			mockBehavior: func(r *testResolvers) {
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(testSettings(""), nil)
				r.debtors.EXPECT().Debtor(gomock.Any(), int64(99999)).Return(entity.Debtor{}, entity.ErrNotFound)
			},
			wantNotFound: true,
		},
		{
			name:       "no settings row",
			identifier: "421",
			mockBehavior: func(r *testResolvers) {
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(entity.Settings{}, entity.ErrNotFound)
			},
			wantNotFound: true,
		},
		{
			name:       "blank requisites",
			identifier: "423",
			mockBehavior: func(r *testResolvers) {
				s := entity.NewSettings(2, "", map[string]entity.Requisites{"land": {Account: "", EDRPOU: "1"}})
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(s, nil)
				r.debtors.EXPECT().Debtor(gomock.Any(), int64(42)).Return(testDebtor(), nil)
			},
			wantNotFound: true,
		},
		{
			name:       "settings store unavailable",
			identifier: "421",
			mockBehavior: func(r *testResolvers) {
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(entity.Settings{}, dbErr)
			},
			wantNotFound: false,
		},
		{
			name:       "debtor store unavailable",
			identifier: "421",
			mockBehavior: func(r *testResolvers) {
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(testSettings(""), nil)
				r.debtors.EXPECT().Debtor(gomock.Any(), int64(42)).Return(entity.Debtor{}, dbErr)
			},
			wantNotFound: false,
		},
		{
			name:       "ledger unavailable",
			identifier: "421",
			mockBehavior: func(r *testResolvers) {
				r.settings.EXPECT().CurrentSettings(gomock.Any()).Return(testSettings(""), nil)
				r.debtors.EXPECT().Debtor(gomock.Any(), int64(42)).Return(testDebtor(), nil)
				r.recorder.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(entity.TransactionRecord{}, dbErr)
			},
			wantNotFound: false,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newTestResolvers(t)
			tt.mockBehavior(r)

			_, err := r.tax.Resolve(context.Background(), tt.identifier)
			require.Error(t, err)
			require.Equal(t, tt.wantNotFound, errors.Is(err, entity.ErrNotFound), err.Error())

			if !tt.wantNotFound {
				require.ErrorIs(t, err, dbErr)
			}
		})
	}
}

func TestTaxResolver_Resolve_SettingsAreReadEveryTime(t *testing.T) {
	t.Parallel()

	r := newTestResolvers(t)
	ctx := context.Background()

	first := testSettings("")
	second := entity.NewSettings(2, "", map[string]entity.Requisites{
		"residential": {Account: "UA99", EDRPOU: "99999999", RecipientName: "Нова громада"},
	})

	gomock.InOrder(
		r.settings.EXPECT().CurrentSettings(ctx).Return(first, nil),
		r.settings.EXPECT().CurrentSettings(ctx).Return(second, nil),
	)
	r.debtors.EXPECT().Debtor(ctx, int64(42)).Return(testDebtor(), nil).Times(2)
	recorded := r.expectRecord(2)

	p1, err := r.tax.Resolve(ctx, "421")
	require.NoError(t, err)
	require.Equal(t, "ГУК residential", p1.RecipientName)

	p2, err := r.tax.Resolve(ctx, "421")
	require.NoError(t, err)
	require.Equal(t, "Нова громада", p2.RecipientName)
	require.Equal(t, "UA99", p2.Account)
	require.Equal(t, "99999999", p2.EDRPOU)
	require.Equal(t, gateway.FallbackCallbackURL, p2.CallbackURL)

	require.NotEqual(t, p1.TransactionID, p2.TransactionID)
	require.Len(t, *recorded, 2)
}

func TestTaxResolver_Resolve_NullDebt(t *testing.T) {
	t.Parallel()

	r := newTestResolvers(t)
	ctx := context.Background()

	debtor := testDebtor()
	debtor.LandDebt = decimal.NullDecimal{}

	r.settings.EXPECT().CurrentSettings(ctx).Return(testSettings(""), nil)
	r.debtors.EXPECT().Debtor(ctx, int64(42)).Return(debtor, nil)
	r.expectRecord(1)

	p, err := r.tax.Resolve(ctx, "423")
	require.NoError(t, err)
	require.Equal(t, int64(0), p.SumMinorUnits)
}

func testServiceAccount() entity.ServiceAccount {
	return entity.ServiceAccount{
		ID:            7,
		AccountNumber: "CNAP-2024-0001",
		ServiceID:     3,
		Administrator: "Адміністратор ЦНАП",
		Payer:         "Іваненко Іван",
		Amount:        decimal.NewNullDecimal(decimal.NewFromFloat(100.999)),
		Enabled:       true,
		Service: &entity.ServiceDefinition{
			Identifier: "0101",
			Name:       "Паспорт",
			EDRPOU:     "04054903",
			IBAN:       "UA213223130000026007233566001",
		},
	}
}

func TestServiceResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := newTestResolvers(t)
	ctx := context.Background()

	r.accounts.EXPECT().ServiceAccount(ctx, "CNAP-2024-0001").Return(testServiceAccount(), nil)
	recorded := r.expectRecord(1)

	p, err := r.cnap.Resolve(ctx, "CNAP-2024-0001")
	require.NoError(t, err)

	require.Equal(t, entity.PaymentDescriptor{
		ID:            "CNAP-2024-0001",
		Code:          "0101",
		Name:          "Паспорт",
		SumMinorUnits: 10100,
		Type:          "cnap",
		Account:       "UA213223130000026007233566001",
		EDRPOU:        "04054903",
		RecipientName: "Recipient/Паспорт/0101",
		SenderName:    "Іваненко Іван",
		CallbackURL:   gateway.FallbackCallbackURL,
		TransactionID: p.TransactionID,
		TerminalID:    "T-001",
		Timestamp:     p.Timestamp,
	}, p)

	tx := (*recorded)[0]
	require.Equal(t, entity.AccountTypeCNAP, tx.AccountType)
	require.Equal(t, "Іваненко Іван", tx.PaymentPerson)

	var info entity.ServicePaymentInfo
	require.NoError(t, json.Unmarshal(tx.Info, &info))
	require.Equal(t, "Адміністратор ЦНАП", info.Administrator)
	require.Equal(t, int64(10100), info.AmountMinor)
}

func TestServiceResolver_Resolve_NotFound(t *testing.T) {
	t.Parallel()

	unresolved := testServiceAccount()
	unresolved.Service.Name = ""

	dangling := testServiceAccount()
	dangling.Service = nil

	for _, tt := range []struct {
		name    string
		account entity.ServiceAccount
		err     error
	}{
		{name: "disabled or missing account", err: entity.ErrNotFound},
		{name: "service without name", account: unresolved},
		{name: "service join missing", account: dangling},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newTestResolvers(t)
			r.accounts.EXPECT().ServiceAccount(gomock.Any(), "CNAP-2024-0001").Return(tt.account, tt.err)

			_, err := r.cnap.Resolve(context.Background(), "CNAP-2024-0001")
			require.ErrorIs(t, err, entity.ErrNotFound)
		})
	}
}
