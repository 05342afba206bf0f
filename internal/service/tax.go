package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

// TaxResolver resolves identifiers of the form <debtor id><tax category digit>.
type TaxResolver struct {
	settings SettingsRepository
	debtors  DebtorRepository
	initiator
	gateway Gateway
}

func NewTaxResolver(
	settings SettingsRepository,
	debtors DebtorRepository,
	recorder TransactionRecorder,
	producer Producer,
	gateway Gateway,
) *TaxResolver {
	return &TaxResolver{
		settings:  settings,
		debtors:   debtors,
		initiator: initiator{recorder: recorder, producer: producer},
		gateway:   gateway,
	}
}

func (r *TaxResolver) Name() string {
	return "tax"
}

func (r *TaxResolver) Resolve(ctx context.Context, identifier string) (entity.PaymentDescriptor, error) {
	tid, ok := entity.ClassifyIdentifier(identifier)
	if !ok {
		return entity.PaymentDescriptor{}, fmt.Errorf("%w: %q is not a tax identifier", entity.ErrNotFound, identifier)
	}

	category, ok := entity.TaxCategoryByDigit(tid.Digit)
	if !ok {
		return entity.PaymentDescriptor{}, fmt.Errorf("%w: no tax category %d", entity.ErrNotFound, tid.Digit)
	}

	settings, err := r.settings.CurrentSettings(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "tax settings are missing")
		}

		return entity.PaymentDescriptor{}, fmt.Errorf("get settings: %w", err)
	}

	// Debtor ids are integers; an empty or overflowing prefix cannot name a debtor.
	debtorID, err := strconv.ParseInt(tid.DebtorID, 10, 64)
	if err != nil {
		return entity.PaymentDescriptor{}, fmt.Errorf("%w: invalid debtor id %q", entity.ErrNotFound, tid.DebtorID)
	}

	debtor, err := r.debtors.Debtor(ctx, debtorID)
	if err != nil {
		return entity.PaymentDescriptor{}, fmt.Errorf("get debtor %d: %w", debtorID, err)
	}

	requisites, err := settings.Requisites(category.SettingsPrefix)
	if err != nil {
		slog.WarnContext(ctx, "tax requisites misconfigured", "settings_id", settings.ID, "error", err)
		return entity.PaymentDescriptor{}, fmt.Errorf("category %d: %w", category.Digit, err)
	}

	amount := category.Amount(debtor)
	sum := entity.ToMinorUnits(amount)

	tx, err := r.initiate(ctx, identifier, strconv.FormatInt(debtor.ID, 10), debtor.Name, entity.AccountTypeDebtor, sum,
		entity.TaxPaymentInfo{
			Identifier:  identifier,
			DebtorID:    debtor.ID,
			DebtorName:  debtor.Name,
			TaxCode:     category.Code,
			Category:    category.Digit,
			AmountMinor: sum,
			Amount:      amount.Decimal,
		})
	if err != nil {
		return entity.PaymentDescriptor{}, err
	}

	callbackURL := settings.CallbackURL
	if callbackURL == "" {
		callbackURL = r.gateway.FallbackCallbackURL
	}

	return entity.PaymentDescriptor{
		ID:            identifier,
		Code:          category.Code,
		Name:          category.DisplayName,
		SumMinorUnits: sum,
		Type:          category.GatewayType,
		Account:       requisites.Account,
		EDRPOU:        requisites.EDRPOU,
		RecipientName: requisites.RecipientName,
		SenderName:    debtor.Name,
		CallbackURL:   callbackURL,
		TransactionID: tx.UUID,
		TerminalID:    r.gateway.TerminalID,
		Timestamp:     tx.CreatedAt,
	}, nil
}
