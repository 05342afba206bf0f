package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

// ServiceResolver resolves identifiers that are account numbers of administrative services (CNAP).
type ServiceResolver struct {
	accounts ServiceAccountRepository
	initiator
	gateway Gateway
}

func NewServiceResolver(
	accounts ServiceAccountRepository,
	recorder TransactionRecorder,
	producer Producer,
	gateway Gateway,
) *ServiceResolver {
	return &ServiceResolver{
		accounts:  accounts,
		initiator: initiator{recorder: recorder, producer: producer},
		gateway:   gateway,
	}
}

func (r *ServiceResolver) Name() string {
	return "cnap"
}

func (r *ServiceResolver) Resolve(ctx context.Context, identifier string) (entity.PaymentDescriptor, error) {
	account, err := r.accounts.ServiceAccount(ctx, identifier)
	if err != nil {
		return entity.PaymentDescriptor{}, fmt.Errorf("get service account %q: %w", identifier, err)
	}

	if !account.Resolved() {
		return entity.PaymentDescriptor{}, fmt.Errorf("%w: service of account %q is not resolved", entity.ErrNotFound, identifier)
	}

	service := account.Service
	sum := entity.ToMinorUnits(account.Amount)

	tx, err := r.initiate(ctx, identifier, strconv.FormatInt(account.ID, 10), account.Payer, entity.AccountTypeCNAP, sum,
		entity.ServicePaymentInfo{
			Identifier:    identifier,
			AccountNumber: account.AccountNumber,
			Payer:         account.Payer,
			ServiceCode:   service.Identifier,
			ServiceName:   service.Name,
			AmountMinor:   sum,
			Amount:        account.Amount.Decimal,
			Administrator: account.Administrator,
		})
	if err != nil {
		return entity.PaymentDescriptor{}, err
	}

	return entity.PaymentDescriptor{
		ID:            identifier,
		Code:          service.Identifier,
		Name:          service.Name,
		SumMinorUnits: sum,
		Type:          r.gateway.ServicePaymentType,
		Account:       service.IBAN,
		EDRPOU:        service.EDRPOU,
		RecipientName: fmt.Sprintf("Recipient/%s/%s", service.Name, service.Identifier),
		SenderName:    account.Payer,
		CallbackURL:   r.gateway.FallbackCallbackURL,
		TransactionID: tx.UUID,
		TerminalID:    r.gateway.TerminalID,
		Timestamp:     tx.CreatedAt,
	}, nil
}
