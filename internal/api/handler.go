package api

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
	"github.com/samandr77/microservices/vstpayment/pkg/logger"
	"github.com/samandr77/microservices/vstpayment/pkg/security"
)

// @title VST payment API
// @version 1.0
// @description Resolves payment identifiers of the VST payment gateway into tax and administrative service payments
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type PaymentResolver interface {
	Resolve(ctx context.Context, identifier string) (entity.PaymentDescriptor, error)
}

type CallbackService interface {
	Status(ctx context.Context, paymentID string, transactionID uuid.UUID) (entity.TransactionRecord, error)
	Confirm(ctx context.Context, conf entity.Confirmation) (entity.ConfirmationResult, error)
	CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

const defaultExpireHours = 24

type Handler struct {
	payments             PaymentResolver
	callbacks            CallbackService
	callbackCheckEnabled bool
	callbackPublicKey    *rsa.PublicKey
}

func NewHandler(
	payments PaymentResolver,
	callbacks CallbackService,
	callbackCheckEnabled bool,
	callbackPublicKey *rsa.PublicKey,
) *Handler {
	return &Handler{
		payments:             payments,
		callbacks:            callbacks,
		callbackCheckEnabled: callbackCheckEnabled,
		callbackPublicKey:    callbackPublicKey,
	}
}

type AccountPayment struct {
	ID            string `json:"ID"`
	Code          string `json:"Code"`
	Name          string `json:"Name"`
	Sum           int64  `json:"Sum"`
	Type          string `json:"Type"`
	Account       string `json:"Account"`
	EDRPOU        string `json:"EDRPOU"`
	RecipientName string `json:"RecipientName"`
	SenderName    string `json:"SenderName"`
}

type PaymentTransaction struct {
	TerminalID    string `json:"TerminalID"`
	DateTime      string `json:"DateTime"`
	TransactionID string `json:"TransactionID"`
}

type PaymentResponse struct {
	AccountPayment AccountPayment     `json:"AccountPayment"`
	CallBackURL    string             `json:"CallBackURL"`
	Transaction    PaymentTransaction `json:"Transaction"`
}

func newPaymentResponse(p entity.PaymentDescriptor) PaymentResponse {
	return PaymentResponse{
		AccountPayment: AccountPayment{
			ID:            p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Sum:           p.SumMinorUnits,
			Type:          p.Type,
			Account:       p.Account,
			EDRPOU:        p.EDRPOU,
			RecipientName: p.RecipientName,
			SenderName:    p.SenderName,
		},
		CallBackURL: p.CallbackURL,
		Transaction: PaymentTransaction{
			TerminalID:    p.TerminalID,
			DateTime:      entity.GatewayTime(p.Timestamp),
			TransactionID: p.TransactionID.String(),
		},
	}
}

// Payment resolves a gateway identifier into a payment
// @Summary Resolve payment
// @Description Resolves the identifier into a tax or administrative service payment and registers the initiated transaction
// @Tags payments
// @Produce json
// @Param identifier query string true "Payment identifier"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse "MISSING_IDENTIFIER"
// @Failure 401 {object} ErrorResponse "UNAUTHORIZED"
// @Failure 404 {object} ErrorResponse "PAYMENT_NOT_FOUND"
// @Failure 500 {object} ErrorResponse "INTERNAL_SERVER_ERROR"
// @Router / [get]
// @Security ApiKeyAuth
func (h *Handler) Payment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier := strings.TrimSpace(r.URL.Query().Get("identifier"))
	if identifier == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, CodeMissingIdentifier, "identifier is required")
		return
	}

	ctx = logger.WithIdentifier(ctx, identifier)

	p, err := h.payments.Resolve(ctx, identifier)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, CodePaymentNotFound, "payment not found")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, CodeMissingIdentifier, "identifier is required")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, CodeInternal, "internal server error")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, newPaymentResponse(p))
}

type StatusResponse struct {
	Success       bool   `json:"success"`
	PaymentID     string `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// Status returns the status of a payment transaction
// @Summary Payment status
// @Description Returns the status of the given transaction, or of the latest transaction of the payment
// @Tags callbacks
// @Produce json
// @Param payment_id query string true "Payment identifier"
// @Param transaction_id query string false "Transaction id (UUID)"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse "MISSING_PAYMENT_ID"
// @Failure 404 {object} ErrorResponse "PAYMENT_NOT_FOUND"
// @Failure 500 {object} ErrorResponse "INTERNAL_SERVER_ERROR"
// @Router /status [get]
// @Security ApiKeyAuth
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	paymentID := strings.TrimSpace(r.URL.Query().Get("payment_id"))
	if paymentID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, CodeMissingPaymentID, "payment_id is required")
		return
	}

	ctx = logger.WithIdentifier(ctx, paymentID)

	tx, err := h.callbacks.Status(ctx, paymentID, uuid.FromStringOrNil(r.URL.Query().Get("transaction_id")))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, CodePaymentNotFound, "payment not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, CodeInternal, "internal server error")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, StatusResponse{
		Success:       true,
		PaymentID:     tx.AccountNumber,
		TransactionID: tx.UUID.String(),
		Status:        tx.OperationStatus.String(),
	})
}

type VSTSuccessRequest struct {
	PaymentID     string `json:"payment_id"`
	TransactionID string `json:"transaction_id,omitempty"`
	Sum           int64  `json:"sum"`
	Status        string `json:"status,omitempty"`
	OperationDate string `json:"operation_date,omitempty"`
}

type VSTSuccessResponse struct {
	Success       bool   `json:"success"`
	Matched       bool   `json:"matched"`
	Applied       bool   `json:"applied"`
	TransactionID string `json:"transaction_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

// VSTSuccess applies a payment confirmation of the gateway
// @Summary Payment confirmation
// @Description Gateway callback. Repeated deliveries are accepted and change nothing.
// @Tags callbacks
// @Accept json
// @Produce json
// @Param X-Signature header string false "Hex RSA-SHA512 signature of the body"
// @Param VSTSuccessRequest body VSTSuccessRequest true "Confirmation"
// @Success 200 {object} VSTSuccessResponse
// @Failure 400 {object} ErrorResponse "INVALID_BODY"
// @Failure 403 {object} ErrorResponse "INVALID_SIGNATURE"
// @Failure 500 {object} ErrorResponse "INTERNAL_SERVER_ERROR"
// @Router /vst-success [post]
func (h *Handler) VSTSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, CodeInvalidBody, "cannot read body")
		return
	}

	if h.callbackCheckEnabled {
		err = security.VerifySHA512(h.callbackPublicKey, body, r.Header.Get("X-Signature"))
		if err != nil {
			SendJSONErr(ctx, w, http.StatusForbidden, err, CodeInvalidSignature, "signature check failed")
			return
		}
	}

	conf, err := parseConfirmation(body)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, CodeInvalidBody, "invalid body")
		return
	}

	ctx = logger.WithIdentifier(ctx, conf.PaymentID)

	res, err := h.callbacks.Confirm(ctx, conf)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, CodeInvalidBody, "invalid body")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, CodeInternal, "internal server error")
		}

		return
	}

	resp := VSTSuccessResponse{
		Success: true,
		Matched: res.Matched,
		Applied: res.Applied,
		Status:  res.Status.String(),
	}

	if res.Matched {
		resp.TransactionID = res.TransactionID.String()
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func parseConfirmation(body []byte) (entity.Confirmation, error) {
	var req VSTSuccessRequest

	err := json.Unmarshal(body, &req)
	if err != nil {
		return entity.Confirmation{}, fmt.Errorf("unmarshal confirmation: %w", err)
	}

	req.PaymentID = strings.TrimSpace(req.PaymentID)
	if req.PaymentID == "" {
		return entity.Confirmation{}, fmt.Errorf("%w: empty payment_id", entity.ErrInvalidArgument)
	}

	status, err := entity.ParseConfirmationStatus(req.Status)
	if err != nil {
		return entity.Confirmation{}, err
	}

	operationDate, err := parseOperationDate(req.OperationDate)
	if err != nil {
		return entity.Confirmation{}, err
	}

	return entity.Confirmation{
		PaymentID:     req.PaymentID,
		TransactionID: uuid.FromStringOrNil(req.TransactionID),
		SumMinorUnits: req.Sum,
		Status:        status,
		OperationDate: operationDate,
	}, nil
}

// parseOperationDate accepts RFC 3339 and the gateway's own "2006-01-02 15:04:05" layout.
func parseOperationDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339, time.DateTime} {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: operation_date %q", entity.ErrInvalidArgument, s)
}

type CleanupExpiredResponse struct {
	Success bool  `json:"success"`
	Expired int64 `json:"expired"`
}

// CleanupExpired expires stale initiated transactions
// @Summary Expire transactions
// @Description Marks initiated transactions older than the given number of hours as expired
// @Tags callbacks
// @Produce json
// @Param hours query int false "Age in hours" default(24)
// @Success 200 {object} CleanupExpiredResponse
// @Failure 400 {object} ErrorResponse "INVALID_HOURS"
// @Failure 500 {object} ErrorResponse "INTERNAL_SERVER_ERROR"
// @Router /cleanup-expired [get]
// @Security ApiKeyAuth
func (h *Handler) CleanupExpired(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hours := defaultExpireHours

	if v := r.URL.Query().Get("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid hours %q", v), CodeInvalidHours, "hours must be a positive integer")
			return
		}

		hours = n
	}

	n, err := h.callbacks.CleanupExpired(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, CodeInternal, "internal server error")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CleanupExpiredResponse{Success: true, Expired: n})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, CodeInternal, "service is unavailable")
		return
	}
}
