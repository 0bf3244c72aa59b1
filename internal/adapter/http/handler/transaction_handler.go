package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/txledger/internal/adapter/http/dto"
	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/usecase"
)

// SubmissionService is the submission port consumed by the handler.
type SubmissionService interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitResult, error)
}

// QueryService is the read port consumed by the handler.
type QueryService interface {
	List(ctx context.Context) ([]*domain.Transaction, error)
	Get(ctx context.Context, id int64) (*domain.Transaction, error)
}

// TransactionHandler handles transaction HTTP requests.
type TransactionHandler struct {
	submissions SubmissionService
	queries     QueryService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(submissions SubmissionService, queries QueryService) *TransactionHandler {
	return &TransactionHandler{submissions: submissions, queries: queries}
}

// Submit processes a transaction submission.
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.submissions.Submit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	if result.WithdrawalTxnID != nil && result.DepositTxnID != nil {
		writeJSON(w, http.StatusCreated, dto.TransferCreatedResponse{
			Message:         "Transfer completed",
			WithdrawalTxnID: *result.WithdrawalTxnID,
			DepositTxnID:    *result.DepositTxnID,
		})

		return
	}

	writeJSON(w, http.StatusCreated, dto.CreatedResponse{
		Message: "Transaction created successfully",
		TxnID:   *result.TxnID,
	})
}

func (h *TransactionHandler) writeSubmitError(w http.ResponseWriter, err error) {
	var dup *domain.DuplicateRequestError
	if errors.As(err, &dup) {
		writeJSON(w, http.StatusConflict, dto.DuplicateResponse{
			Message:       "Duplicate transaction",
			OriginalTxnID: dup.OriginalTxnID,
		})

		return
	}

	var settlement *domain.SettlementError
	if errors.As(err, &settlement) {
		// The rows named here are committed and stay committed; the error
		// tells the caller not to retry under the same correlation key.
		writeJSON(w, http.StatusBadGateway, dto.ErrorResponse{
			Error:  err.Error(),
			Code:   "settlement_failed",
			TxnIDs: settlement.TxnIDs,
		})

		return
	}

	status, code := mapSubmitError(err)
	writeError(w, status, code, err.Error())
}

// List returns all transactions in insertion order.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txns, err := h.queries.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns))
}

// Get returns one transaction by id.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid transaction id")
		return
	}

	txn, err := h.queries.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}

		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}
