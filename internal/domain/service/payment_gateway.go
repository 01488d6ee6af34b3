package service

import "context"

// PaymentStatus is the processor-reported state of one transaction.
type PaymentStatus string

const (
	// PaymentStatusSuccess means the charge completed.
	PaymentStatusSuccess PaymentStatus = "success"
	// PaymentStatusCancelled means the user abandoned the checkout.
	PaymentStatusCancelled PaymentStatus = "cancelled"
	// PaymentStatusFailed means the processor reported a failure.
	PaymentStatusFailed PaymentStatus = "failed"
	// PaymentStatusPending means the transaction has not resolved yet.
	PaymentStatusPending PaymentStatus = "pending"
)

// InitializeRequest opens a transaction with the payment processor.
// Amounts are integer minor units (kobo, cents) as the processor requires.
type InitializeRequest struct {
	Reference   string
	Email       string
	AmountMinor int64
	Currency    string
}

// InitializeResult carries the processor handoff data back to the caller.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the processor's answer for a transaction reference.
type VerifyResult struct {
	Status         PaymentStatus
	TransactionRef string
	AmountMinor    int64
	Currency       string
	Message        string // processor-provided message, surfaced unchanged on failure
}

// PaymentGateway abstracts the external checkout processor. It is pure
// transport: no business rules live behind this interface.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, req *InitializeRequest) (*InitializeResult, error)
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)
}
