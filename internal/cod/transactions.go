// Package cod builds the gateway responses for cash on delivery payments.
// Cash is settled offline, so every operation succeeds without calling anything.
package cod

import (
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
)

// Authorize performs an authorize transaction.
func Authorize(info gateway.PaymentData, config gateway.GatewayConfig) gateway.GatewayResponse {
	return gateway.GatewayResponse{
		Error:          nil,
		IsSuccess:      true,
		ActionRequired: false,
		Kind:           gateway.KindAuth,
		Amount:         info.Amount,
		Currency:       string(info.Currency),
		TransactionID:  info.Token,
	}
}

// Void performs a void transaction.
func Void(info gateway.PaymentData, config gateway.GatewayConfig) gateway.GatewayResponse {
	return gateway.GatewayResponse{
		Error:          nil,
		IsSuccess:      true,
		ActionRequired: false,
		Kind:           gateway.KindVoid,
		Amount:         info.Amount,
		Currency:       string(info.Currency),
		TransactionID:  info.Token,
	}
}

// Capture performs a capture transaction.
func Capture(info gateway.PaymentData, config gateway.GatewayConfig) gateway.GatewayResponse {
	return gateway.GatewayResponse{
		Error:          nil,
		IsSuccess:      true,
		ActionRequired: false,
		Kind:           gateway.KindCapture,
		Amount:         info.Amount,
		Currency:       string(info.Currency),
		TransactionID:  info.Token,
	}
}

// Confirm performs a confirm transaction.
//
// The response is tagged as a capture, not as a confirm.
func Confirm(info gateway.PaymentData, config gateway.GatewayConfig) gateway.GatewayResponse {
	return gateway.GatewayResponse{
		Error:          nil,
		IsSuccess:      true,
		ActionRequired: false,
		Kind:           gateway.KindCapture,
		Amount:         info.Amount,
		Currency:       info.Currency.String(),
		TransactionID:  info.Token,
	}
}

func Refund(info gateway.PaymentData, config gateway.GatewayConfig) gateway.GatewayResponse {
	return gateway.GatewayResponse{
		Error:          nil,
		IsSuccess:      true,
		ActionRequired: false,
		Kind:           gateway.KindRefund,
		Amount:         info.Amount,
		Currency:       string(info.Currency),
		TransactionID:  info.Token,
	}
}

// ProcessPayment treats a submitted cash payment as authorized.
func ProcessPayment(info gateway.PaymentData, config gateway.GatewayConfig) gateway.GatewayResponse {
	return Authorize(info, config)
}
