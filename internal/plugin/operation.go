package plugin

import (
	"fmt"

	"github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
)

// Operation names a payment lifecycle hook.
type Operation string

const (
	OpAuthorize Operation = "authorize"
	OpCapture   Operation = "capture"
	OpConfirm   Operation = "confirm"
	OpRefund    Operation = "refund"
	OpVoid      Operation = "void"
	OpProcess   Operation = "process"
)

// Operations lists every payment operation in lifecycle order.
var Operations = []Operation{OpAuthorize, OpCapture, OpConfirm, OpRefund, OpVoid, OpProcess}

func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("operation %q: %w", s, errors.ErrUnknownOperation)
}

// RunPaymentOperation calls the hook for op with no previous value.
// A nil response means the plugin did not handle the call.
func RunPaymentOperation(p PaymentGateway, op Operation, info gateway.PaymentData) (*gateway.GatewayResponse, error) {
	switch op {
	case OpAuthorize:
		return p.AuthorizePayment(info, nil), nil
	case OpCapture:
		return p.CapturePayment(info, nil), nil
	case OpConfirm:
		return p.ConfirmPayment(info, nil), nil
	case OpRefund:
		return p.RefundPayment(info, nil), nil
	case OpVoid:
		return p.VoidPayment(info, nil), nil
	case OpProcess:
		return p.ProcessPayment(info, nil), nil
	default:
		return nil, fmt.Errorf("operation %q: %w", op, errors.ErrUnknownOperation)
	}
}
