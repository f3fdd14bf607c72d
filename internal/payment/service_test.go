package payment

import (
	"context"
	"payment-bridge/internal/metrics"
	"payment-bridge/internal/payment/entities"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceProcessPayment(t *testing.T) {
	s := NewPaymentService()
	counter := metrics.PaymentsProcessed.WithLabelValues("GooglePay", "BankTransfer")
	before := testutil.ToFloat64(counter)

	transcript, err := s.ProcessPayment(context.Background(), entities.Charge{
		Gateway: "GooglePay",
		Method:  "BankTransfer",
		Amount:  900,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Process for GooglePay", "Bank transfer payment: 900"}, transcript.Lines)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestServiceProcessPaymentUnknownNames(t *testing.T) {
	s := NewPaymentService()

	_, err := s.ProcessPayment(context.Background(), entities.Charge{Gateway: "Stripe", Method: "CreditCard"})
	assert.ErrorIs(t, err, entities.ErrUnknownGateway)

	_, err = s.ProcessPayment(context.Background(), entities.Charge{Gateway: "PayPal", Method: "Cash"})
	assert.ErrorIs(t, err, entities.ErrUnknownMethod)
}

func TestServiceRebind(t *testing.T) {
	s := NewPaymentService()

	transcript, err := s.Rebind(context.Background(), entities.Rebind{
		Charge:       entities.Charge{Gateway: "PayPal", Method: "CreditCard", Amount: 100},
		RebindTo:     "EWallet",
		RebindAmount: 250,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Process for PayPal",
		"Credit card payment: 100",
		"Process for PayPal",
		"E-Wallet payment: 250",
	}, transcript.Lines)
}

func TestServiceRebindUnknownTarget(t *testing.T) {
	s := NewPaymentService()

	transcript, err := s.Rebind(context.Background(), entities.Rebind{
		Charge:   entities.Charge{Gateway: "PayPal", Method: "CreditCard", Amount: 100},
		RebindTo: "Cheque",
	})

	assert.ErrorIs(t, err, entities.ErrUnknownMethod)
	assert.Empty(t, transcript.Lines)
}
