package payment

import (
	"fmt"
	"io"
	"payment-bridge/internal/payment/entities"
)

// PaymentGateway holds exactly one Payment at a time and forwards every
// Process call to it after announcing itself.
type PaymentGateway interface {
	Process(amount int)
	GetType() entities.GatewayType
	Payment() Payment
	SetPayment(p Payment)
}

type gateway struct {
	payment Payment
	out     io.Writer
}

func (g *gateway) Payment() Payment {
	return g.payment
}

// SetPayment swaps the bound payment; the gateway itself is untouched.
func (g *gateway) SetPayment(p Payment) {
	g.payment = p
}

func (g *gateway) process(name string, amount int) {
	fmt.Fprintf(g.out, "Process for %s\n", name)
	g.payment.Pay(amount)
}

type PayPal struct {
	gateway
}

func NewPayPal(p Payment, w io.Writer) *PayPal {
	return &PayPal{gateway{payment: p, out: writerOrStdout(w)}}
}

func (g *PayPal) Process(amount int) {
	g.process("PayPal", amount)
}

func (g *PayPal) GetType() entities.GatewayType {
	return entities.PayPal
}

type GarminPay struct {
	gateway
}

func NewGarminPay(p Payment, w io.Writer) *GarminPay {
	return &GarminPay{gateway{payment: p, out: writerOrStdout(w)}}
}

func (g *GarminPay) Process(amount int) {
	g.process("GarminPay", amount)
}

func (g *GarminPay) GetType() entities.GatewayType {
	return entities.GarminPay
}

type GooglePay struct {
	gateway
}

func NewGooglePay(p Payment, w io.Writer) *GooglePay {
	return &GooglePay{gateway{payment: p, out: writerOrStdout(w)}}
}

func (g *GooglePay) Process(amount int) {
	g.process("GooglePay", amount)
}

func (g *GooglePay) GetType() entities.GatewayType {
	return entities.GooglePay
}

func NewGateway(gatewayType entities.GatewayType, p Payment, w io.Writer) (PaymentGateway, error) {
	switch gatewayType {
	case entities.PayPal:
		return NewPayPal(p, w), nil
	case entities.GarminPay:
		return NewGarminPay(p, w), nil
	case entities.GooglePay:
		return NewGooglePay(p, w), nil
	}
	return nil, fmt.Errorf("%w: %v", entities.ErrUnknownGateway, gatewayType)
}
