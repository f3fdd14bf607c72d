package payment

import (
	"bytes"
	"context"
	"payment-bridge/internal/metrics"
	"payment-bridge/internal/payment/entities"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("payment-bridge/payment")

type Service struct{}

func NewPaymentService() *Service {
	return &Service{}
}

// ProcessPayment binds the requested method to the requested gateway, runs
// one Process call and returns what it printed.
func (s *Service) ProcessPayment(ctx context.Context, charge entities.Charge) (entities.Transcript, error) {
	var buf bytes.Buffer
	gw, err := s.bind(&buf, charge.Gateway, charge.Method)
	if err != nil {
		return entities.Transcript{}, err
	}

	s.process(ctx, gw, charge.Amount)
	return entities.NewTranscript("", buf.String()), nil
}

// Rebind processes once with the original method, swaps the gateway's
// payment in place and processes again.
func (s *Service) Rebind(ctx context.Context, req entities.Rebind) (entities.Transcript, error) {
	var buf bytes.Buffer
	gw, err := s.bind(&buf, req.Gateway, req.Method)
	if err != nil {
		return entities.Transcript{}, err
	}
	method, err := entities.ParseMethod(req.RebindTo)
	if err != nil {
		return entities.Transcript{}, err
	}
	next, err := NewPayment(method, &buf)
	if err != nil {
		return entities.Transcript{}, err
	}

	s.process(ctx, gw, req.Amount)
	gw.SetPayment(next)
	s.process(ctx, gw, req.RebindAmount)
	return entities.NewTranscript("", buf.String()), nil
}

func (s *Service) bind(buf *bytes.Buffer, gatewayName, methodName string) (PaymentGateway, error) {
	gatewayType, err := entities.ParseGatewayType(gatewayName)
	if err != nil {
		return nil, err
	}
	method, err := entities.ParseMethod(methodName)
	if err != nil {
		return nil, err
	}
	p, err := NewPayment(method, buf)
	if err != nil {
		return nil, err
	}
	return NewGateway(gatewayType, p, buf)
}

func (s *Service) process(ctx context.Context, gw PaymentGateway, amount int) {
	gatewayName := gw.GetType().String()
	methodName := gw.Payment().Method().String()

	_, span := tracer.Start(ctx, "payment.Process")
	span.SetAttributes(
		attribute.String("payment.gateway", gatewayName),
		attribute.String("payment.method", methodName),
		attribute.Int("payment.amount", amount),
	)
	defer span.End()

	gw.Process(amount)
	metrics.PaymentsProcessed.WithLabelValues(gatewayName, methodName).Inc()
}
