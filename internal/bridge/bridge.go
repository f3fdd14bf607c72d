// Package bridge runs the interface-dispatch rendition of the payment
// bridge: every gateway paired with every payment method.
package bridge

import (
	"fmt"
	"io"
	"payment-bridge/internal/payment"
	"payment-bridge/internal/payment/entities"
)

const (
	Header = "---Design pattern: Bridge implementation---"
	Amount = 12345
)

// Gateways returns the full gateway × method cross product, grouped by
// method. Gateways in the same group share one payment value.
func Gateways(w io.Writer) []payment.PaymentGateway {
	var gateways []payment.PaymentGateway
	for _, method := range entities.Methods() {
		p, _ := payment.NewPayment(method, w)
		for _, gatewayType := range entities.GatewayTypes() {
			gw, _ := payment.NewGateway(gatewayType, p, w)
			gateways = append(gateways, gw)
		}
	}
	return gateways
}

func Handle(w io.Writer) {
	HandleAmount(w, Amount)
}

func HandleAmount(w io.Writer, amount int) {
	fmt.Fprintf(w, "%s\n\n", Header)

	for _, gw := range Gateways(w) {
		gw.Process(amount)
	}
}
