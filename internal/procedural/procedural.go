// Package procedural is the same bridge expressed with plain records and
// function values instead of interfaces.
package procedural

import (
	"fmt"
	"io"
)

const (
	Header    = "--- Dynamic Bridge (function tables) ---"
	Separator = "-------------------------"
	Rebinding = "--- Changing Payment dynamically ---"

	Amount       = 100
	RebindAmount = 250
)

type PayFunc func(w io.Writer, p *Payment, amount int)

type Payment struct {
	Name string
	Pay  PayFunc
}

type ProcessFunc func(w io.Writer, g *Gateway, amount int)

// Gateway points at its payment; reassigning Payment rebinds it.
type Gateway struct {
	Name    string
	Payment *Payment
	Process ProcessFunc
}

func CreditCardPay(w io.Writer, p *Payment, amount int) {
	fmt.Fprintf(w, "%s payment: %d\n", p.Name, amount)
}

func BankTransferPay(w io.Writer, p *Payment, amount int) {
	fmt.Fprintf(w, "%s payment: %d\n", p.Name, amount)
}

func EWalletPay(w io.Writer, p *Payment, amount int) {
	fmt.Fprintf(w, "%s payment: %d\n", p.Name, amount)
}

func PayPalProcess(w io.Writer, g *Gateway, amount int) {
	fmt.Fprintf(w, "[%s] Processing payment...\n", g.Name)
	g.Payment.Pay(w, g.Payment, amount)
}

func GarminPayProcess(w io.Writer, g *Gateway, amount int) {
	fmt.Fprintf(w, "[%s] Processing payment...\n", g.Name)
	g.Payment.Pay(w, g.Payment, amount)
}

func GooglePayProcess(w io.Writer, g *Gateway, amount int) {
	fmt.Fprintf(w, "[%s] Processing payment...\n", g.Name)
	g.Payment.Pay(w, g.Payment, amount)
}

func Handle(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", Header)

	creditCard := &Payment{Name: "CreditCard", Pay: CreditCardPay}
	bankTransfer := &Payment{Name: "BankTransfer", Pay: BankTransferPay}
	eWallet := &Payment{Name: "EWallet", Pay: EWalletPay}

	gateways := []Gateway{
		{Name: "PayPal", Payment: creditCard, Process: PayPalProcess},
		{Name: "GarminPay", Payment: creditCard, Process: GarminPayProcess},
		{Name: "GooglePay", Payment: bankTransfer, Process: GooglePayProcess},
		{Name: "PayPal", Payment: bankTransfer, Process: PayPalProcess},
		{Name: "GarminPay", Payment: eWallet, Process: GarminPayProcess},
	}

	for i := range gateways {
		gateways[i].Process(w, &gateways[i], Amount)
		fmt.Fprintln(w, Separator)
	}

	fmt.Fprintf(w, "\n%s\n", Rebinding)
	gateways[0].Payment = bankTransfer
	gateways[0].Process(w, &gateways[0], RebindAmount)
}
