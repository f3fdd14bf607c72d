package payment

import (
	"fmt"
	"io"
	"os"
	"payment-bridge/internal/payment/entities"
)

// Payment is the capability side of the bridge: it knows how to pay an
// amount and nothing about the gateway that asked for it.
type Payment interface {
	Pay(amount int)
	Method() entities.Method
}

type CreditCard struct {
	out io.Writer
}

func NewCreditCard(w io.Writer) *CreditCard {
	return &CreditCard{out: writerOrStdout(w)}
}

func (c *CreditCard) Pay(amount int) {
	fmt.Fprintf(c.out, "Credit card payment: %d\n", amount)
}

func (c *CreditCard) Method() entities.Method {
	return entities.CreditCard
}

type BankTransfer struct {
	out io.Writer
}

func NewBankTransfer(w io.Writer) *BankTransfer {
	return &BankTransfer{out: writerOrStdout(w)}
}

func (b *BankTransfer) Pay(amount int) {
	fmt.Fprintf(b.out, "Bank transfer payment: %d\n", amount)
}

func (b *BankTransfer) Method() entities.Method {
	return entities.BankTransfer
}

type EWallet struct {
	out io.Writer
}

func NewEWallet(w io.Writer) *EWallet {
	return &EWallet{out: writerOrStdout(w)}
}

func (e *EWallet) Pay(amount int) {
	fmt.Fprintf(e.out, "E-Wallet payment: %d\n", amount)
}

func (e *EWallet) Method() entities.Method {
	return entities.EWallet
}

func NewPayment(method entities.Method, w io.Writer) (Payment, error) {
	switch method {
	case entities.CreditCard:
		return NewCreditCard(w), nil
	case entities.BankTransfer:
		return NewBankTransfer(w), nil
	case entities.EWallet:
		return NewEWallet(w), nil
	}
	return nil, fmt.Errorf("%w: %v", entities.ErrUnknownMethod, method)
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
