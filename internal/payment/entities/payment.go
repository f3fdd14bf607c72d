package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGateway = errors.New("unknown gateway")
	ErrUnknownMethod  = errors.New("unknown payment method")
)

type GatewayType int

const (
	PayPal GatewayType = iota
	GarminPay
	GooglePay
)

var gatewayNames = map[GatewayType]string{
	PayPal:    "PayPal",
	GarminPay: "GarminPay",
	GooglePay: "GooglePay",
}

// GatewayTypes lists every gateway in declaration order.
func GatewayTypes() []GatewayType {
	return []GatewayType{PayPal, GarminPay, GooglePay}
}

func (t GatewayType) String() string {
	if name, ok := gatewayNames[t]; ok {
		return name
	}
	return fmt.Sprintf("GatewayType(%d)", int(t))
}

func ParseGatewayType(s string) (GatewayType, error) {
	for t, name := range gatewayNames {
		if name == s {
			return t, nil
		}
	}
	return GatewayType(-1), fmt.Errorf("%w: %q", ErrUnknownGateway, s)
}

type Method int

const (
	CreditCard Method = iota
	BankTransfer
	EWallet
)

var methodNames = map[Method]string{
	CreditCard:   "CreditCard",
	BankTransfer: "BankTransfer",
	EWallet:      "EWallet",
}

// Methods lists every payment method in declaration order.
func Methods() []Method {
	return []Method{CreditCard, BankTransfer, EWallet}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return Method(-1), fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

type Charge struct {
	Gateway string `json:"gateway"`
	Method  string `json:"method"`
	Amount  int    `json:"amount"`
}

type Rebind struct {
	Charge
	RebindTo     string `json:"rebindTo"`
	RebindAmount int    `json:"rebindAmount"`
}

type Transcript struct {
	Variant string   `json:"variant,omitempty"`
	Lines   []string `json:"lines"`
}

// NewTranscript splits captured output into lines. Interior blank lines are
// kept; the trailing newline is not turned into an empty line.
func NewTranscript(variant, output string) Transcript {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return Transcript{Variant: variant, Lines: []string{}}
	}
	return Transcript{Variant: variant, Lines: strings.Split(output, "\n")}
}
