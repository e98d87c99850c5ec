package common

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
)

func TestActiveOrHistoricCurrencyAndAmount(t *testing.T) {
	amt := ActiveOrHistoricCurrencyAndAmount{Value: 1250.55, Ccy: "EUR"}
	require.Nil(t, amt.Validate())

	neg := ActiveOrHistoricCurrencyAndAmount{Value: -1, Ccy: "EUR"}
	err := neg.Validate()
	requireCode(t, err, messages.CodeBelowMin)
	require.Equal(t, "Value", err.(*messages.ValidationError).Path)

	badCcy := ActiveOrHistoricCurrencyAndAmount{Value: 10, Ccy: "EURO"}
	err = badCcy.Validate()
	requireCode(t, err, messages.CodeBadPattern)
	require.Equal(t, "Ccy", err.(*messages.ValidationError).Path)
}

func TestAmountMarshalsCurrencyAsAttribute(t *testing.T) {
	amt := ActiveOrHistoricCurrencyAndAmount{Value: 150.75, Ccy: "CHF"}
	b, err := xml.Marshal(struct {
		XMLName xml.Name `xml:"Amt"`
		ActiveOrHistoricCurrencyAndAmount
	}{ActiveOrHistoricCurrencyAndAmount: amt})
	require.NoError(t, err)
	require.Equal(t, `<Amt Ccy="CHF">150.75</Amt>`, string(b))
}

func TestNonNegativeDecimalNumber(t *testing.T) {
	require.Nil(t, NonNegativeDecimalNumber(0).Validate())
	requireCode(t, NonNegativeDecimalNumber(-0.5).Validate(), messages.CodeBelowMin)
}

func TestAmountFractionDigits(t *testing.T) {
	amt := ActiveOrHistoricCurrencyAndAmount{Value: 1.123456, Ccy: "EUR"}
	requireCode(t, amt.Validate(), messages.CodeBadFraction)
}

func TestAmountAndDirection35(t *testing.T) {
	ad := AmountAndDirection35{Amt: 100, CdtDbtInd: CreditDebitCodeCRDT}
	require.Nil(t, ad.Validate())

	ad.CdtDbtInd = "CRED"
	err := ad.Validate()
	requireCode(t, err, messages.CodeNotInSet)
	require.Equal(t, "CdtDbtInd", err.(*messages.ValidationError).Path)
}
