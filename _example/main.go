// Command example builds a camt.054 debit/credit notification, runs it
// through whitespace collapsing and validation, prints it as XML and
// emits the generated OpenAPI schema of the group header.
//
// Run:
//
//	go run ./_example
package main

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"log"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/camt"
	"github.com/codetiger/messages-sub000/common"
	"github.com/codetiger/messages-sub000/schema"
	"github.com/codetiger/messages-sub000/transform"
)

func ptr[T any](v T) *T { return &v }

func main() {
	doc := camt.BankToCustomerDebitCreditNotificationDocument{
		BkToCstmrDbtCdtNtfctn: camt.BankToCustomerDebitCreditNotificationV08{
			GrpHdr: camt.GroupHeader81{
				MsgId:   "  NTFCTN-20240115-0001 ",
				CreDtTm: "2024-01-15T08:30:00Z",
			},
			Ntfctn: []camt.AccountNotification17{
				{
					Id: "NTF-001",
					Acct: common.CashAccount39{
						Id: common.AccountIdentification4Choice{
							IBAN: ptr(common.IBAN2007Identifier("DE89370400440532013000")),
						},
						Ccy: ptr(common.ActiveOrHistoricCurrencyCode("EUR")),
					},
					Ntry: []camt.ReportEntry10{
						{
							Amt:       common.ActiveOrHistoricCurrencyAndAmount{Value: 1250.5, Ccy: "EUR"},
							CdtDbtInd: common.CreditDebitCodeCRDT,
							Sts:       camt.EntryStatus1Choice{Cd: ptr(common.ExternalEntryStatus1Code("BOOK"))},
							BkTxCd: camt.BankTransactionCodeStructure4{
								Domn: &camt.BankTransactionCodeStructure5{
									Cd: "PMNT",
									Fmly: camt.BankTransactionCodeStructure6{
										Cd:        "RCDT",
										SubFmlyCd: "ESCT",
									},
								},
							},
						},
					},
				},
			},
		},
	}

	// Collapse whitespace the way an XML processor would before
	// checking the facets.
	transform.StructCollapse(&doc)

	if err := doc.Validate(); err != nil {
		var verr *messages.ValidationError
		if errors.As(err, &verr) {
			log.Fatalf("invalid message: %s at %s (code %d)", verr.Message, verr.Path, verr.Code)
		}
		log.Fatal(err)
	}

	raw, err := xml.MarshalIndent(&doc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(raw))

	// The same rules that drive Validate document the schema.
	ref, err := schema.NewSchemaRefForValue(&camt.GroupHeader81{})
	if err != nil {
		log.Fatal(err)
	}
	out, err := json.MarshalIndent(ref.Value, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
