package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codetiger/messages-sub000/camt"
	"github.com/codetiger/messages-sub000/common"
)

func TestCollapse(t *testing.T) {
	require.Equal(t, "ACME Industrie GmbH", Collapse("  ACME   Industrie\tGmbH \n"))
	require.Equal(t, "", Collapse("   "))
	require.Equal(t, "a b", Collapse("a b"))
}

func TestStructCollapse(t *testing.T) {
	nm := common.Max140Text("  ACME   Industrie GmbH ")
	pty := common.PartyIdentification135{
		Nm: &nm,
		PstlAdr: &common.PostalAddress24{
			TwnNm: ptr(common.Max35Text(" Frankfurt  am   Main ")),
			AdrLine: []common.Max70Text{
				"  Mainzer   Landstr. 11 ",
			},
		},
	}

	StructCollapse(&pty)

	require.Equal(t, common.Max140Text("ACME Industrie GmbH"), *pty.Nm)
	require.Equal(t, common.Max35Text("Frankfurt am Main"), *pty.PstlAdr.TwnNm)
	require.Equal(t, common.Max70Text("Mainzer Landstr. 11"), pty.PstlAdr.AdrLine[0])
}

func TestStructCollapse_LeavesXMLNameAlone(t *testing.T) {
	doc := camt.InvestigationRequestDocument{}
	doc.XMLName.Space = "urn:iso:std:iso:20022:tech:xsd:camt.111.001.01"
	doc.XMLName.Local = "Document"
	doc.InvstgtnReq.InvstgtnReq.MsgId = "  INVSTGTN  0001 "

	StructCollapse(&doc)

	require.Equal(t, "urn:iso:std:iso:20022:tech:xsd:camt.111.001.01", doc.XMLName.Space)
	require.Equal(t, common.Max35Text("INVSTGTN 0001"), doc.InvstgtnReq.InvstgtnReq.MsgId)
}

func TestStructTrimSpace(t *testing.T) {
	ref := struct {
		Id common.Max35Text
	}{Id: "  REF-1  "}

	StructTrimSpace(&ref)
	require.Equal(t, common.Max35Text("REF-1"), ref.Id)
}

func ptr[T any](v T) *T { return &v }
