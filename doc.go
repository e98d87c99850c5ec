// Package messages provides the validation substrate for a catalog of
// ISO 20022 message types.
//
// Catalog types live in the sub-packages (common, acmt, auth, camt) and are
// plain value types mirroring the XML schema elements. Simple types expose
// their facet rules through [ValueRuler]:
//
//	func (v Max35Text) ValueRules() []messages.Rule {
//	    return []messages.Rule{messages.Length(1, 35)}
//	}
//
// and validate with [ValidateValue]. Composite types validate field by
// field, short-circuiting on the first failure:
//
//	if err := h.MsgId.Validate(); err != nil {
//	    return messages.AtPath(err, "MsgId")
//	}
//
// Every failure is a [*ValidationError] carrying a numeric code and the
// dotted path of the offending element.
//
// Sub-packages:
//   - common – simple types and composites shared across message families
//   - acmt, auth, camt – message definitions with their Document envelopes
//   - schema – OpenAPI 3 schema generation for catalog types
//   - transform – whitespace normalization for decoded documents
package messages
