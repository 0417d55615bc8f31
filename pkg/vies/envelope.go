package vies

import (
	"github.com/beevik/etree"

	"github.com/getmockd/vatcheck/pkg/securexml"
)

// envelopeTemplateXML is the fixed SOAP 1.1 request skeleton for the
// checkVat operation. The two empty elements are filled per call.
const envelopeTemplateXML = `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<soapenv:Header/>` +
	`<soapenv:Body>` +
	`<checkVat xmlns="urn:ec.europa.eu:taxud:vies:services:checkVat:types">` +
	`<countryCode/><vatNumber/>` +
	`</checkVat>` +
	`</soapenv:Body>` +
	`</soapenv:Envelope>`

// envelopeTemplate is parsed once and shared by every call. It must
// never be mutated; buildEnvelope clones it first.
var envelopeTemplate = mustEnvelopeTemplate()

func mustEnvelopeTemplate() *etree.Document {
	doc, err := securexml.ParseString(envelopeTemplateXML)
	if err != nil {
		panic("vies: invalid envelope template: " + err.Error())
	}
	return doc
}

// buildEnvelope produces the request body for one checkVat call. The
// caller values are set as element text on an independent clone of the
// shared template; serialization escapes them, so values containing
// XML metacharacters stay plain text and cannot alter the structure.
func buildEnvelope(countryCode, vatNumber string) (string, error) {
	doc := securexml.Clone(envelopeTemplate)
	setPlaceholder(doc, "countryCode", countryCode)
	setPlaceholder(doc, "vatNumber", vatNumber)
	return securexml.Serialize(doc)
}

func setPlaceholder(doc *etree.Document, tag, value string) {
	el := doc.FindElement("//" + tag)
	if el == nil {
		// The template is a compile-time literal; a missing placeholder
		// is a broken build, not a runtime condition.
		panic("vies: envelope template is missing element " + tag)
	}
	el.SetText(value)
}
