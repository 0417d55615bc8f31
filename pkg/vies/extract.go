package vies

import (
	"github.com/beevik/etree"
)

// extract pulls the check result out of a parsed response document.
//
// The checkVatResponse element is matched anywhere in the tree by local
// name, so any SOAP envelope wrapping and any namespace prefixes the
// service happens to use are tolerated. A document without a
// checkVatResponse/valid element is not an error; it maps to the
// "no opinion" result with Valid false and no name or address.
//
// Valid is true only when the element text is exactly "true". The
// service contract does not promise any other casing, and the check is
// deliberately kept exact rather than parsed as a boolean.
func extract(doc *etree.Document) CheckResponse {
	resp := doc.FindElement("//checkVatResponse")
	if resp == nil {
		return CheckResponse{}
	}
	valid := resp.SelectElement("valid")
	if valid == nil {
		return CheckResponse{}
	}

	out := CheckResponse{Valid: valid.Text() == "true"}
	if name := resp.SelectElement("name"); name != nil {
		out.Name = name.Text()
	}
	if address := resp.SelectElement("address"); address != nil {
		out.Address = address.Text()
	}
	return out
}
