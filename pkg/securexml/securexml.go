package securexml

import (
	"strings"

	"github.com/beevik/etree"
)

// MalformedXMLError indicates that a byte stream could not be parsed as
// safe, well-formed XML. This includes documents rejected for carrying
// DOCTYPE or entity constructs, not just syntax errors.
type MalformedXMLError struct {
	Message string
	Cause   error
}

func (e *MalformedXMLError) Error() string {
	msg := "malformed xml: " + e.Message
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *MalformedXMLError) Unwrap() error {
	return e.Cause
}

// Parse reads data into an XML document tree with hardened settings.
//
// The decoder runs in strict mode with no entity table, so entity
// references other than the five predefined XML entities fail the parse
// instead of expanding. Any markup declaration (DOCTYPE, ELEMENT, ENTITY)
// is rejected outright, which closes off XXE and entity-bomb inputs
// before they reach a resolver. External resources are never fetched.
//
// Element tags keep their local name in Tag with the namespace prefix in
// Space, so callers can match by local name regardless of prefix.
//
// A failed parse always returns a *MalformedXMLError; there is no
// partial-tree result.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = false
	doc.ReadSettings.ValidateInput = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &MalformedXMLError{Message: "parse failed", Cause: err}
	}
	if err := rejectDirectives(&doc.Element); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, &MalformedXMLError{Message: "document has no root element"}
	}
	return doc, nil
}

// ParseString is Parse for string input.
func ParseString(text string) (*etree.Document, error) {
	return Parse([]byte(text))
}

// rejectDirectives walks the token tree and fails on any <!...> markup
// declaration, wherever it appears.
func rejectDirectives(el *etree.Element) error {
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.Directive:
			name := directiveName(t.Data)
			return &MalformedXMLError{Message: "document contains a " + name + " declaration, which is not allowed"}
		case *etree.Element:
			if err := rejectDirectives(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func directiveName(data string) string {
	data = strings.TrimSpace(data)
	if i := strings.IndexAny(data, " \t\r\n["); i > 0 {
		data = data[:i]
	}
	if data == "" {
		return "markup"
	}
	return data
}

// Serialize writes a document back to XML text. Text content is escaped
// on write, so caller-supplied values set via SetText cannot alter the
// element structure. Nothing external is ever consulted.
func Serialize(doc *etree.Document) (string, error) {
	out, err := doc.WriteToString()
	if err != nil {
		return "", &MalformedXMLError{Message: "serialize failed", Cause: err}
	}
	return out, nil
}

// Clone returns a deep copy of doc. The copy shares no nodes with the
// original, so mutating it is safe even when the original is shared
// across goroutines.
func Clone(doc *etree.Document) *etree.Document {
	return doc.Copy()
}
