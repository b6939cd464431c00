package sdf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ============================================================
// XML Encoding
// ============================================================

// DefaultVersion is the format version written by NewDocument.
const DefaultVersion = "1.6"

const indentUnit = "  "

// NewDocument создает корневой элемент <sdf version="...">.
func NewDocument(version string) *Element {
	if version == "" {
		version = DefaultVersion
	}
	return NewElement("sdf").Set("version", version)
}

// Encode writes e as indented XML with an XML header. An element that
// carries both text and children is written without added whitespace
// inside it, so its text reads back unchanged (<axis>1 0 0<limit>...).
func Encode(w io.Writer, e *Element) error {
	if e == nil {
		return fmt.Errorf("element is nil")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := encodeElement(&buf, e, 0, true); err != nil {
		return fmt.Errorf("encode %s: %w", e.Tag, err)
	}
	buf.WriteString("\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// Marshal is Encode into a byte slice.
func Marshal(e *Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeElement(buf *bytes.Buffer, e *Element, depth int, indent bool) error {
	if indent {
		buf.WriteString(strings.Repeat(indentUnit, depth))
	}

	buf.WriteString("<" + e.Tag)
	for _, a := range e.Attrs {
		buf.WriteString(" " + a.Name + `="`)
		if err := xml.EscapeText(buf, []byte(a.Value)); err != nil {
			return err
		}
		buf.WriteString(`"`)
	}
	buf.WriteString(">")

	if err := xml.EscapeText(buf, []byte(e.Text)); err != nil {
		return err
	}

	// mixed content: children go inline
	childIndent := indent && e.Text == ""
	for _, child := range e.Children {
		if childIndent {
			buf.WriteString("\n")
		}
		if err := encodeElement(buf, child, depth+1, childIndent); err != nil {
			return err
		}
	}
	if childIndent && len(e.Children) > 0 {
		buf.WriteString("\n" + strings.Repeat(indentUnit, depth))
	}

	buf.WriteString("</" + e.Tag + ">")
	return nil
}
