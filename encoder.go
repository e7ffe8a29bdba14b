/* Package ipp implements the IPP core protocol in pure Go.
 *
 * IPP message encoder
 */

package ipp

import (
	"bytes"
	"errors"
	"fmt"
)

// messageEncoder accumulates a message's wire representation into an
// in-memory buffer. Encoding never needs to block or flush partway
// through, so a bytes.Buffer is simpler than threading an io.Writer
// and its error returns through every helper.
type messageEncoder struct {
	out bytes.Buffer
}

// encodeMessage serializes m to its RFC 2910 wire representation.
func encodeMessage(m *Message) ([]byte, error) {
	if err := validateHeader(m); err != nil {
		return nil, err
	}

	me := &messageEncoder{}

	me.encodeU16(uint16(m.Version))
	me.encodeU16(uint16(m.Code))
	me.encodeU32(uint32(m.RequestID))

	for _, grp := range m.groupsInOrder() {
		me.encodeTag(grp.Tag)
		for _, attr := range grp.Attrs {
			if attr.Name == "" {
				return nil, errors.New("attribute without name")
			}
			if err := me.encodeAttr(attr); err != nil {
				return nil, err
			}
		}
	}

	me.encodeTag(TagEnd)
	me.out.Write(m.Data)

	return me.out.Bytes(), nil
}

// validateHeader checks the fields spec.md §4.4 step 1 requires before
// any bytes are written: major must be nonzero (minor is unconstrained,
// any uint8 value is valid), and RequestID must be nonzero.
func validateHeader(m *Message) error {
	if m.Version.Major() == 0 {
		return wireErrf(0, ErrInvalidInput, "version major %d out of range 1..255", m.Version.Major())
	}
	if m.RequestID == 0 {
		return wireErrf(0, ErrInvalidInput, "request id must be non-zero")
	}
	return nil
}

// encodeAttr writes one attribute's wire representation: a sequence
// of tag/name/value records, the first carrying the name, each
// additional value (a "1setOf" continuation) carrying an empty name.
func (me *messageEncoder) encodeAttr(attr Attribute) error {
	if len(attr.Values) == 0 {
		return fmt.Errorf("attribute %q without value", attr.Name)
	}

	name := attr.Name
	for _, val := range attr.Values {
		me.encodeTag(val.T)

		if err := me.encodeName(name); err != nil {
			return err
		}
		if err := me.encodeValue(val.T, val.V); err != nil {
			return err
		}

		name = ""
	}

	return nil
}

func (me *messageEncoder) encodeU8(v uint8) {
	me.out.WriteByte(v)
}

func (me *messageEncoder) encodeU16(v uint16) {
	me.out.Write([]byte{byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeU32(v uint32) {
	me.out.Write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeTag(tag Tag) {
	me.encodeU8(byte(tag))
}

func (me *messageEncoder) encodeName(name string) error {
	if len(name) > maxStringLength {
		return fmt.Errorf("attribute name exceeds %d bytes", maxStringLength)
	}
	me.encodeU16(uint16(len(name)))
	me.out.WriteString(name)
	return nil
}

// encodeValue writes a single value's length-prefixed payload after
// checking that its Go type matches what tag requires on the wire.
func (me *messageEncoder) encodeValue(tag Tag, v Value) error {
	tagType := tag.Type()
	switch tagType {
	case TypeInvalid:
		return fmt.Errorf("tag %s cannot carry a value", tag)
	case TypeVoid:
		v = Void{}
	default:
		if tagType != v.Type() {
			return fmt.Errorf("tag %s requires a %s value, got %s", tag, tagType, v.Type())
		}
	}

	data, err := v.encode()
	if err != nil {
		return err
	}
	if len(data) > maxStringLength {
		return fmt.Errorf("attribute value exceeds %d bytes", maxStringLength)
	}

	me.encodeU16(uint16(len(data)))
	me.out.Write(data)

	if collection, ok := v.(Collection); ok {
		return me.encodeCollection(collection)
	}

	return nil
}

// encodeCollection writes a collection's members as member-attr-name
// / value pairs, terminated by an end-collection marker, per RFC
// 3382. Nested collections recurse through encodeValue/encodeAttr.
func (me *messageEncoder) encodeCollection(collection Collection) error {
	for _, attr := range collection {
		if attr.Name == "" {
			return errors.New("collection member without name")
		}

		if err := me.encodeAttr(MakeAttribute("", TagMemberName, String(attr.Name))); err != nil {
			return err
		}
		if err := me.encodeAttr(Attribute{Name: "", Values: attr.Values}); err != nil {
			return err
		}
	}

	return me.encodeAttr(MakeAttribute("", TagEndCollection, Void{}))
}
