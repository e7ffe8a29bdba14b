/* Package ipp implements the IPP core protocol in pure Go.
 *
 * IPP message decoder
 */

package ipp

import (
	"encoding/binary"
)

// DecoderOptions tunes the decoder's acceptance of otherwise-legal but
// unusual input. The zero value is RFC 2911's default behavior.
type DecoderOptions struct {
	// MaxAttributeName bounds the length, in octets, of attribute
	// names the decoder will accept. Zero selects RFC 2911's
	// 32767-octet maximum (the largest value a signed 16-bit length
	// field can carry anyway).
	MaxAttributeName int

	// DisallowExtensionTag rejects the TagExtension (0x7f) 32-bit
	// tag escape instead of resolving it, for callers enforcing a
	// profile that never uses it.
	DisallowExtensionTag bool
}

// decoder is a cursor over an in-memory byte slice. Unlike an
// io.Reader-backed decoder, it never blocks. The stream header parser
// (stream.go) finds where a header ends with its own length-only scan
// (scanHeaderEnd) and then hands that complete prefix to decodeMessage.
type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) u8() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, wireErr(d.pos, ErrTruncated)
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) u16() (uint16, error) {
	if d.pos+2 > len(d.data) {
		return 0, wireErr(d.pos, ErrTruncated)
	}
	v := binary.BigEndian.Uint16(d.data[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *decoder) i16() (int, error) {
	v, err := d.u16()
	if err != nil {
		return 0, err
	}
	return int(int16(v)), nil
}

func (d *decoder) u32() (uint32, error) {
	if d.pos+4 > len(d.data) {
		return 0, wireErr(d.pos, ErrTruncated)
	}
	v := binary.BigEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if d.pos+n > len(d.data) {
		return nil, wireErr(d.pos, ErrTruncated)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// decodeMessage parses a complete IPP message (header, attribute
// groups, trailing data) from data into m.
func decodeMessage(m *Message, data []byte, opt DecoderOptions) error {
	if len(data) < 8 {
		return wireErr(len(data), ErrTruncated)
	}

	d := &decoder{data: data}

	verRaw, _ := d.u16()
	codeRaw, _ := d.u16()
	idRaw, _ := d.u32()

	m.Version = Version(verRaw)
	m.Code = Code(codeRaw)
	m.RequestID = int32(idRaw)

	var currentGroup *Attributes
	var prevAttr *Attribute

	for {
		if d.pos >= len(d.data) {
			return wireErr(d.pos, ErrTruncated)
		}

		tag := Tag(d.data[d.pos])

		if tag.IsDelimiter() {
			d.pos++

			if tag == TagEnd {
				if len(d.data) > d.pos {
					m.Data = append([]byte(nil), d.data[d.pos:]...)
				}
				return nil
			}

			if !tag.IsGroup() {
				return wireErrf(d.pos-1, ErrUnsupportedGroup, "0x%02x", byte(tag))
			}

			currentGroup = m.group(tag)
			prevAttr = nil
			continue
		}

		name, vtag, value, err := d.decodeAttribute(tag, opt)
		if err != nil {
			return err
		}

		if currentGroup == nil {
			return wireErrf(d.pos, ErrMalformed, "attribute value outside of any group")
		}

		if name == "" {
			if prevAttr == nil {
				return wireErr(d.pos, ErrUnexpectedContinuation)
			}
			prevAttr.AddValue(vtag, value)
		} else {
			currentGroup.Add(Attribute{Name: name})
			prevAttr = &(*currentGroup)[len(*currentGroup)-1]
			prevAttr.AddValue(vtag, value)
		}
	}
}

// decodeAttribute consumes one attribute record: the tag byte (tag
// was already peeked by the caller but not yet consumed), the name
// length/name, and the value length/value. It resolves TagExtension
// and recurses into decodeCollection for TagBeginCollection values.
func (d *decoder) decodeAttribute(tag Tag, opt DecoderOptions) (name string, vtag Tag, value Value, err error) {
	d.pos++ // consume the tag byte

	nameLen, err := d.i16()
	if err != nil {
		return "", 0, nil, err
	}
	if nameLen < 0 {
		return "", 0, nil, wireErrf(d.pos, ErrMalformed, "negative name length %d", nameLen)
	}

	maxName := opt.MaxAttributeName
	if maxName <= 0 {
		maxName = maxStringLength
	}
	if nameLen > maxName {
		return "", 0, nil, wireErrf(d.pos, ErrMalformed,
			"attribute name length %d exceeds limit %d", nameLen, maxName)
	}

	var nameBytes []byte
	if nameLen > 0 {
		nameBytes, err = d.bytes(nameLen)
		if err != nil {
			return "", 0, nil, err
		}
	}

	valLen, err := d.i16()
	if err != nil {
		return "", 0, nil, err
	}
	if valLen < 0 {
		return "", 0, nil, wireErrf(d.pos, ErrMalformed, "negative value length %d", valLen)
	}

	valBytes, err := d.bytes(valLen)
	if err != nil {
		return "", 0, nil, err
	}

	vtag = tag
	if tag == TagExtension {
		if opt.DisallowExtensionTag {
			return "", 0, nil, wireErrf(d.pos, ErrUnsupportedValueTag, "extension tag disallowed")
		}
		if len(valBytes) < 4 {
			return "", 0, nil, wireErrf(d.pos, ErrMalformed, "extension tag value truncated")
		}

		realTag := binary.BigEndian.Uint32(valBytes[:4])
		if realTag > 0x7fffffff {
			return "", 0, nil, wireErrf(d.pos, ErrMalformed, "extension tag out of range")
		}

		vtag = Tag(realTag)
		valBytes = valBytes[4:]
	}

	decodeFn, ok := valueDecoders[vtag]
	if !ok {
		return "", 0, nil, wireErrf(d.pos, ErrUnsupportedValueTag, "%s", vtag)
	}

	value, err = decodeFn(valBytes)
	if err != nil {
		return "", 0, nil, wireErr(d.pos, err)
	}

	if vtag == TagBeginCollection {
		value, err = d.decodeCollection(opt)
		if err != nil {
			return "", 0, nil, err
		}
	}

	return string(nameBytes), vtag, value, nil
}

// decodeCollection consumes the member-attr-name/value pairs that
// follow a begin-collection marker, up to and including the
// terminating end-collection marker, recursing for nested
// collections.
func (d *decoder) decodeCollection(opt DecoderOptions) (Collection, error) {
	var collection Collection

	for {
		if d.pos >= len(d.data) {
			return nil, wireErr(d.pos, ErrTruncated)
		}

		tag := Tag(d.data[d.pos])
		if tag != TagMemberName && tag != TagEndCollection {
			return nil, wireErrf(d.pos, ErrMalformed,
				"expected %s or %s inside collection, got %s",
				TagMemberName, TagEndCollection, tag)
		}

		_, _, nameValue, err := d.decodeAttribute(tag, opt)
		if err != nil {
			return nil, err
		}

		if tag == TagEndCollection {
			return collection, nil
		}

		memberName, ok := nameValue.(String)
		if !ok {
			return nil, wireErrf(d.pos, ErrMalformed, "member-attr-name value must be a string")
		}

		if d.pos >= len(d.data) {
			return nil, wireErr(d.pos, ErrTruncated)
		}

		memberTagByte := Tag(d.data[d.pos])
		if memberTagByte.IsDelimiter() || memberTagByte == TagMemberName ||
			memberTagByte == TagEndCollection {
			return nil, wireErrf(d.pos, ErrMalformed,
				"unexpected %s as collection member value", memberTagByte)
		}

		_, memberTag, memberValue, err := d.decodeAttribute(memberTagByte, opt)
		if err != nil {
			return nil, err
		}

		member := Attribute{Name: string(memberName)}
		member.AddValue(memberTag, memberValue)
		collection = append(collection, member)
	}
}
