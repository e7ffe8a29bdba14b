/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Encoder tests
 */

package ipp

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeMessageHeader(t *testing.T) {
	m := NewRequest(MakeVersion(1, 1), OpPrintJob, 0x01020300)
	data, err := m.EncodeBytes()
	if err != nil {
		t.Fatalf("EncodeBytes() failed: %s", err)
	}

	want := []byte{
		0x01, 0x01, // version
		0x00, 0x02, // Print-Job
		0x01, 0x02, 0x03, 0x00, // request id
		uint8(TagEnd),
	}
	if !bytes.Equal(data, want) {
		t.Errorf("EncodeBytes() = % x, want % x", data, want)
	}
}

func TestEncodeMessageHeaderValidation(t *testing.T) {
	m := NewRequest(MakeVersion(1, 1), OpPrintJob, 0)
	if _, err := m.EncodeBytes(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EncodeBytes() with RequestID == 0: err = %v, want ErrInvalidInput", err)
	}

	m = NewRequest(MakeVersion(0, 1), OpPrintJob, 1)
	if _, err := m.EncodeBytes(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EncodeBytes() with Version.Major() == 0: err = %v, want ErrInvalidInput", err)
	}
}

func TestEncodeAttributeNoValue(t *testing.T) {
	m := NewRequest(MakeVersion(1, 1), OpPrintJob, 1)
	m.Operation = Attributes{{Name: "broken"}}

	if _, err := m.EncodeBytes(); err == nil {
		t.Errorf("EncodeBytes() with a valueless attribute: expected an error, got none")
	}
}

func TestEncodeValueTypeMismatch(t *testing.T) {
	m := NewRequest(MakeVersion(1, 1), OpPrintJob, 1)
	m.Operation = Attributes{MakeAttribute("oops", TagInteger, String("not an integer"))}

	if _, err := m.EncodeBytes(); err == nil {
		t.Errorf("EncodeBytes() with mismatched value type: expected an error, got none")
	}
}

func TestEncodeMultiValueAttribute(t *testing.T) {
	attr := MakeAttribute("sides-supported", TagKeyword, String("one-sided"))
	attr.AddValue(TagKeyword, String("two-sided-long-edge"))

	m := NewRequest(MakeVersion(1, 1), OpPrintJob, 1)
	m.Operation = Attributes{attr}

	data, err := m.EncodeBytes()
	if err != nil {
		t.Fatalf("EncodeBytes() failed: %s", err)
	}

	decoded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %s", err)
	}
	if !decoded.Operation.Equal(m.Operation) {
		t.Errorf("round-trip mismatch: got %#v, want %#v", decoded.Operation, m.Operation)
	}
}

func TestEncodeCollectionRoundTrip(t *testing.T) {
	m := NewRequest(MakeVersion(2, 0), OpPrintJob, 1)
	m.Job = Attributes{
		MakeCollection("media-col",
			MakeAttribute("x-dimension", TagInteger, Integer(21000)),
			MakeAttribute("y-dimension", TagInteger, Integer(29700)),
		),
	}

	data, err := m.EncodeBytes()
	if err != nil {
		t.Fatalf("EncodeBytes() failed: %s", err)
	}

	decoded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %s", err)
	}
	if !decoded.Equal(*m) {
		t.Errorf("round-trip mismatch: got %#v, want %#v", decoded, m)
	}
}

func TestEncodeTrailingData(t *testing.T) {
	m := NewRequest(MakeVersion(1, 1), OpPrintJob, 1)
	m.Data = []byte("the document body")

	data, err := m.EncodeBytes()
	if err != nil {
		t.Fatalf("EncodeBytes() failed: %s", err)
	}

	decoded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %s", err)
	}
	if !bytes.Equal(decoded.Data, m.Data) {
		t.Errorf("Data = %q, want %q", decoded.Data, m.Data)
	}
}
