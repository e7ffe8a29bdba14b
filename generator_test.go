/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Validated attribute constructor tests
 */

package ipp

import (
	"errors"
	"testing"
)

func TestMakeUnconditional(t *testing.T) {
	tests := []struct {
		attr Attribute
		want Attribute
	}{
		{MakeInteger("copies", 3), MakeAttribute("copies", TagInteger, Integer(3))},
		{MakeBoolean("color-supported", true), MakeAttribute("color-supported", TagBoolean, Boolean(true))},
		{
			MakeRangeOfInteger("copies-supported", 1, 99),
			MakeAttribute("copies-supported", TagRange, Range{1, 99}),
		},
		{
			MakeRangeOfInteger("copies-supported", 99, 1),
			MakeAttribute("copies-supported", TagRange, Range{1, 99}),
		},
		{MakeName("job-name", "report.pdf"), MakeAttribute("job-name", TagName, String("report.pdf"))},
		{MakeText("status-message", "ok"), MakeAttribute("status-message", TagText, String("ok"))},
		{MakeOctetString("data", []byte{1, 2, 3}), MakeAttribute("data", TagString, Binary{1, 2, 3})},
		{MakeNoValue("media-ready"), MakeAttribute("media-ready", TagNoValue, Void{})},
		{MakeNotSettable("job-id"), MakeAttribute("job-id", TagNotSettable, Void{})},
		{MakeDeleteAttribute("job-message"), MakeAttribute("job-message", TagDeleteAttr, Void{})},
		{MakeAdminDefine("printer-uri"), MakeAttribute("printer-uri", TagAdminDefine, Void{})},
	}

	for _, test := range tests {
		if !test.attr.Equal(test.want) {
			t.Errorf("got %#v, want %#v", test.attr, test.want)
		}
	}
}

func TestMakeEnum(t *testing.T) {
	attr, err := MakeEnum("orientation-requested", 3)
	if err != nil {
		t.Fatalf("MakeEnum(3) failed: %s", err)
	}
	want := MakeAttribute("orientation-requested", TagEnum, Integer(3))
	if !attr.Equal(want) {
		t.Errorf("MakeEnum(3) = %#v, want %#v", attr, want)
	}

	for _, v := range []int32{0, 1, -1} {
		if _, err := MakeEnum("orientation-requested", v); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("MakeEnum(%d): err = %v, want ErrInvalidInput", v, err)
		}
	}
}

func TestMakeEnumLabel(t *testing.T) {
	labels := []string{"portrait", "landscape", "reverse-landscape"}

	attr, err := MakeEnumLabel("orientation-requested", "landscape", labels)
	if err != nil {
		t.Fatalf("MakeEnumLabel(landscape) failed: %s", err)
	}
	want := MakeAttribute("orientation-requested", TagEnum, Integer(3))
	if !attr.Equal(want) {
		t.Errorf("MakeEnumLabel(landscape) = %#v, want %#v", attr, want)
	}

	if _, err := MakeEnumLabel("orientation-requested", "upside-down", labels); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MakeEnumLabel(upside-down): err = %v, want ErrInvalidInput", err)
	}
}

func TestMakeResolution(t *testing.T) {
	attr, err := MakeResolution("printer-resolution", 300, 300, UnitsDpi)
	if err != nil {
		t.Fatalf("MakeResolution(300, 300, dpi) failed: %s", err)
	}
	want := MakeAttribute("printer-resolution", TagResolution, Resolution{300, 300, UnitsDpi})
	if !attr.Equal(want) {
		t.Errorf("MakeResolution(300, 300, dpi) = %#v, want %#v", attr, want)
	}

	if _, err := MakeResolution("printer-resolution", -1, 300, UnitsDpi); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MakeResolution(-1, 300, dpi): err = %v, want ErrInvalidInput", err)
	}
	if _, err := MakeResolution("printer-resolution", 300, 300, Units(0)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MakeResolution(300, 300, 0): err = %v, want ErrInvalidInput", err)
	}
}

func TestMakeWithLanguage(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, string, string) (Attribute, error)
		tag  Tag
	}{
		{"job-name", MakeNameWithLanguage, TagNameLang},
		{"status-message", MakeTextWithLanguage, TagTextLang},
	}

	for _, test := range tests {
		attr, err := test.fn(test.name, "en-us", "report")
		if err != nil {
			t.Errorf("%s(%q, en-us, report) failed: %s", test.tag, test.name, err)
			continue
		}
		want := MakeAttribute(test.name, test.tag, TextWithLang{"en-us", "report"})
		if !attr.Equal(want) {
			t.Errorf("%s = %#v, want %#v", test.tag, attr, want)
		}

		if _, err := test.fn(test.name, "", "report"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s with empty language: err = %v, want ErrInvalidInput", test.tag, err)
		}
		if _, err := test.fn(test.name, "   ", "report"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s with blank language: err = %v, want ErrInvalidInput", test.tag, err)
		}
		if _, err := test.fn(test.name, "en-us", ""); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s with empty text: err = %v, want ErrInvalidInput", test.tag, err)
		}
	}
}

func TestMakeASCIIString(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, string) (Attribute, error)
		tag  Tag
	}{
		{"sides-supported", MakeKeyword, TagKeyword},
		{"printer-uri", MakeURI, TagURI},
		{"uri-security-supported", MakeURIScheme, TagURIScheme},
		{"attributes-charset", MakeCharset, TagCharset},
		{"attributes-natural-language", MakeNaturalLanguage, TagLanguage},
		{"document-format", MakeMimeMediaType, TagMimeType},
		{"compression", MakeReservedString, TagReservedString},
	}

	for _, test := range tests {
		attr, err := test.fn(test.name, "value")
		if err != nil {
			t.Errorf("%s(%q, %q) failed: %s", test.tag, test.name, "value", err)
			continue
		}
		want := MakeAttribute(test.name, test.tag, String("value"))
		if !attr.Equal(want) {
			t.Errorf("%s = %#v, want %#v", test.tag, attr, want)
		}

		_, err = test.fn(test.name, "café")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s with non-ASCII value: err = %v, want ErrInvalidInput", test.tag, err)
		}
	}
}

func TestMakeCollection(t *testing.T) {
	attr := MakeCollection("media-col",
		MakeAttribute("x-dimension", TagInteger, Integer(21000)),
		MakeAttribute("y-dimension", TagInteger, Integer(29700)),
	)

	want := MakeAttribute("media-col", TagBeginCollection, Collection{
		MakeAttribute("x-dimension", TagInteger, Integer(21000)),
		MakeAttribute("y-dimension", TagInteger, Integer(29700)),
	})

	if !attr.Equal(want) {
		t.Errorf("MakeCollection() = %#v, want %#v", attr, want)
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"hello", true},
		{"hello", true},
		{"hello", false},
		{"café", false},
	}

	for _, test := range tests {
		if got := isASCII(test.s); got != test.want {
			t.Errorf("isASCII(%q) = %v, want %v", test.s, got, test.want)
		}
	}
}
