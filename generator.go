/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Validated attribute constructors
 */

package ipp

import "strings"

// isASCII reports whether s contains only US-ASCII bytes, as required
// by the character-string value kinds (RFC 2911 §4.1).
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// MakeInteger builds an "integer" attribute.
func MakeInteger(name string, v int32) Attribute {
	return MakeAttribute(name, TagInteger, Integer(v))
}

// MakeBoolean builds a "boolean" attribute.
func MakeBoolean(name string, v bool) Attribute {
	return MakeAttribute(name, TagBoolean, Boolean(v))
}

// MakeEnum builds an "enum" attribute from a bare integer: same Go
// representation as MakeInteger, different wire tag. The value must be
// in [2, 2^31-1] (0 and 1 are reserved by RFC 2911 §4.1 for "unknown"
// and "unsupported" out-of-band markers, not ordinary enum values).
func MakeEnum(name string, v int32) (Attribute, error) {
	if v < 2 {
		return Attribute{}, wireErrf(0, ErrInvalidInput, "enum value %d out of range [2, 2^31-1]", v)
	}
	return MakeAttribute(name, TagEnum, Integer(v)), nil
}

// MakeEnumLabel builds an "enum" attribute by looking label up in
// labels, an ordered set whose position gives the wire value (the
// first label is enum value 2, the next 3, and so on, keeping 0 and 1
// reserved as MakeEnum does). An unrecognized label is rejected.
func MakeEnumLabel(name, label string, labels []string) (Attribute, error) {
	for i, l := range labels {
		if l == label {
			return MakeAttribute(name, TagEnum, Integer(i+2)), nil
		}
	}
	return Attribute{}, wireErrf(0, ErrInvalidInput, "%q is not a recognized enum label for %q", label, name)
}

// MakeResolution builds a "resolution" attribute. xres and yres must
// be non-negative, and units must be one of the RFC 2911 §4.1 unit
// codes (UnitsDpi, UnitsDpcm).
func MakeResolution(name string, xres, yres int32, units Units) (Attribute, error) {
	if xres < 0 || yres < 0 {
		return Attribute{}, wireErrf(0, ErrInvalidInput, "resolution %dx%d has a negative component", xres, yres)
	}
	if units != UnitsDpi && units != UnitsDpcm {
		return Attribute{}, wireErrf(0, ErrInvalidInput, "resolution unit %d is not perInch or perCm", units)
	}
	return MakeAttribute(name, TagResolution, Resolution{Xres: xres, Yres: yres, Units: units}), nil
}

// MakeRangeOfInteger builds a "rangeOfInteger" attribute. lower and
// upper need not already be ordered; they are swapped if lower > upper.
func MakeRangeOfInteger(name string, lower, upper int32) Attribute {
	if lower > upper {
		lower, upper = upper, lower
	}
	return MakeAttribute(name, TagRange, Range{Lower: lower, Upper: upper})
}

// makeASCIIString builds a character-string attribute of the given
// tag, validating that text is pure US-ASCII (RFC 2911 §4.1: keyword,
// uri, uriScheme, charset, naturalLanguage, mimeMediaType; also used for
// reservedString). Text and name values are not checked here.
func makeASCIIString(name string, tag Tag, text string) (Attribute, error) {
	if !isASCII(text) {
		return Attribute{}, wireErrf(0, ErrInvalidInput, "%s value %q is not US-ASCII", tag, text)
	}
	return MakeAttribute(name, tag, String(text)), nil
}

// MakeKeyword builds a "keyword" attribute.
func MakeKeyword(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagKeyword, value)
}

// MakeURI builds a "uri" attribute.
func MakeURI(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagURI, value)
}

// MakeURIScheme builds a "uriScheme" attribute.
func MakeURIScheme(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagURIScheme, value)
}

// MakeCharset builds a "charset" attribute.
func MakeCharset(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagCharset, value)
}

// MakeNaturalLanguage builds a "naturalLanguage" attribute.
func MakeNaturalLanguage(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagLanguage, value)
}

// MakeMimeMediaType builds a "mimeMediaType" attribute.
func MakeMimeMediaType(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagMimeType, value)
}

// MakeReservedString builds a "reservedString" attribute.
func MakeReservedString(name, value string) (Attribute, error) {
	return makeASCIIString(name, TagReservedString, value)
}

// MakeName builds a "nameWithoutLanguage" attribute (UTF-8 is
// permitted here, unlike the pure-ASCII kinds above).
func MakeName(name, value string) Attribute {
	return MakeAttribute(name, TagName, String(value))
}

// MakeText builds a "textWithoutLanguage" attribute.
func MakeText(name, value string) Attribute {
	return MakeAttribute(name, TagText, String(value))
}

// makeWithLanguage builds a *WithLanguage attribute of the given tag,
// requiring both lang and text to be non-empty once lang is trimmed of
// surrounding whitespace.
func makeWithLanguage(name string, tag Tag, lang, text string) (Attribute, error) {
	if strings.TrimSpace(lang) == "" {
		return Attribute{}, wireErrf(0, ErrInvalidInput, "%s value %q has an empty language tag", tag, name)
	}
	if text == "" {
		return Attribute{}, wireErrf(0, ErrInvalidInput, "%s value %q has an empty text", tag, name)
	}
	return MakeAttribute(name, tag, TextWithLang{Lang: lang, Text: text}), nil
}

// MakeNameWithLanguage builds a "nameWithLanguage" attribute.
func MakeNameWithLanguage(name, lang, text string) (Attribute, error) {
	return makeWithLanguage(name, TagNameLang, lang, text)
}

// MakeTextWithLanguage builds a "textWithLanguage" attribute.
func MakeTextWithLanguage(name, lang, text string) (Attribute, error) {
	return makeWithLanguage(name, TagTextLang, lang, text)
}

// MakeDateTime builds a "dateTime" attribute.
func MakeDateTime(name string, v Time) Attribute {
	return MakeAttribute(name, TagDateTime, v)
}

// MakeOctetString builds an "octetString" attribute.
func MakeOctetString(name string, v []byte) Attribute {
	return MakeAttribute(name, TagString, Binary(v))
}

// MakeNoValue builds an out-of-band "no-value" attribute.
func MakeNoValue(name string) Attribute {
	return MakeAttribute(name, TagNoValue, Void{})
}

// MakeNotSettable builds an out-of-band "not-settable" attribute.
func MakeNotSettable(name string) Attribute {
	return MakeAttribute(name, TagNotSettable, Void{})
}

// MakeDeleteAttribute builds an out-of-band "delete-attribute"
// attribute.
func MakeDeleteAttribute(name string) Attribute {
	return MakeAttribute(name, TagDeleteAttr, Void{})
}

// MakeAdminDefine builds an out-of-band "admin-define" attribute.
func MakeAdminDefine(name string) Attribute {
	return MakeAttribute(name, TagAdminDefine, Void{})
}

// MakeCollection builds a "collection" attribute from its member
// attributes, in order.
func MakeCollection(name string, members ...Attribute) Attribute {
	return MakeAttribute(name, TagBeginCollection, Collection(members))
}
