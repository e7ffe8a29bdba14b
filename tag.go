/* Package ipp implements the IPP core protocol in pure Go.
 *
 * IPP tags (RFC 2910 §3.5)
 */

package ipp

import "fmt"

// Tag identifies the role of a single byte in the attribute-group
// sequence: either a delimiter (a group boundary or the end-of-groups
// marker) or a value tag (the type of the value that follows).
type Tag int

const (
	// Delimiter tags (RFC 2911 §4.4.15). A delimiter tag is any value
	// < 0x10; IsDelimiter relies on that fact.
	TagZero                   Tag = 0x00 // reserved, never valid on the wire
	TagOperationGroup         Tag = 0x01 // operation-attributes-tag
	TagJobGroup               Tag = 0x02 // job-attributes-tag
	TagEnd                    Tag = 0x03 // end-of-attributes-tag
	TagPrinterGroup           Tag = 0x04 // printer-attributes-tag
	TagUnsupportedGroup       Tag = 0x05 // unsupported-attributes-tag
	TagSubscriptionGroup      Tag = 0x06 // subscription-attributes-tag
	TagEventNotificationGroup Tag = 0x07 // event-notification-attributes-tag
	TagResourceGroup          Tag = 0x08 // resource-attributes-tag
	TagDocumentGroup          Tag = 0x09 // document-attributes-tag
	TagSystemGroup            Tag = 0x0a // system-attributes-tag
	TagFuture11Group          Tag = 0x0b // reserved for a future group
	TagFuture12Group          Tag = 0x0c // reserved for a future group
	TagFuture13Group          Tag = 0x0d // reserved for a future group
	TagFuture14Group          Tag = 0x0e // reserved for a future group
	TagFuture15Group          Tag = 0x0f // reserved for a future group

	// Out-of-band value tags: the value payload is always empty.
	TagUnsupportedValue Tag = 0x10 // unsupported
	TagDefault          Tag = 0x11 // default
	TagUnknown          Tag = 0x12 // unknown
	TagNoValue          Tag = 0x13 // no-value
	TagNotSettable      Tag = 0x15 // not-settable
	TagDeleteAttr       Tag = 0x16 // delete-attribute
	TagAdminDefine      Tag = 0x17 // admin-define

	// Integer family
	TagInteger Tag = 0x21 // integer
	TagBoolean Tag = 0x22 // boolean
	TagEnum    Tag = 0x23 // enum

	// Octet-string family
	TagString          Tag = 0x30 // octetString
	TagDateTime        Tag = 0x31 // dateTime
	TagResolution      Tag = 0x32 // resolution
	TagRange           Tag = 0x33 // rangeOfInteger
	TagBeginCollection Tag = 0x34 // begin-collection
	TagTextLang        Tag = 0x35 // textWithLanguage
	TagNameLang        Tag = 0x36 // nameWithLanguage
	TagEndCollection   Tag = 0x37 // end-collection

	// Character-string family
	TagText           Tag = 0x41 // textWithoutLanguage
	TagName           Tag = 0x42 // nameWithoutLanguage
	TagReservedString Tag = 0x43 // reserved for a future string type
	TagKeyword        Tag = 0x44 // keyword
	TagURI            Tag = 0x45 // uri
	TagURIScheme      Tag = 0x46 // uriScheme
	TagCharset        Tag = 0x47 // charset
	TagLanguage       Tag = 0x48 // naturalLanguage
	TagMimeType       Tag = 0x49 // mimeMediaType
	TagMemberName     Tag = 0x4a // memberAttrName

	// TagExtension escapes to a 32-bit tag carried in the first 4
	// octets of the value payload (RFC 3382). Recognized on decode
	// only: this package never emits it, since every value kind it
	// supports has a base tag of its own.
	TagExtension Tag = 0x7f
)

// IsDelimiter reports whether tag is a group delimiter (including the
// end-of-attributes marker) rather than a value tag.
func (tag Tag) IsDelimiter() bool {
	return tag < 0x10
}

// IsGroup reports whether tag opens an attribute group. TagEnd is a
// delimiter but not a group.
func (tag Tag) IsGroup() bool {
	switch tag {
	case TagOperationGroup, TagJobGroup, TagPrinterGroup,
		TagUnsupportedGroup, TagSubscriptionGroup,
		TagEventNotificationGroup, TagResourceGroup,
		TagDocumentGroup, TagSystemGroup,
		TagFuture11Group, TagFuture12Group, TagFuture13Group,
		TagFuture14Group, TagFuture15Group:
		return true
	}
	return false
}

// groupOrder lists the group tags in the order they are emitted on
// encode. The first four match spec.md's canonical order exactly;
// the rest extend it to the full RFC 2911 group space.
var groupOrder = []Tag{
	TagOperationGroup,
	TagJobGroup,
	TagPrinterGroup,
	TagUnsupportedGroup,
	TagSubscriptionGroup,
	TagEventNotificationGroup,
	TagResourceGroup,
	TagDocumentGroup,
	TagSystemGroup,
	TagFuture11Group,
	TagFuture12Group,
	TagFuture13Group,
	TagFuture14Group,
	TagFuture15Group,
}

// Type returns the Type of Value that corresponds to the tag. It
// returns TypeInvalid for delimiter tags, which never carry a value.
func (tag Tag) Type() Type {
	if tag.IsDelimiter() {
		return TypeInvalid
	}

	switch tag {
	case TagInteger, TagEnum:
		return TypeInteger

	case TagBoolean:
		return TypeBoolean

	case TagUnsupportedValue, TagDefault, TagUnknown, TagNoValue,
		TagNotSettable, TagDeleteAttr, TagAdminDefine, TagEndCollection:
		return TypeVoid

	case TagString:
		return TypeBinary

	case TagDateTime:
		return TypeDateTime

	case TagResolution:
		return TypeResolution

	case TagRange:
		return TypeRange

	case TagTextLang, TagNameLang:
		return TypeTextWithLang

	case TagBeginCollection:
		return TypeCollection

	case TagText, TagName, TagReservedString, TagKeyword, TagURI,
		TagURIScheme, TagCharset, TagLanguage, TagMimeType, TagMemberName:
		return TypeString
	}

	return TypeInvalid
}

// String returns the tag's RFC 8010 keyword name, or a hex literal
// for tags this package doesn't recognize.
func (tag Tag) String() string {
	switch tag {
	case TagZero:
		return "zero"
	case TagOperationGroup:
		return "operation-attributes-tag"
	case TagJobGroup:
		return "job-attributes-tag"
	case TagEnd:
		return "end-of-attributes-tag"
	case TagPrinterGroup:
		return "printer-attributes-tag"
	case TagUnsupportedGroup:
		return "unsupported-attributes-tag"
	case TagSubscriptionGroup:
		return "subscription-attributes-tag"
	case TagEventNotificationGroup:
		return "event-notification-attributes-tag"
	case TagResourceGroup:
		return "resource-attributes-tag"
	case TagDocumentGroup:
		return "document-attributes-tag"
	case TagSystemGroup:
		return "system-attributes-tag"
	case TagFuture11Group, TagFuture12Group, TagFuture13Group,
		TagFuture14Group, TagFuture15Group:
		return fmt.Sprintf("future-attributes-tag-0x%2.2x", int(tag))

	case TagUnsupportedValue:
		return "unsupported"
	case TagDefault:
		return "default"
	case TagUnknown:
		return "unknown"
	case TagNoValue:
		return "no-value"
	case TagNotSettable:
		return "not-settable"
	case TagDeleteAttr:
		return "delete-attribute"
	case TagAdminDefine:
		return "admin-define"
	case TagInteger:
		return "integer"
	case TagBoolean:
		return "boolean"
	case TagEnum:
		return "enum"
	case TagString:
		return "octetString"
	case TagDateTime:
		return "dateTime"
	case TagResolution:
		return "resolution"
	case TagRange:
		return "rangeOfInteger"
	case TagBeginCollection:
		return "collection"
	case TagTextLang:
		return "textWithLanguage"
	case TagNameLang:
		return "nameWithLanguage"
	case TagEndCollection:
		return "endCollection"
	case TagText:
		return "textWithoutLanguage"
	case TagName:
		return "nameWithoutLanguage"
	case TagReservedString:
		return "reservedString"
	case TagKeyword:
		return "keyword"
	case TagURI:
		return "uri"
	case TagURIScheme:
		return "uriScheme"
	case TagCharset:
		return "charset"
	case TagLanguage:
		return "naturalLanguage"
	case TagMimeType:
		return "mimeMediaType"
	case TagMemberName:
		return "memberAttrName"
	case TagExtension:
		return "extensionTag"
	}

	return fmt.Sprintf("0x%2.2x", int(tag))
}
