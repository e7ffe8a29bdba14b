/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Various constants
 */

package ipp

const (
	// DefaultVersion is the IPP version (1.1) a caller can pass to
	// NewRequest/NewResponse when it has no specific requirement.
	DefaultVersion = Version(0x0101)

	// ContentType is the MIME content type for IPP messages, as
	// carried over HTTP. Not used by this package directly, since
	// transport is out of scope, but exported for callers that wrap
	// this codec in an HTTP client or server.
	ContentType = "application/ipp"

	// maxStringLength is the largest length a name, keyword or text
	// field can carry on the wire: lengths are encoded as a signed
	// 16-bit big-endian integer (RFC 2910 §3.5.1).
	maxStringLength = 0x7fff
)
