/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Streaming header parser
 */

package ipp

import "encoding/binary"

type streamState int

const (
	streamCollecting streamState = iota
	streamPassThrough
	streamEnded
)

// StreamParser incrementally parses the header of an IPP message
// (everything through the end-of-attributes marker) out of arbitrary
// byte chunks, without ever buffering the document body that follows.
// It is single-threaded cooperative: Write runs its scan to
// completion before returning and never blocks.
//
// Set OnHeader and OnBody before the first Write. OnHeader fires
// exactly once, before any OnBody delivery; the state machine
// (Collecting -> PassThrough -> Ended) makes that a structural
// guarantee rather than something that needs a sync.Once guard.
type StreamParser struct {
	// Opt controls the decoder invoked once the header is complete.
	Opt DecoderOptions

	onHeader func(*Message)
	onBody   func([]byte)
	logger   Logger

	state streamState
	buf   []byte
	err   error
}

// NewStreamParser returns a StreamParser ready for use, logging
// nowhere until SetLogger is called.
func NewStreamParser() *StreamParser {
	return &StreamParser{logger: nullLogger{}}
}

// SetLogger installs a Logger for tracing scan progress. A nil logger
// is ignored.
func (p *StreamParser) SetLogger(l Logger) {
	if l != nil {
		p.logger = l
	}
}

// OnHeader registers the callback invoked once with the parsed
// message as soon as the header is complete.
func (p *StreamParser) OnHeader(fn func(*Message)) {
	p.onHeader = fn
}

// OnBody registers the callback invoked with each chunk of document
// body bytes, in order, once the header has been delivered.
func (p *StreamParser) OnBody(fn func([]byte)) {
	p.onBody = fn
}

// Write feeds the next chunk of input. It never blocks: while still
// collecting the header it either completes the scan (firing
// OnHeader and, if the chunk carried bytes past the header, OnBody)
// or buffers the chunk and waits for more. Once the header is
// complete, chunks pass straight to OnBody.
func (p *StreamParser) Write(chunk []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}

	switch p.state {
	case streamEnded:
		p.err = wireErrf(0, ErrInvalidInput, "write after stream parser closed")
		return 0, p.err

	case streamPassThrough:
		if len(chunk) > 0 && p.onBody != nil {
			p.onBody(chunk)
		}
		return len(chunk), nil
	}

	p.buf = append(p.buf, chunk...)
	p.logger.Debugf("stream: collecting, %d bytes buffered", len(p.buf))

	end, ok := scanHeaderEnd(p.buf)
	if !ok {
		return len(chunk), nil
	}

	m := &Message{}
	if err := decodeMessage(m, p.buf[:end], p.Opt); err != nil {
		p.err = err
		p.state = streamEnded
		return 0, err
	}

	rest := append([]byte(nil), p.buf[end:]...)
	p.buf = nil
	p.state = streamPassThrough

	p.logger.Debugf("stream: header complete at offset %d", end)
	if p.onHeader != nil {
		p.onHeader(m)
	}
	if len(rest) > 0 && p.onBody != nil {
		p.onBody(rest)
	}

	return len(chunk), nil
}

// Close signals that no more input is coming. It returns
// ErrPrematureEnd if the header was never completed, matching a
// client hanging up mid-request.
func (p *StreamParser) Close() error {
	if p.state == streamCollecting {
		p.state = streamEnded
		p.err = ErrPrematureEnd
		return ErrPrematureEnd
	}
	p.state = streamEnded
	return nil
}

// scanHeaderEnd runs the loose end-of-header scan described by the
// stream parser's contract: alternating expectGroup/expectAttribute
// sub-states starting at offset 8, returning the offset just past the
// end-of-attributes marker once found. It deliberately does not
// validate that tags are legitimate beyond the delimiter/group
// distinction — a strict scan here would duplicate the decoder, which
// is what actually rejects malformed structure once the full prefix
// is handed to it.
func scanHeaderEnd(buf []byte) (int, bool) {
	pos := 8
	expectAttr := false

	for {
		if pos >= len(buf) {
			return 0, false
		}

		if !expectAttr {
			tag := Tag(buf[pos])

			if tag == TagEnd {
				return pos + 1, true
			}
			if !tag.IsGroup() {
				return 0, false
			}

			pos++
			expectAttr = true
			continue
		}

		tag := Tag(buf[pos])
		if tag.IsDelimiter() {
			expectAttr = false
			continue
		}
		pos++

		if pos+2 > len(buf) {
			return 0, false
		}
		nameLen := int(int16(binary.BigEndian.Uint16(buf[pos:])))
		pos += 2
		if nameLen < 0 || pos+nameLen > len(buf) {
			return 0, false
		}
		pos += nameLen

		if pos+2 > len(buf) {
			return 0, false
		}
		valLen := int(int16(binary.BigEndian.Uint16(buf[pos:])))
		pos += 2
		if valLen < 0 || pos+valLen > len(buf) {
			return 0, false
		}
		pos += valLen
	}
}
