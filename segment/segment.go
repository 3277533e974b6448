/*
Package segment splits sentences into the tokens a parser looks up in its
lexicon.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of text. Similar to Scanner's Scan() function, successive
calls to a segmenter's Next() method will step through the 'segments' of
the input. Clients are able to get the runes of the segment by calling
Bytes() or Text().

Clients may provide one or more Breakers to decide which code-points
separate segments. Separating code-points never become part of a segment,
and runs of separators do not produce empty segments.

  segmenter := segment.NewSegmenter()   // breaks at whitespace
  segmenter.Init(strings.NewReader("eat a clean apple"))
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

For the common case of splitting a string there is function Words.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Breaker decides which code-points separate segments.
type Breaker interface {
	Separates(r rune) bool
}

// WhitespaceBreaker separates segments at Unicode white space.
type WhitespaceBreaker struct{}

// Separates is true for white space code-points.
func (WhitespaceBreaker) Separates(r rune) bool {
	return unicode.IsSpace(r)
}

// BreakerFunc adapts an ordinary function to a Breaker.
type BreakerFunc func(rune) bool

// Separates calls f(r).
func (f BreakerFunc) Separates(r rune) bool {
	return f(r)
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into smaller parts, called segments.
type Segmenter struct {
	reader        io.RuneReader // where we get the next runes from
	breakers      []Breaker     // a rune separates if any breaker says so
	activeSegment []byte        // the most recent segment
	buffer        *bytes.Buffer // wrapper around activeSegment
	maxSegmentLen int           // maximum length allowed for segments
	pos           int64         // current position in text
	start         int64         // position of active segment
	err           error
	atEOF         bool
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxSegmentSize is the maximum size used to buffer a segment
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxSegmentSize = 64 * 1024
const startBufSize = 256 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: segment too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter by providing breaking logic.
// Specifying no Breaker results in getting a WhitespaceBreaker.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(breakers ...Breaker) *Segmenter {
	s := &Segmenter{}
	if len(breakers) == 0 {
		breakers = []Breaker{WhitespaceBreaker{}}
	}
	s.breakers = breakers
	return s
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxSegmentLen = MaxSegmentSize
	} else {
		s.buffer.Reset()
	}
	s.atEOF = false
	s.inUse = false
	s.pos, s.start = 0, 0
	s.err = nil
	s.activeSegment = nil
}

// Buffer sets the initial buffer to use when scanning and the maximum size of
// buffer that may be allocated during segmenting.
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	s.activeSegment = nil
	s.buffer.Reset()
	for !s.atEOF {
		r, sz, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			if err != io.EOF {
				CT().P("pos", strconv.FormatInt(s.pos, 10)).Errorf("ReadRune() error: %s", err)
				s.setErr(err)
				return false
			}
			break
		}
		s.pos += int64(sz)
		if s.separates(r) {
			if s.buffer.Len() > 0 {
				break
			}
			continue
		}
		if s.buffer.Len() == 0 {
			s.start = s.pos - int64(sz)
		}
		if r == utf8.RuneError && sz == 1 {
			b, ok := s.invalidByte()
			if ok {
				if s.buffer.Len()+1 > s.maxSegmentLen {
					s.setErr(ErrTooLong)
					return false
				}
				s.buffer.WriteByte(b)
				continue
			}
		}
		n := utf8.RuneLen(r)
		if n < 0 {
			n = utf8.RuneLen(utf8.RuneError)
		}
		if s.buffer.Len()+n > s.maxSegmentLen {
			s.setErr(ErrTooLong)
			return false
		}
		s.buffer.WriteRune(r)
	}
	if s.buffer.Len() == 0 {
		return false
	}
	s.activeSegment = s.buffer.Bytes()
	CT().P("length", strconv.Itoa(len(s.activeSegment))).Debugf("Next() = %q", s.activeSegment)
	return true
}

func (s *Segmenter) separates(r rune) bool {
	for _, b := range s.breakers {
		if b.Separates(r) {
			return true
		}
	}
	return false
}

// invalidByte re-reads a byte which has been decoded as utf8.RuneError, if
// the reader supports it. Segments keep invalid bytes as they are.
func (s *Segmenter) invalidByte() (byte, bool) {
	rs, ok := s.reader.(interface {
		io.RuneScanner
		io.ByteReader
	})
	if !ok || rs.UnreadRune() != nil {
		return 0, false
	}
	b, err := rs.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// Bytes returns the most recent token generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Offset returns the byte position of the most recent segment within the
// input.
func (s *Segmenter) Offset() int64 {
	return s.start
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Words splits a string into whitespace separated words. Words are not
// limited to MaxSegmentSize and keep invalid UTF-8 bytes unchanged.
func Words(text string) ([]string, error) {
	seg := NewSegmenter()
	seg.Buffer(make([]byte, 0, startBufSize), len(text)+1)
	seg.Init(strings.NewReader(text))
	var words []string
	for seg.Next() {
		words = append(words, seg.Text())
	}
	if err := seg.Err(); err != nil {
		return words, fmt.Errorf("splitting sentence into words: %w", err)
	}
	return words, nil
}
