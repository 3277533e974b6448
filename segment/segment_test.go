package segment

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWhitespace1(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("Hello World!"))
	n := 0
	for seg.Next() {
		t.Logf("segment = '%s' at %d", seg.Text(), seg.Offset())
		n++
	}
	if n != 2 {
		t.Errorf("Expected 2 segments, have %d", n)
	}
}

func TestWhitespace2(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("	eat  a clean\n apple   "))
	var segs []string
	for seg.Next() {
		segs = append(segs, seg.Text())
	}
	if strings.Join(segs, "|") != "eat|a|clean|apple" {
		t.Errorf("expected eat|a|clean|apple, have %v", segs)
	}
	if seg.Err() != nil {
		t.Errorf("expected no error, have %v", seg.Err())
	}
}

func TestOffsets(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("  größer als"))
	offsets := []int64{2, 11}
	i := 0
	for seg.Next() {
		if seg.Offset() != offsets[i] {
			t.Errorf("expected segment %q at %d, is %d", seg.Text(), offsets[i], seg.Offset())
		}
		i++
	}
}

func TestCustomBreaker(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(WhitespaceBreaker{}, BreakerFunc(unicode.IsPunct))
	seg.Init(strings.NewReader("lime-tree, please!"))
	n := 0
	for seg.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("Expected 3 segments, have %d", n)
	}
}

func TestNotInitialized(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	if seg.Next() {
		t.Fatalf("expected un-initialized segmenter to stop")
	}
	if !errors.Is(seg.Err(), ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, have %v", seg.Err())
	}
}

func TestTooLong(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Buffer(make([]byte, 0, 4), 4)
	seg.Init(strings.NewReader("eat apples"))
	for seg.Next() {
		t.Logf("segment = '%s'", seg.Text())
	}
	if !errors.Is(seg.Err(), ErrTooLong) {
		t.Errorf("expected ErrTooLong, have %v", seg.Err())
	}
}

func TestWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	words, err := Words("")
	if err != nil || len(words) != 0 {
		t.Errorf("expected no words for empty input, have %v, %v", words, err)
	}
	words, _ = Words(" eat the green apple ")
	if len(words) != 4 || words[3] != "apple" {
		t.Errorf("expected 4 words, have %v", words)
	}
}

func TestInvalidUTF8(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	words, err := Words("\xffx a\xfe\xfd")
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != "\xffx" || words[1] != "a\xfe\xfd" {
		t.Errorf("expected invalid bytes to be kept, have %q", words)
	}
	seg := NewSegmenter()
	seg.Buffer(make([]byte, 0, 4), 3)
	seg.Init(strings.NewReader("\xff\xfe\xfd \xfcxyz"))
	if !seg.Next() || seg.Text() != "\xff\xfe\xfd" {
		t.Errorf("expected 3 invalid bytes to fit into a buffer of 3, have %q, %v", seg.Text(), seg.Err())
	}
	if seg.Next() || !errors.Is(seg.Err(), ErrTooLong) {
		t.Errorf("expected ErrTooLong for 4 bytes, have %v", seg.Err())
	}
}

func TestLongWord(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	long := strings.Repeat("x", MaxSegmentSize+10)
	words, err := Words("eat " + long)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[1] != long {
		t.Errorf("expected a word longer than MaxSegmentSize to be returned as is")
	}
}
