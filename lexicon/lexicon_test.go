package lexicon

import (
	"testing"

	"github.com/npillmayer/cyk/internal/testdata"
	"github.com/npillmayer/cyk/internal/tracing"
)

func TestLookup(t *testing.T) {
	defer tracing.SetTestingLog(t)()
	//
	lx := Compile(testdata.LangText(testdata.LangWords))
	if lx.Len() != 20 {
		t.Errorf("expected 20 words in fixture lexicon, have %d", lx.Len())
	}
	if cat, ok := lx.Lookup("apple"); !ok || cat != "noun" {
		t.Errorf("expected apple to be a noun, is %q", cat)
	}
	if _, ok := lx.Lookup("xyzzy"); ok {
		t.Errorf("expected xyzzy to be unknown")
	}
}

func TestMalformedLinesDropped(t *testing.T) {
	defer tracing.SetTestingLog(t)()
	//
	lx := Compile("apple noun\n\nbanana\nred adjective color\n  eat   verb  \n")
	if lx.Len() != 2 {
		t.Fatalf("expected 2 words, have %d: %v", lx.Len(), lx.Words())
	}
	if _, ok := lx.Lookup("banana"); ok {
		t.Errorf("expected line without category to be dropped")
	}
	if _, ok := lx.Lookup("red"); ok {
		t.Errorf("expected line with three fields to be dropped")
	}
	if cat, ok := lx.Lookup("eat"); !ok || cat != "verb" {
		t.Errorf("expected eat to be a verb, is %q", cat)
	}
}

func TestFirstDefinitionWins(t *testing.T) {
	defer tracing.SetTestingLog(t)()
	//
	lx := Compile("fly verb\nfly noun")
	if cat, _ := lx.Lookup("fly"); cat != "verb" {
		t.Errorf("expected first definition (verb) to win, is %q", cat)
	}
	if n := lx.Add("fly adjective\nbat noun"); n != 1 {
		t.Errorf("expected 1 new word, have %d", n)
	}
	w := lx.Words()
	if len(w) != 2 || w[0] != "fly" || w[1] != "bat" {
		t.Errorf("expected words in definition order, have %v", w)
	}
}

func TestNormalizedLookup(t *testing.T) {
	defer tracing.SetTestingLog(t)()
	//
	lx := Compile("caf\u00e9 noun")
	if _, ok := lx.Lookup("cafe\u0301"); !ok {
		t.Errorf("expected decomposed spelling to find caf\u00e9")
	}
}
