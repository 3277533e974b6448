package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// Fixture names for the small adventure-game language used throughout the
// tests of this module.
const (
	LangRules = "rules.txt"
	LangWords = "words.txt"
)

// LangText returns the content of a language fixture file, panicking if it
// cannot be read.
func LangText(file string) string {
	data, err := os.ReadFile(LangPath(file))
	if err != nil {
		panic(err)
	}
	return string(data)
}

// LangPath returns the path for the given language fixture file.
func LangPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "lang", file)
}
