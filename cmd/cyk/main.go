/*
Command cyk parses sentences with a CYK parser for a grammar and a lexicon
given as files.

Usage

   cyk -rules FILE -words FILE [-goal S,Q] [-sexpr] [-crosscheck] [-dump] [-v] [-trace LEVEL] [sentence ...]

Sentences are taken from the command line or, if there are none, read from
stdin, one per line. For every sentence cyk prints the derivation tree or
the reason why it could not be parsed. With -crosscheck every sentence is
also recognized by an Earley parser for the same grammar, and a
disagreement counts as an error. -dump prints the normalized rule tables.

cyk exits with status 1 if any sentence failed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/ast"
	"github.com/npillmayer/cyk/crosscheck"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var logger = log.New(os.Stderr, "cyk: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

func main() {
	rulesFile := flag.String("rules", "", "grammar rules file")
	wordsFile := flag.String("words", "", "lexicon file")
	goalList := flag.String("goal", "S", "comma separated list of goal symbols")
	doSExpr := flag.Bool("sexpr", false, "print trees as s-expressions")
	doCheck := flag.Bool("crosscheck", false, "cross-check results with an Earley parser")
	doDump := flag.Bool("dump", false, "print the normalized rule tables")
	doVerbose := flag.Bool("v", false, "verbose output mode")
	traceLevel := flag.String("trace", "error", "trace level (error, info, debug)")
	flag.Parse()
	verbose = *doVerbose
	if *rulesFile == "" || *wordsFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	setupTracing(*traceLevel)
	parser, ruleErrs, err := cyk.LoadFiles(*rulesFile, *wordsFile)
	checkFatal(err)
	for _, e := range ruleErrs {
		logger.Printf("%s: %v\n", *rulesFile, e)
	}
	if verbose {
		logger.Printf("loaded %d rules and %d words\n", len(parser.Grammar().Rules()), parser.Lexicon().Len())
	}
	if *doDump {
		checkFatal(parser.Grammar().Dump(os.Stdout))
	}
	goals := strings.Split(*goalList, ",")
	for i := range goals {
		goals[i] = strings.TrimSpace(goals[i])
	}
	failed := arraylist.New()
	parse := func(sentence string) {
		if !process(parser, sentence, goals, *doSExpr, *doCheck) {
			failed.Add(sentence)
		}
	}
	if flag.NArg() > 0 {
		for _, sentence := range flag.Args() {
			parse(sentence)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == "" {
				continue
			}
			parse(scanner.Text())
		}
		checkFatal(scanner.Err())
	}
	if !failed.Empty() {
		if verbose {
			logger.Printf("%d sentences failed\n", failed.Size())
		}
		os.Exit(1)
	}
}

func process(parser *cyk.Parser, sentence string, goals []string, sexpr, check bool) bool {
	if check {
		if _, err := crosscheck.Check(parser, sentence, goals...); err != nil {
			if _, isDisagreement := err.(*crosscheck.DisagreementError); isDisagreement {
				fmt.Printf("%s\n  %v\n", sentence, err)
				return false
			}
		}
	}
	result, err := parser.Parse(sentence, goals...)
	if err != nil {
		fmt.Printf("%s\n  %v\n", sentence, err)
		return false
	}
	if sexpr {
		fmt.Printf("%s\n  %s: %s\n", sentence, result.Goal, ast.SExpr(result.Tree))
	} else {
		fmt.Printf("%s\n  %s: %s\n", sentence, result.Goal, result.Tree)
	}
	return true
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	gtrace.CoreTracer.SetTraceLevel(l)
	gtrace.SyntaxTracer.SetTraceLevel(l)
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
