/*
Package tracing is a helper for tests which want their trace output to go
to the testing log.
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// SetTestingLog installs core and syntax tracers writing to t's log, at
// debug level. The returned function restores the previous tracers.
func SetTestingLog(t *testing.T) func() {
	core, syntax := gtrace.CoreTracer, gtrace.SyntaxTracer
	gtrace.CoreTracer = gotestingadapter.New()
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return func() {
		teardown()
		gtrace.CoreTracer, gtrace.SyntaxTracer = core, syntax
	}
}
