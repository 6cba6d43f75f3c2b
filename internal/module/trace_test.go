package module_test

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tom-un/rnx-kit/internal/module"
)

func TestResolveTraceMode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, module.ResolveTraceMode(true, false), module.TraceAlways)
	assert.Equal(t, module.ResolveTraceMode(false, true), module.TraceOnFailure)
	assert.Equal(t, module.ResolveTraceMode(false, false), module.TraceNever)
	assert.Equal(t, module.ResolveTraceMode(true, true), module.TraceAlways)
}

func TestTraceLogAlwaysFlushesOnSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := module.NewTraceLog(module.TraceAlways, module.StdoutSink{Writer: &buf})
	log.Begin()
	log.Log("one")
	log.Log("two")
	log.EndSuccess()
	assert.Equal(t, buf.String(), "one\ntwo\n")
}

func TestTraceLogOnFailureDropsSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := module.NewTraceLog(module.TraceOnFailure, module.StdoutSink{Writer: &buf})
	log.Begin()
	log.Log("line")
	log.EndSuccess()
	assert.Equal(t, buf.String(), "")
}

func TestTraceLogOnFailureFlushesOnFailure(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := module.NewTraceLog(module.TraceOnFailure, module.StdoutSink{Writer: &buf})
	log.Begin()
	log.Log("line")
	log.EndFailure()
	assert.Equal(t, buf.String(), "line\n")
}

func TestTraceLogNeverWritesNothing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := module.NewTraceLog(module.TraceNever, module.StdoutSink{Writer: &buf})
	log.Begin()
	log.Log("line")
	log.EndFailure()
	assert.Equal(t, buf.String(), "")
}

func TestTraceLogStandaloneLineIsImplicitSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := module.NewTraceLog(module.TraceAlways, module.StdoutSink{Writer: &buf})
	log.Log("standalone")
	assert.Equal(t, buf.String(), "standalone\n")
}

func TestTraceLogResetDropsBuffer(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := module.NewTraceLog(module.TraceAlways, module.StdoutSink{Writer: &buf})
	log.Begin()
	log.Log("line")
	log.Reset()
	assert.Equal(t, buf.String(), "")
}
