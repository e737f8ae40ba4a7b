package testutils

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/benoitkugler/flexlayout/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// CapturedLogs redirects logger.WarningLogger and logger.FatalLogger to an
// in-memory buffer for the duration of a test.
type CapturedLogs struct {
	buf      bytes.Buffer
	restoreW func()
	restoreF func()
}

// CaptureLogs installs the capture and returns a handle whose AssertNoLogs
// or AssertLogs should be deferred, e.g. defer tu.CaptureLogs().AssertNoLogs(t).
func CaptureLogs() *CapturedLogs {
	c := &CapturedLogs{}
	prevW, prevF := logger.WarningLogger.Writer(), logger.FatalLogger.Writer()
	logger.WarningLogger.SetOutput(&c.buf)
	logger.FatalLogger.SetOutput(&c.buf)
	c.restoreW = func() { logger.WarningLogger.SetOutput(prevW) }
	c.restoreF = func() { logger.FatalLogger.SetOutput(prevF) }
	return c
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	c.restoreW()
	c.restoreF()
	if c.buf.Len() != 0 {
		t.Fatalf("expected no logs, got:\n%s", c.buf.String())
	}
}

func (c *CapturedLogs) AssertLogs(t *testing.T, n int) {
	t.Helper()
	c.restoreW()
	c.restoreF()
	got := bytes.Count(c.buf.Bytes(), []byte("\n"))
	if got != n {
		t.Fatalf("expected %d log lines, got %d:\n%s", n, got, c.buf.String())
	}
}
