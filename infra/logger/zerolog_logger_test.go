package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer assert.NoError(t, os.Unsetenv("APP_ENV"))
	l := NewZerologLogger("test", zerolog.DebugLevel)
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerLevelFilter(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "alloc", zerolog.InfoLevel)
	l.Debugf("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug leaked at info level: %s", buf.String())
	}
	l.Infof("shown")
	out := buf.String()
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"component":"alloc"`) {
		t.Fatalf("unexpected output: %s", out)
	}

	buf.Reset()
	v := NewZerologLoggerTo(&buf, "alloc", zerolog.DebugLevel)
	v.Debugw("visible", map[string]any{"run_id": "r1"})
	if !strings.Contains(buf.String(), "visible") || !strings.Contains(buf.String(), "r1") {
		t.Fatalf("debug missing at debug level: %s", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debugf("debug")
	l.Debugw("debug", nil)
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")
}
