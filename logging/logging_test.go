package logging

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogging drives the whole lifecycle in one test, the global logger
// configures only once per process.
func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, Level: "debug"})

	log := Base()
	log.Info().Str("ticker", "SPY").Msg("hello")
	line := buf.String()
	for _, want := range []string{`"service":"fpa"`, `"ticker":"SPY"`, `"message":"hello"`, `"level":"info"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line is missing %s: %s", want, line)
		}
	}

	buf.Reset()
	upd := WithComponent("update")
	upd.Debug().Msg("cache hit")
	if !strings.Contains(buf.String(), `"component":"update"`) {
		t.Errorf("child logger is missing the component: %s", buf.String())
	}

	buf.Reset()
	SetLevel("error")
	log = Base()
	log.Info().Msg("quiet now")
	if buf.Len() != 0 {
		t.Errorf("info line got through at error level: %s", buf.String())
	}
	log = Base()
	log.Error().Msg("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("error line missing at error level: %s", buf.String())
	}

	// A second Configure is a no-op, lines keep flowing to the first
	// writer.
	buf.Reset()
	Configure(Config{Level: "debug", Service: "other"})
	log = Base()
	log.Error().Msg("still here")
	if !strings.Contains(buf.String(), "still here") {
		t.Error("second Configure replaced the writer")
	}
	if strings.Contains(buf.String(), "other") {
		t.Error("second Configure replaced the service name")
	}
}
