package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitStampsServiceField(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Service: "registry-api", Output: &buf})
	log.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"service":"registry-api"`) {
		t.Fatalf("service field missing from event: %s", buf.String())
	}
}

// Only the first Init configures the singleton; later calls with
// different options must not reconfigure it. Call sites therefore have
// to agree on the options they pass.
func TestInitFirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Service: "registry-api", Output: &first})
	log := Init(Options{Level: "debug", Output: &second})
	log.Info().Msg("hello")

	if second.Len() != 0 {
		t.Fatalf("second Init reconfigured the output writer")
	}
	if !strings.Contains(first.String(), `"service":"registry-api"`) {
		t.Fatalf("service field lost after repeated Init: %s", first.String())
	}
}

func TestGetBeforeInitPanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from Get before Init")
		}
	}()
	Get()
}
