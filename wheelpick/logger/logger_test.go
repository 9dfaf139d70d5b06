package logger_test

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wheelpick/go-wheelpick/wheelpick/logger"
)

func TestSimpleLogger(t *testing.T) {
	var b bytes.Buffer
	stdLogger := log.New(&b, "", log.LstdFlags)
	logger.SetDefault(logger.NewSimpleLogger(stdLogger, logger.LevelInfo))

	logger.Trace("Trace")
	assertEmpty(t, &b)
	logger.Tracef("Trace%s", "f")
	assertEmpty(t, &b)

	logger.Debug("Debug")
	assertEmpty(t, &b)
	logger.Debugf("Debug%s", "f")
	assertEmpty(t, &b)

	logger.Info("Info")
	assertNotEmpty(t, &b)
	logger.Infof("Info%s", "f")
	assertNotEmpty(t, &b)

	logger.Warn("Warn")
	assertNotEmpty(t, &b)
	logger.Warnf("Warn%s", "f")
	assertNotEmpty(t, &b)

	logger.Error("Error")
	assertNotEmpty(t, &b)
	logger.Errorf("Error%s", "f")
	assertNotEmpty(t, &b)
}

func TestLoggerOff(t *testing.T) {
	var b bytes.Buffer
	stdLogger := log.New(&b, "", log.LstdFlags)
	logger.SetDefault(logger.NewSimpleLogger(stdLogger, logger.LevelOff))

	if logger.Enabled(logger.LevelError) {
		t.Fatal("logger.LevelError is enabled")
	}
	logger.Error("Error")
	assertEmpty(t, &b)
	logger.Errorf("Error%s", "f")
	assertEmpty(t, &b)
}

func TestNoOpLogger(t *testing.T) {
	noOp := logger.NoOpLogger{}
	if noOp.Enabled(logger.LevelError) {
		t.Fatal("NoOpLogger reports a level as enabled")
	}
	noOp.Info("discarded")
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	zapLogger := logger.NewZapLogger(zap.New(core), logger.LevelInfo)

	zapLogger.Debug("Debug")
	if logs.Len() != 0 {
		t.Fatal("debug record emitted below the configured level")
	}

	zapLogger.Infof("Info%s", "f")
	zapLogger.Warn("Warn")
	zapLogger.Errorf("Error%s", "f")
	if logs.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", logs.Len())
	}
	if logs.All()[0].Message != "Infof" {
		t.Fatalf("unexpected message: %s", logs.All()[0].Message)
	}

	if !zapLogger.Enabled(logger.LevelError) {
		t.Fatal("logger.LevelError is not enabled")
	}
	if zapLogger.Enabled(logger.LevelTrace) {
		t.Fatal("logger.LevelTrace is enabled")
	}
}

func TestLoggerRace(t *testing.T) {
	var b bytes.Buffer
	stdLogger := log.New(&b, "", log.LstdFlags)
	logger.SetDefault(logger.NewSimpleLogger(stdLogger, logger.LevelInfo))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("concurrent")
		}()
	}
	wg.Wait()
}

func assertEmpty(t *testing.T, b *bytes.Buffer) {
	t.Helper()
	assertBuffer(t, b, true)
}

func assertNotEmpty(t *testing.T, b *bytes.Buffer) {
	t.Helper()
	assertBuffer(t, b, false)
}

func assertBuffer(t *testing.T, b *bytes.Buffer, empty bool) {
	t.Helper()
	if (strings.TrimSpace(b.String()) == "") != empty {
		t.Fatalf("buffer mismatch: %q", b.String())
	}
	b.Reset()
}
