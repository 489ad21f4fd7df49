package log

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

func TestSetDefaults(t *testing.T) {
	conf := SetDefaults()
	if conf.Output != "stdout" {
		t.Errorf("expected Output 'stdout', got '%s'", conf.Output)
	}
	if conf.Level != "INFO" {
		t.Errorf("expected Level 'INFO', got '%s'", conf.Level)
	}
	if conf.Filename != "ats.log" {
		t.Errorf("expected Filename 'ats.log', got '%s'", conf.Filename)
	}
}

func TestConf_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    *Conf
		wantErr bool
	}{
		{name: "stdout", conf: &Conf{Output: "stdout", Level: "INFO"}},
		{name: "file without path", conf: &Conf{Output: "file", Level: "INFO"}, wantErr: true},
		{name: "file with zero rotation settings", conf: &Conf{Output: "file", Path: "/tmp/logs", Level: "INFO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.conf.Output == "file" {
				if tt.conf.RotateSize <= 0 || tt.conf.RotateNum <= 0 || tt.conf.KeepHours <= 0 {
					t.Errorf("rotation settings should be corrected, got %+v", tt.conf)
				}
			}
		})
	}
}

func TestNewLog_File(t *testing.T) {
	tmpDir := t.TempDir()

	conf := &Conf{
		Output:     "file",
		Path:       tmpDir,
		Filename:   "test.log",
		Level:      "INFO",
		KeepHours:  1,
		RotateSize: 1,
		RotateNum:  3,
	}

	logger, err := NewLog(conf)
	if err != nil {
		t.Fatalf("NewLog() error = %v", err)
	}
	defer resetGlobal()

	logger.Info("test message 1")
	Infow("test message 2", "applicant_id", "a-1")
	_ = logger.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(content) == 0 {
		t.Error("log file should not be empty")
	}
}

func TestGlobalFunctionsWithoutInit(t *testing.T) {
	resetGlobal()

	// the default logger discards output and must never panic
	Info("info")
	Infof("info %d", 1)
	Debugw("debug", "k", "v")
	Warnw("warn", "k", "v")
	Errorw("error", "k", "v")

	if GetLogger() == nil {
		t.Error("global logger should never be nil")
	}
}

func TestWithContext(t *testing.T) {
	resetGlobal()

	if WithContext(context.Background()) == nil {
		t.Fatal("expected logger for empty context")
	}

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	if WithContext(ctx) == nil {
		t.Fatal("expected logger for traced context")
	}
}

func TestGetLevel(t *testing.T) {
	if _, err := NewLog(&Conf{Output: "stdout", Level: "WARN"}); err != nil {
		t.Fatalf("NewLog() error = %v", err)
	}
	defer resetGlobal()

	if got := GetLevel(); got != zapcore.WarnLevel {
		t.Errorf("GetLevel() = %v, want %v", got, zapcore.WarnLevel)
	}
}

func TestConcurrentLogging(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Infow("concurrent message", "number", n)
		}(i)
	}
	wg.Wait()
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"FATAL", zapcore.FatalLevel},
		{"INVALID", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := parseLogLevel(tt.input); result != tt.expected {
				t.Errorf("parseLogLevel(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func resetGlobal() {
	MustInit(&Conf{Output: "stdout", Level: "FATAL"})
}
