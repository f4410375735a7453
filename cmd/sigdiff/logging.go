package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/sigdiff/compare"
	"github.com/wippyai/sigdiff/report"
	"github.com/wippyai/sigdiff/signature"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func installLogger(l *zap.Logger) {
	zap.ReplaceGlobals(l)
	signature.SetLogger(l.Named("signature"))
	compare.SetLogger(l.Named("compare"))
	report.SetLogger(l.Named("report"))
}
