package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (l *logger) Context(ctx context.Context) context.Context {
	_, ok := ctx.Value(&logCtx).(*logContext)
	if ok {
		return ctx
	}

	lgCtx := newLogContext(l.idGenerator.NewLogID(ctx))
	ctx = context.WithValue(ctx, &logCtx, lgCtx)
	return ctx
}

// WithSession tags every later log line written with ctx with the session id.
func (l *logger) WithSession(ctx context.Context, sessionID string) context.Context {
	logID := l.idGenerator.NewLogID(ctx)
	opName := ""
	if lgCtx, ok := ctx.Value(&logCtx).(*logContext); ok {
		logID = lgCtx.LogID
		opName = lgCtx.OperationName
	}

	lgCtx := newLogContextWithOptions(logID, withSessionID(sessionID), withOperationName(opName))
	return context.WithValue(ctx, &logCtx, lgCtx)
}

func (l *logger) ContextWithCapture(ctx context.Context, operationName string) (context.Context, Capture) {
	lgCtx, ok := ctx.Value(&logCtx).(*logContext)
	if !ok {
		lgCtx = newLogContext(l.idGenerator.NewLogID(ctx))
	}

	lgCtx = newLogContextWithOptions(lgCtx.LogID, withSessionID(lgCtx.SessionID), withOperationName(operationName))
	ctx = context.WithValue(ctx, &logCtx, lgCtx)

	return ctx, l.captureContext(lgCtx)
}

func (l *logger) captureContext(logCtx *logContext) Capture {
	return func(attrs ...zap.Field) {
		l.lg.Desugar().With(attrs...).Info(logCtx.OperationName,
			zap.String(logIDKey, logCtx.LogID.String()),
			zap.String(durationKey, time.Since(time.Time(logCtx.StartTime)).String()),
		)
	}
}

func (l *logger) Debug(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Desugar().Debug(log, fields...)
}

func (l *logger) Info(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Desugar().Info(log, fields...)
}

func (l *logger) Warn(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Desugar().Warn(log, fields...)
}

func (l *logger) Error(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Desugar().Error(log, fields...)
}
