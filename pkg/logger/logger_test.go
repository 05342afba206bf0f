package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/vstpayment/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(buf, nil)}).With("component", "test")

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithIdentifier(ctx, "123451")

	l.InfoContext(ctx, "resolved")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "req-1", got["request_id"])
	require.Equal(t, "123451", got["identifier"])
	require.Equal(t, "test", got["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
}
