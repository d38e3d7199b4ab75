package cart

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"capstore/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatchLogsRejectedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	h := New(Params{Logger: logger.NewFromZap(zap.New(core))})

	r := gin.New()
	r.POST("/commands", h.Dispatch)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/commands", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"status":400`)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "error parse request", entries[0].Message)
	assert.Equal(t, strings.TrimSpace(entries[0].Message), entries[0].Message)
}
