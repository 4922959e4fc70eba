package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "equipment-api/pkg/errors"
	"equipment-api/pkg/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/fail", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })

	for _, target := range []string{"/ok", "/fail"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestInjectLoggerAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(InjectLogger(zap.New(core)))
	e.GET("/", func(c echo.Context) error {
		utils.LoggerFrom(c, zap.NewNop()).Info("inside")
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.NotEmpty(t, logs.All()[0].ContextMap()["request_id"])
}

func TestErrorResponseLogsCarryRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(InjectLogger(zap.New(core)))
	e.POST("/equipment", func(c echo.Context) error {
		return utils.ErrorResponse(c, utils.InvalidBody(errors.New("unexpected EOF")), utils.LoggerFrom(c, zap.NewNop()))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/equipment", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), entry.ContextMap()["request_id"])
	assert.Contains(t, entry.ContextMap()["error"], apperrors.ErrBadRequest.Error())
}
