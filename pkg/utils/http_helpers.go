package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "equipment-api/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LoggerKey - ключ логгера запроса в echo.Context.
const LoggerKey = "logger"

// ParseID читает path-параметр :id. Ошибка уже готова к отдаче через ErrorResponse.
func ParseID(ctx echo.Context, entity string) (uint64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("Неверный формат ID (%s)", entity),
			fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err),
			map[string]interface{}{"param": raw},
		)
	}
	return id, nil
}

// InvalidBody оборачивает ошибку Bind в 400 для ErrorResponse.
func InvalidBody(err error) error {
	return apperrors.NewHttpError(
		http.StatusBadRequest,
		"Неверное тело запроса",
		fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err),
		nil,
	)
}

// LoggerFrom возвращает логгер запроса, положенный middleware.InjectLogger, или fallback.
func LoggerFrom(c echo.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(LoggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return fallback
}

// CreatedResponse отвечает 201 с телом и заголовком Location.
func CreatedResponse(ctx echo.Context, location string, body interface{}) error {
	ctx.Response().Header().Set(echo.HeaderLocation, location)
	return ctx.JSON(http.StatusCreated, body)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	// 404 отдаётся без тела
	if errors.Is(err, apperrors.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Warn("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		return c.JSON(httpErr.Code, response)
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Внутренняя ошибка сервера",
	})
}
