// Package common holds the request binding, user resolution and error
// rendering shared by the webapi route packages.
package common

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/domain/user"
	"github.com/amirasaad/pocketpilot/pkg/parser"
	authsvc "github.com/amirasaad/pocketpilot/pkg/service/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const userIDKey = "userID"

var validate = newValidator()

func init() {
	// amounts are plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// MessageResponse is the body of write endpoints that return an id.
type MessageResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// ErrorResponseJSON writes an ErrorResponse with the given status.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	message string,
	details any,
) error {
	return c.Status(status).JSON(ErrorResponse{Error: message, Details: details})
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, parser.ErrNeedsClarification):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorJSON renders err with its mapped status. Unexpected errors are logged
// and answered with an opaque message.
func ErrorJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("Request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return ErrorResponseJSON(c, status, "Internal Server Error", nil)
	}

	var details any
	var ce *parser.ClarificationError
	if errors.As(err, &ce) {
		details = fiber.Map{"slot": ce.Slot}
	}
	return ErrorResponseJSON(c, status, PublicMessage(err), details)
}

var sentinels = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrUnauthorized,
	domain.ErrDuplicate,
	domain.ErrAlreadyExists,
	parser.ErrNeedsClarification,
}

// PublicMessage returns the user-facing part of err: the innermost joined
// message without the trailing sentinel text, capitalized.
func PublicMessage(err error) string {
	var ce *parser.ClarificationError
	if errors.As(err, &ce) {
		return ce.Prompt
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "\n"); i >= 0 {
		msg = msg[i+1:]
	}
	for _, s := range sentinels {
		msg = strings.TrimSuffix(msg, ": "+s.Error())
	}
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns the populated struct, or writes a 400 response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		}
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", fields)
	}
	return &input, nil
}

// ResolveUser runs after the JWT middleware and stores the token's user id
// on the request.
func ResolveUser(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return ErrorJSON(c, user.ErrUserUnauthorized)
		}
		userID, err := authSvc.GetCurrentUserId(token)
		if err != nil {
			return ErrorJSON(c, err)
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id stored by ResolveUser.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	return id, nil
}

// QueryInt reads an optional integer query parameter. Absent means 0.
func QueryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number: %w", key, domain.ErrValidation)
	}
	return n, nil
}

// OptionalUUID parses an optional id field. An empty string means nil.
func OptionalUUID(field, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid id: %w", field, domain.ErrValidation)
	}
	return &id, nil
}
