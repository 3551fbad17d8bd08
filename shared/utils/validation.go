package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/tasktime/task-predictor/shared/models"
)

// ErrTrailingData rejects bodies carrying anything after the JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

var jsonNamesOnce sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json tag
// ("title") rather than the Go field name ("Title").
func UseJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// BindJSONStrict is ShouldBindJSON that also rejects trailing data after
// the decoded value, then runs gin's validator.
func BindJSONStrict(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return io.EOF
	}

	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return binding.Validator.ValidateStruct(obj)
}

// BindingErrors flattens an error from ShouldBindJSON into field errors.
func BindingErrors(err error) []models.FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, models.FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: validationMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []models.FieldError{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []models.FieldError{{
			Field:   "body",
			Rule:    "json",
			Message: fmt.Sprintf("malformed JSON at offset %d: %s", syntaxErr.Offset, syntaxErr.Error()),
		}}
	}

	if errors.Is(err, ErrTrailingData) {
		return []models.FieldError{{Field: "body", Rule: "json", Message: err.Error()}}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []models.FieldError{{Field: "body", Rule: "json", Message: "request body is empty or truncated"}}
	}

	return []models.FieldError{{Field: "body", Rule: "json", Message: err.Error()}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %q validation (%s)", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
