package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init configures Gin's binding:
//   - JSON tag names in errors;
//   - unknown JSON fields are rejected instead of dropped;
//   - alias tags for the user payloads.
func Init() {
	initOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
			v.RegisterAlias("nonblank", "required,min=1")
		}
	})
}

// ToDetails converts binding/validation errors into "field constraint" messages,
// one per violated constraint, in struct field order.
func ToDetails(err error) []string {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return []string{"payload is required"}
	}

	var se *json.SyntaxError
	if errors.As(err, &se) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []string{"payload must be valid json"}
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return []string{fmt.Sprintf("%s must be of type %s", field, jsonType(ute.Type.Kind()))}
	}

	if name, ok := unknownField(err); ok {
		return []string{"property " + name + " should not exist"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldPath(fe)+" "+formatFieldError(fe))
		}
		return out
	}

	return []string{"invalid payload"}
}

// unknownField extracts the name from encoding/json's DisallowUnknownFields error.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

// fieldPath drops the top-level struct name: "createUserRequest.profile.code" -> "profile.code".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required", "nonblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if isNumberKind(kind) {
			return "must be at least " + param
		}
		if param == "1" {
			return "must not be empty"
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(kind) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be at least " + param
	case "gt":
		return "must be greater than " + param
	case "lte":
		return "must be at most " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	default:
		if param != "" {
			return fmt.Sprintf("failed '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("failed '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func jsonType(k reflect.Kind) string {
	switch {
	case isNumberKind(k):
		return "integer"
	case k == reflect.String:
		return "string"
	case k == reflect.Struct || k == reflect.Map:
		return "object"
	case k == reflect.Slice || k == reflect.Array:
		return "array"
	case k == reflect.Bool:
		return "boolean"
	default:
		return k.String()
	}
}
