package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ads-board/internal/core/domain"
	"ads-board/internal/core/port"
)

// validate is shared by all requests; validator caches struct metadata and
// is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// CreateAdRequest is the body of POST /ads. Every field must be present and
// a string.
type CreateAdRequest struct {
	Name        *string `json:"name" validate:"required,max=256"`
	Description *string `json:"description" validate:"required,max=1024"`
	Owner       *string `json:"owner" validate:"required,max=64"`
}

// Input converts a validated request into use case input.
func (req CreateAdRequest) Input() port.CreateAdInput {
	return port.CreateAdInput{
		Name:        *req.Name,
		Description: *req.Description,
		Owner:       *req.Owner,
	}
}

// PatchAdRequest is the body of PATCH /ads/{id}. Absent or null fields are
// left out of the update.
type PatchAdRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=256"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
	Owner       *string `json:"owner" validate:"omitempty,max=64"`
}

// Patch converts a validated request into a domain patch.
func (req PatchAdRequest) Patch() domain.AdPatch {
	return domain.AdPatch{
		Name:        req.Name,
		Description: req.Description,
		Owner:       req.Owner,
	}
}

// decodeAndValidate reads a JSON object from the request body into dst, a
// pointer to a request struct, and checks it against its validate tags. It
// returns errInvalidJSON for bodies that are not JSON objects and
// *ValidationError for schema violations. Fields are decoded one at a time
// so every mistyped field is reported, not only the first.
func decodeAndValidate(r *http.Request, dst any) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw == nil {
		return errInvalidJSON
	}

	var fieldErrs []FieldError
	reported := make(map[string]bool)

	v := reflect.ValueOf(dst).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := jsonName(v.Type().Field(i))
		value, ok := raw[name]
		if name == "" || !ok {
			continue
		}
		if err := json.Unmarshal(value, v.Field(i).Addr().Interface()); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return errInvalidJSON
			}
			fieldErrs = append(fieldErrs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("%s type expected", typeErr.Type.String()),
				Type:    "type_error." + typeErr.Type.String(),
			})
			reported[name] = true
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if reported[fe.Field()] {
				continue
			}
			fieldErrs = append(fieldErrs, fieldError(fe))
		}
	}

	if len(fieldErrs) > 0 {
		return &ValidationError{Errors: fieldErrs}
	}
	return nil
}

func fieldError(fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "required":
		return FieldError{Field: fe.Field(), Message: "field required", Type: "value_error.missing"}
	case "max":
		return FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("ensure this value has at most %s characters", fe.Param()),
			Type:    "value_error.any_str.max_length",
		}
	default:
		return FieldError{Field: fe.Field(), Message: "invalid value", Type: "value_error." + fe.Tag()}
	}
}
