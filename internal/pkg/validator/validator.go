package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/theoyjy/IntelliMap/internal/entity"
)

// Validator checks inbound request bodies against their struct tags
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// ValidateFirstProfile validates FirstProfileRequest
func (v *Validator) ValidateFirstProfile(req *entity.FirstProfileRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty body", entity.ErrInvalidRequest)
	}
	return v.validateStruct(req)
}

// ValidateMapUpdate validates MapUpdateRequest
func (v *Validator) ValidateMapUpdate(req *entity.MapUpdateRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty body", entity.ErrInvalidRequest)
	}
	return v.validateStruct(req)
}

func (v *Validator) validateStruct(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", entity.ErrInvalidRequest, err)
	}

	fe := fieldErrs[0]
	if isMissing(fe) {
		return fmt.Errorf("%w: %s", entity.ErrMissingField, fe.Field())
	}

	return fmt.Errorf("%w: %s failed on %s=%s", entity.ErrInvalidRequest, fe.Field(), fe.Tag(), fe.Param())
}

// isMissing reports whether the failure means the field was absent or blank
// rather than malformed.
func isMissing(fe validator.FieldError) bool {
	switch fe.Tag() {
	case "required", "notblank":
		return true
	case "min":
		return fe.Kind() == reflect.Slice && fe.Param() == "1"
	}
	return false
}
