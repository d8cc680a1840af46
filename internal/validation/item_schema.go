package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"items-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

// Messages for rules that are not tied to a single field.
const (
	MsgAtLeastOneField = "At least one field (name or description) must be provided"
	MsgNotAnObject     = "Request body must be a JSON object"
	MsgUnprocessable   = "Request body could not be validated"
)

// createItemRules declares the create schema. Pointers tell "absent" apart
// from "empty".
type createItemRules struct {
	Name        *string `json:"name" validate:"required,nonempty,min=4,max=30"`
	Description *string `json:"description" validate:"required,nonempty,min=10,max=100"`
}

// updateItemRules declares the update schema. Every field is optional.
type updateItemRules struct {
	Name        *string `json:"name" validate:"omitnil,min=4,max=30"`
	Description *string `json:"description" validate:"omitnil,min=10,max=100"`
}

// stringField binds one schema key to its destination in a rules struct.
type stringField struct {
	key   string
	label string
	dst   **string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// required only checks presence on pointers; nonempty rejects "".
	if err := v.RegisterValidation("nonempty", func(fl validator.FieldLevel) bool {
		return fl.Field().Len() > 0
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateCreate checks body against the create schema.
func ValidateCreate(body []byte) Outcome[dto.CreateItemRequest] {
	raw, ok := decodeObject(body)
	if !ok {
		return invalid[dto.CreateItemRequest](dto.FieldError{Message: MsgNotAnObject})
	}

	var rules createItemRules
	fields := []stringField{
		{key: "name", label: "Name", dst: &rules.Name},
		{key: "description", label: "Description", dst: &rules.Description},
	}

	errs, err := check(raw, fields, &rules)
	if err != nil {
		return invalid[dto.CreateItemRequest](dto.FieldError{Message: MsgUnprocessable})
	}
	if len(errs) > 0 {
		return invalid[dto.CreateItemRequest](errs...)
	}

	return Valid[dto.CreateItemRequest]{Value: dto.CreateItemRequest{
		Name:        *rules.Name,
		Description: *rules.Description,
	}}
}

// ValidateUpdate checks body against the update schema. At least one known
// field has to be present, whatever its value.
func ValidateUpdate(body []byte) Outcome[dto.UpdateItemRequest] {
	raw, ok := decodeObject(body)
	if !ok {
		return invalid[dto.UpdateItemRequest](dto.FieldError{Message: MsgNotAnObject})
	}

	var rules updateItemRules
	fields := []stringField{
		{key: "name", label: "Name", dst: &rules.Name},
		{key: "description", label: "Description", dst: &rules.Description},
	}

	errs, err := check(raw, fields, &rules)
	if err != nil {
		return invalid[dto.UpdateItemRequest](dto.FieldError{Message: MsgUnprocessable})
	}

	present := 0
	for _, f := range fields {
		if _, ok := raw[f.key]; ok {
			present++
		}
	}
	if present == 0 {
		errs = append(errs, dto.FieldError{Message: MsgAtLeastOneField})
	}

	if len(errs) > 0 {
		return invalid[dto.UpdateItemRequest](errs...)
	}

	return Valid[dto.UpdateItemRequest]{Value: dto.UpdateItemRequest{
		Name:        rules.Name,
		Description: rules.Description,
	}}
}

// check binds the string fields of raw into rules, runs the struct rules and
// returns at most one error per field, in the order of fields.
func check(raw map[string]json.RawMessage, fields []stringField, rules interface{}) ([]dto.FieldError, error) {
	typeErrs := make(map[string]string)
	for _, f := range fields {
		value, ok := raw[f.key]
		if !ok {
			continue
		}
		s, isString := decodeString(value)
		if !isString {
			typeErrs[f.key] = f.label + " must be a string"
			continue
		}
		*f.dst = &s
	}

	ruleErrs := make(map[string]validator.FieldError)
	if err := validate.Struct(rules); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			if _, seen := ruleErrs[fe.Field()]; !seen {
				ruleErrs[fe.Field()] = fe
			}
		}
	}

	var errs []dto.FieldError
	for _, f := range fields {
		if msg, ok := typeErrs[f.key]; ok {
			errs = append(errs, dto.FieldError{Field: f.key, Message: msg})
			continue
		}
		if fe, ok := ruleErrs[f.key]; ok {
			errs = append(errs, dto.FieldError{Field: f.key, Message: ruleMessage(f.label, fe)})
		}
	}
	return errs, nil
}

func ruleMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "nonempty":
		return label + " cannot be empty"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", label, fe.Tag())
	}
}

// decodeObject parses body as a JSON object. An empty body counts as {}.
func decodeObject(body []byte) (map[string]json.RawMessage, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]json.RawMessage{}, true
	}
	if body[0] != '{' {
		return nil, false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false
	}
	return raw, true
}

// decodeString accepts only JSON strings; null, numbers, booleans, arrays
// and objects are rejected.
func decodeString(value json.RawMessage) (string, bool) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || value[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}
