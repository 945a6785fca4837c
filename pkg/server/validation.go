package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/getzep/zep-ner/pkg/models"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodePayloadRequest decodes and validates the request body. Every failing field is
// reported; nothing is returned for partial processing.
func decodePayloadRequest(r *http.Request) (*models.PayloadRequest, *models.HTTPValidationError) {
	var payloadRequest models.PayloadRequest
	if err := json.NewDecoder(r.Body).Decode(&payloadRequest); err != nil {
		return nil, &models.HTTPValidationError{
			Detail: []models.ValidationError{decodeErrorDetail(err)},
		}
	}

	if err := validate.Struct(payloadRequest); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return nil, &models.HTTPValidationError{Detail: []models.ValidationError{{
				Loc:  []interface{}{"body"},
				Msg:  err.Error(),
				Type: "value_error",
			}}}
		}

		detail := make([]models.ValidationError, len(fieldErrors))
		for i, fe := range fieldErrors {
			detail[i] = fieldErrorDetail(fe)
		}
		return nil, &models.HTTPValidationError{Detail: detail}
	}

	return &payloadRequest, nil
}

func fieldErrorDetail(fe validator.FieldError) models.ValidationError {
	ve := models.ValidationError{Loc: namespaceToLoc(fe.Namespace())}
	switch fe.Tag() {
	case "required":
		ve.Msg = "field required"
		ve.Type = "value_error.missing"
	default:
		ve.Msg = fmt.Sprintf("failed on the '%s' tag", fe.Tag())
		ve.Type = "value_error." + fe.Tag()
	}
	return ve
}

func decodeErrorDetail(err error) models.ValidationError {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return models.ValidationError{
			Loc:  []interface{}{"body"},
			Msg:  "field required",
			Type: "value_error.missing",
		}
	case errors.As(err, &syntaxErr):
		return models.ValidationError{
			Loc:  []interface{}{"body", syntaxErr.Offset},
			Msg:  "invalid JSON: " + syntaxErr.Error(),
			Type: "value_error.jsondecode",
		}
	case errors.As(err, &typeErr):
		loc := []interface{}{"body"}
		if typeErr.Field != "" {
			for _, part := range strings.Split(typeErr.Field, ".") {
				loc = append(loc, part)
			}
		}
		kind := jsonKindName(typeErr.Type)
		return models.ValidationError{
			Loc:  loc,
			Msg:  kind + " type expected",
			Type: "type_error." + kind,
		}
	default:
		return models.ValidationError{
			Loc:  []interface{}{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}
	}
}

func jsonKindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "str"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Struct, reflect.Map:
		return "dict"
	default:
		return t.Kind().String()
	}
}

// namespaceToLoc turns a validator namespace such as "PayloadRequest.data[1].content"
// into ["body", "data", 1, "content"].
func namespaceToLoc(namespace string) []interface{} {
	loc := []interface{}{"body"}

	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		// drop the top-level struct name
		parts = parts[1:]
	}

	for _, part := range parts {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			loc = append(loc, name)
		}
		for rest != "" {
			idx, after, _ := strings.Cut(rest, "]")
			if n, err := strconv.Atoi(idx); err == nil {
				loc = append(loc, n)
			} else {
				loc = append(loc, idx)
			}
			_, rest, _ = strings.Cut(after, "[")
		}
	}

	return loc
}
