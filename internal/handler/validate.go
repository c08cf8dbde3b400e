package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/zphs-kuchanpally/ai-buddy/internal/model"
)

// RequestValidator plugs go-playground/validator into echo.  Field names in
// errors are the JSON names.
type RequestValidator struct {
	v *validator.Validate
}

func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// bindAndValidate decodes the JSON body into dst and validates it.  A
// non-nil return has already been written as a 422 response, or is an
// *echo.HTTPError for echo's error handler.
func bindAndValidate(c echo.Context, dst interface{}) (bool, error) {
	if err := c.Bind(dst); err != nil {
		issues, ok := bindIssues(err)
		if !ok {
			return false, err
		}
		return false, c.JSON(http.StatusUnprocessableEntity, model.ValidationError{Detail: issues})
	}
	if nf, ok := dst.(nullReporter); ok {
		if issues := nullIssues(nf.NullFields()); len(issues) > 0 {
			return false, c.JSON(http.StatusUnprocessableEntity, model.ValidationError{Detail: issues})
		}
	}
	if err := c.Validate(dst); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, model.ValidationError{Detail: validationIssues(err)})
	}
	return true, nil
}

// nullReporter is implemented by request bodies that tell an explicit null
// apart from a missing key.
type nullReporter interface {
	NullFields() []string
}

func nullIssues(fields []string) []model.ValidationIssue {
	issues := make([]model.ValidationIssue, 0, len(fields))
	for _, f := range fields {
		issues = append(issues, model.ValidationIssue{
			Loc:  []string{"body", f},
			Msg:  "none is not an allowed value",
			Type: "type_error.none.not_allowed",
		})
	}
	return issues
}

// bindIssues converts JSON decoding failures into validation issues.  Other
// bind errors (unsupported media type, oversized body) are left alone.
func bindIssues(err error) ([]model.ValidationIssue, bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []model.ValidationIssue{{
			Loc:  loc,
			Msg:  "expected " + typeErr.Type.String() + ", got " + typeErr.Value,
			Type: "type_error." + typeErr.Type.Kind().String(),
		}}, true
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []model.ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  syntaxErr.Error(),
			Type: "value_error.jsondecode",
		}}, true
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusBadRequest {
		msg := "invalid request body"
		if he.Internal != nil {
			msg = he.Internal.Error()
		}
		return []model.ValidationIssue{{Loc: []string{"body"}, Msg: msg, Type: "value_error.jsondecode"}}, true
	}
	return nil, false
}

func validationIssues(err error) []model.ValidationIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
	issues := make([]model.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issue := model.ValidationIssue{
			Loc:  []string{"body", fe.Field()},
			Msg:  fe.Error(),
			Type: "value_error." + fe.Tag(),
		}
		if fe.Tag() == "required" {
			issue.Msg = "field required"
			issue.Type = "value_error.missing"
		}
		issues = append(issues, issue)
	}
	return issues
}
