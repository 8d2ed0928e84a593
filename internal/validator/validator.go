// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar-day format accepted by the API.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format used by budgets.
const MonthLayout = "2006-01"

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine and
// reports field errors by their JSON names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("month_year", validateMonthYear)
	}
}

// Message turns a binding error into a short client-facing message such as
// "amount is required". Non-validation errors (malformed JSON) are reported
// as a generic invalid request body.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "min":
			if fe.Kind() == reflect.String {
				return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
			}
			return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "max":
			if fe.Kind() == reflect.String {
				return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
			}
			return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return "Invalid request body"
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateMonthYear(fl validator.FieldLevel) bool {
	_, err := time.Parse(MonthLayout, fl.Field().String())
	return err == nil
}
