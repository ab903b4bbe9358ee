package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// enums maps custom validation tags to their closed value sets.
var enums = map[string]map[string]bool{
	"idea_category":    models.IdeaCategories,
	"investment_range": models.InvestmentRanges,
	"time_to_start":    models.TimesToStart,
	"business_model":   models.BusinessModels,
	"market_size":      models.MarketSizes,
	"idea_status":      models.IdeaStatuses,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, values := range enums {
		values := values
		v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return values[fl.Field().String()]
		})
	}
	v.RegisterValidation("maxwords", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(strings.Fields(fl.Field().String())) <= limit
	})
	return v
}

// validateStruct runs the struct's validate tags and converts the first failure into a
// *ValidationError. Fields are checked in declaration order.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := fieldPath(fe)
	return invalid(field, message(field, fe))
}

// fieldPath drops the root struct name, leaving e.g. "contactInfo.email" or "keyFeatures[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func plural(n string, word string) string {
	if n == "1" {
		return word
	}
	return word + "s"
}

func message(field string, fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid id"
	case "min", "gte":
		switch kind {
		case reflect.Slice:
			return fmt.Sprintf("%s must have at least %s %s", field, fe.Param(), plural(fe.Param(), "item"))
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "max", "lte":
		switch kind {
		case reflect.Slice:
			return fmt.Sprintf("%s must have at most %s %s", field, fe.Param(), plural(fe.Param(), "item"))
		case reflect.String:
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
	case "maxwords":
		return fmt.Sprintf("%s cannot exceed %s words", strings.ToUpper(field[:1])+field[1:], fe.Param())
	}
	if values, ok := enums[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(sortedKeys(values), ", "))
	}
	return field + " is invalid"
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
