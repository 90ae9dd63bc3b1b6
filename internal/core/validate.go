package core

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var nonBlank = regexp.MustCompile(`\S`)

func init() {
	validate = validator.New()

	// Month key: "2024-12"
	_ = validate.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(monthLayout, fl.Field().String())
		return err == nil
	})

	// Calendar date: "2024-12-31"
	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})

	// Not empty and not only whitespace
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})
}

// fieldErrors maps struct fields to the sentinel reported for them.
var fieldErrors = map[string]error{
	"ID":          ErrMissingID,
	"DateISO":     ErrInvalidDate,
	"AmountCents": ErrInvalidAmount,
	"CapCents":    ErrInvalidAmount,
	"Name":        ErrEmptyCategoryName,
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if sentinel, ok := fieldErrors[fe.StructField()]; ok {
		return fmt.Errorf("%w: %s failed %q", sentinel, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%s failed %q", fe.Field(), fe.Tag())
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	return validate.Var(s, "isodate") == nil
}
