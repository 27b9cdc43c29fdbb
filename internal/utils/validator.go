package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate

	barcodePattern     = regexp.MustCompile(`^[0-9]{1,8}$`)
	productNamePattern = regexp.MustCompile(`^[a-zA-Z]{1,50}$`)
	productDatePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{2}$`)
	holdingDatePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
)

func InitValidator() {
	if Validate != nil {
		return
	}
	v := validator.New()
	_ = v.RegisterValidation("barcode", matches(barcodePattern))
	_ = v.RegisterValidation("product_name", matches(productNamePattern))
	_ = v.RegisterValidation("product_date", matches(productDatePattern))
	_ = v.RegisterValidation("holding_date", matches(holdingDatePattern))
	Validate = v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func IsHoldingDate(s string) bool { return holdingDatePattern.MatchString(s) }
