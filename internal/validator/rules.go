package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// registerCustomRules adds domain rules on top of the built-in tags.
func registerCustomRules(v *validator.Validate) error {
	// coupon_code: uppercase letters, digits, dash and underscore only.
	return v.RegisterValidation("coupon_code", func(fl validator.FieldLevel) bool {
		return couponCodePattern.MatchString(fl.Field().String())
	})
}

// RegisterGinRules installs the custom rules into gin's binding
// validator so `binding:` tags can use them too.
func RegisterGinRules() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return registerCustomRules(v)
	}
	return nil
}
