package settings

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/huynhanx03/smart-shms/pkg/common/apperr"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every field against its validate tag.
func (c Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return apperr.MapError("settings", err, apperr.CodeConfig, apperr.MsgValidateFailed)
	}
	return nil
}
