package api

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lifebuddy/lifebuddy/internal/llm"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func initValidator() {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterValidation("modelref", func(fl validator.FieldLevel) bool {
			_, err := llm.ParseModelRef(fl.Field().String())
			return err == nil
		})
	})
}
