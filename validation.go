package logconfig

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateOptions(opts *Options) error {
	const op errors.Op = "logconfig.validateOptions"

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(opts); err != nil {
		return errors.New(op).Err(err).Msg(errMsgOptionsInvalid)
	}

	return nil
}
