package main

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"gopkg.in/go-playground/validator.v9"
)

type defaultValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = &defaultValidator{}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {

	if kindOfData(obj) == reflect.Struct {
		v.lazyinit()
		if err := v.validate.Struct(obj); err != nil {
			return error(err)
		}
	}

	return nil
}

func (v *defaultValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *defaultValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
	})
}

func kindOfData(data interface{}) reflect.Kind {
	value := reflect.ValueOf(data)
	valueType := value.Kind()

	if valueType == reflect.Ptr {
		valueType = value.Elem().Kind()
	}
	return valueType
}

func setValidation() {
	binding.Validator = new(defaultValidator)
}

// requiredFieldMessages maps request struct fields rejected by the
// validator to user-facing messages. Struct field order decides which
// missing field is reported first.
var requiredFieldMessages = map[string]string{
	"ChatID":   "missing_chat_id",
	"BotName":  "missing_bot_name",
	"BotToken": "missing_bot_token",
	"Text":     "missing_text",
	"Bot":      "missing_bot",
}

func bindingErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			if id, ok := requiredFieldMessages[fe.Field()]; ok {
				return getLocalizedMessage(id)
			}
		}
	}

	return getLocalizedMessage("wrong_data")
}
