package validator

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Validate checks a request struct against its validate tags and returns a
// field-to-rule map suitable for the details slot of an error envelope, or
// nil when the struct passes.
func Validate(s interface{}) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
