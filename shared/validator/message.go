package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messageTag overrides every generated message of the field it annotates.
const messageTag = "message"

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"datetime": "{field} must match the format {param}",
	}
)

func message(root reflect.Type, err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if custom := fieldMessage(root, valErr.StructNamespace()); custom != "" {
				return custom
			}

			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// fieldMessage walks a namespace such as "UpsertCheckinRequest.Status" down
// from root and returns the field's message tag.
func fieldMessage(root reflect.Type, namespace string) string {
	if root == nil {
		return ""
	}

	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ""
	}

	current := root
	var field reflect.StructField

	for _, part := range parts[1:] {
		for current.Kind() == reflect.Pointer || current.Kind() == reflect.Slice {
			current = current.Elem()
		}

		if current.Kind() != reflect.Struct {
			return ""
		}

		if idx := strings.IndexByte(part, '['); idx >= 0 {
			part = part[:idx]
		}

		found, ok := current.FieldByName(part)
		if !ok {
			return ""
		}

		field = found
		current = found.Type
	}

	return field.Tag.Get(messageTag)
}
