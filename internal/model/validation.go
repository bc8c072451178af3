package model

import (
	"errors"
	"fmt"
)

var (
	errActionMissing = errors.New("model builder: form action is required")
	errMethodMissing = errors.New("model builder: form method is required")
	errNoFields      = errors.New("model builder: form has no fields")
)

func validateForm(form FormModel) error {
	if form.Action == "" {
		return errActionMissing
	}
	if form.Method == "" {
		return errMethodMissing
	}
	if len(form.Fields) == 0 {
		return errNoFields
	}
	for _, field := range form.Fields {
		if err := validateField(field); err != nil {
			return fmt.Errorf("model builder: field %q: %w", field.Name, err)
		}
	}
	return nil
}

func validateField(field Field) error {
	if field.Name == "" {
		return errors.New("name is required")
	}
	if field.Selectbox() && len(field.Options) == 0 {
		return errors.New("selectbox requires options")
	}
	return nil
}
