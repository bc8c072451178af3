package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNoQuestions signals a configuration that parses but declares nothing
	// to render.
	ErrNoQuestions = errors.New("config: questions list is empty")

	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()

		// Report field names from json tags so errors match the document.
		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validatorInstance
}

// Validate applies the struct-tag rules plus the structural invariants tags
// cannot express: non-blank subject, a non-empty question list, recognized
// type tokens, selectbox/options pairing, and string-or-bool custom values.
// The first violation is returned; a misconfigured form degrades rather than
// rendering partially.
func Validate(cfg Config) error {
	if err := getValidator().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("config: field %q fails %q", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}

	if strings.TrimSpace(cfg.Subject) == "" {
		return errors.New("config: subject must not be blank")
	}
	if len(cfg.Questions) == 0 {
		return ErrNoQuestions
	}

	for i, question := range cfg.Questions {
		if err := validateQuestion(question); err != nil {
			return fmt.Errorf("config: question %d (%s): %w", i, question.Name, err)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	if !q.Type.Known() {
		return fmt.Errorf("unknown question type %q", q.Type)
	}

	if q.Type == TypeSelectbox {
		if len(q.Options) == 0 {
			return errors.New("selectbox question must have options")
		}
	} else if len(q.Options) > 0 {
		// Tolerated for compatibility with hand-edited documents; the
		// builder ignores the options.
		slog.Warn("options can only be used by selectbox question type",
			"question", q.Name, "type", string(q.Type))
	}

	for key, value := range q.Custom {
		switch value.(type) {
		case string, bool:
		default:
			return fmt.Errorf("custom attribute %q must be a string or bool, got %T", key, value)
		}
	}
	return nil
}
