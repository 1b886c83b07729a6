// Package validate performs the client-side checks that run before any
// network call. Failures never reach the backend.
package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/docbridge/docbridge/internal/core/domain"
)

// UploadInput is what the upload form collects before a create request.
type UploadInput struct {
	Title       string `validate:"required,max=255"`
	Filename    string `validate:"required"`
	ContentType string `validate:"required,doctype"`
}

// CategoryInput is what the category form collects.
type CategoryInput struct {
	Name  string `validate:"required,max=50"`
	Color string `validate:"required,hexcolor"`
	Icon  string `validate:"required,icon"`
}

// allowedContentTypes mirrors what the backend pipeline can process.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/tiff":      true,
}

// AllowedContentType reports whether the pipeline accepts the type.
func AllowedContentType(contentType string) bool {
	return allowedContentTypes[contentType]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		return AllowedContentType(fl.Field().String())
	})
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return domain.Icon(fl.Field().String()).Known()
	})
	return v
}

// Upload validates an upload form. The returned error, if any, is a
// *domain.ValidationError.
func Upload(input UploadInput) error {
	return translate(validate.Struct(input))
}

// Category validates a category form.
func Category(input CategoryInput) error {
	return translate(validate.Struct(input))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &domain.ValidationError{Messages: []string{err.Error()}}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return &domain.ValidationError{Messages: messages}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldName(fe), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #3366ff", fieldName(fe))
	case "doctype":
		return fmt.Sprintf("%s %q is not supported; use PDF, PNG, JPEG or TIFF", fieldName(fe), fe.Value())
	case "icon":
		return fmt.Sprintf("%s %q is not a known icon", fieldName(fe), fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "title"
	case "Filename":
		return "filename"
	case "ContentType":
		return "content type"
	case "Name":
		return "name"
	case "Color":
		return "color"
	case "Icon":
		return "icon"
	default:
		return fe.Field()
	}
}
