package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bagpresto/internal/core/apperr"
)

var (
	validate        = newValidator()
	errEmptyBody    = errors.New("empty body")
	errTrailingData = errors.New("unexpected data after JSON object")
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// maxJSONBody caps every JSON request body.
const maxJSONBody = 64 << 10

// decodeJSONBody decodes a single JSON object from the request body into dest
// and validates it. Bodies over maxJSONBody or with anything but whitespace
// after the object are rejected.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return bodyError(err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return bodyError(err)
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		err = errEmptyBody
	case errors.As(err, &tooLarge):
		return apperr.Wrap(apperr.CodeValidation, err, "Requête trop volumineuse").
			WithDetails(map[string]string{"body": fmt.Sprintf("maximum %d octets", tooLarge.Limit)})
	}
	return apperr.Wrap(apperr.CodeValidation, err, "Requête invalide").
		WithDetails(map[string]string{"body": err.Error()})
}

func formatValidationErrors(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return apperr.Wrap(apperr.CodeValidation, err, "Requête invalide")
	}
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = validationMessage(fe)
	}
	return apperr.Validation("Certains champs sont invalides").WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Champ requis"
	case "email":
		return "Adresse email invalide"
	case "len":
		return fmt.Sprintf("Doit contenir %s caractères", fe.Param())
	case "numeric":
		return "Doit contenir uniquement des chiffres"
	case "min":
		return fmt.Sprintf("Doit être au moins %s", fe.Param())
	case "max":
		return fmt.Sprintf("Ne doit pas dépasser %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Doit être l'une des valeurs : %s", fe.Param())
	}
	return "Valeur invalide"
}
