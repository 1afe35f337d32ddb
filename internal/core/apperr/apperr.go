// Package apperr is the error taxonomy shared by the services and the HTTP
// adapter. Every error carries a code that maps to an HTTP status and a
// French message that is safe to show to end users.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation   Code = "validation"
	CodeEligibility  Code = "eligibility"
	CodeUpload       Code = "upload"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeState        Code = "state"
	CodeRemote       Code = "remote"
	CodeInternal     Code = "internal"
)

// Metadata describes how a code surfaces over HTTP. PublicMessage replaces
// the error message when ShowMessage is false.
type Metadata struct {
	HTTPStatus    int
	PublicMessage string
	ShowMessage   bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation:   {HTTPStatus: http.StatusBadRequest, PublicMessage: "Les informations saisies sont invalides", ShowMessage: true},
	CodeEligibility:  {HTTPStatus: http.StatusBadRequest, PublicMessage: "Zone non desservie", ShowMessage: true},
	CodeUpload:       {HTTPStatus: http.StatusBadRequest, PublicMessage: "Fichier refusé", ShowMessage: true},
	CodeUnauthorized: {HTTPStatus: http.StatusUnauthorized, PublicMessage: "Authentification requise", ShowMessage: true},
	CodeForbidden:    {HTTPStatus: http.StatusForbidden, PublicMessage: "Accès refusé", ShowMessage: false},
	CodeNotFound:     {HTTPStatus: http.StatusNotFound, PublicMessage: "Ressource introuvable", ShowMessage: true},
	CodeConflict:     {HTTPStatus: http.StatusConflict, PublicMessage: "Conflit détecté", ShowMessage: true},
	CodeState:        {HTTPStatus: http.StatusUnprocessableEntity, PublicMessage: "Changement de statut refusé", ShowMessage: true},
	CodeRemote:       {HTTPStatus: http.StatusBadGateway, PublicMessage: "Une erreur est survenue, veuillez réessayer plus tard", ShowMessage: false},
	CodeInternal:     {HTTPStatus: http.StatusInternalServerError, PublicMessage: "Une erreur est survenue", ShowMessage: false},
}

// MetadataFor returns the metadata of code, falling back to CodeInternal.
func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details map[string]string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// Validation is shorthand for a validation error with a message.
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Remote wraps a failure of the table store or another collaborator.
func Remote(err error) *Error {
	return Wrap(CodeRemote, err, MetadataFor(CodeRemote).PublicMessage)
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() map[string]string {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches per-field messages.
func (e *Error) WithDetails(details map[string]string) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts an *Error from err's chain.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf returns the code carried by err, CodeInternal when none.
func CodeOf(err error) Code {
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}
