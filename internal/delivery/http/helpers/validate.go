package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements validation.Validatable, runs Validate(). A malformed body is
// answered with 400, rejected fields with 422. Callers should return immediately when
// DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	v, ok := dest.(validation.Validatable)
	if !ok {
		return true
	}
	err := v.Validate()
	if err == nil {
		return true
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		WriteValidationError(w, fieldMessages(verrs))
		return false
	}
	WriteJSONError(w, http.StatusUnprocessableEntity, ErrCodeValidation, err.Error())
	return false
}

func fieldMessages(errs validation.Errors) map[string]string {
	fields := make(map[string]string, len(errs))
	for name, err := range errs {
		if err != nil {
			fields[name] = err.Error()
		}
	}
	return fields
}
