package httperr

import "errors"

// BusinessError is an expected, recoverable outcome (lost race, bad state,
// missing record) identified by a stable code. Handlers map codes onto HTTP
// statuses; usecases never see transport concerns.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" when err is not a business error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
