package errs

import (
	"errors"
	"net/http"
)

// Kind classifies every error the service can return to a client.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindBadGateway
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

var (
	ErrInternalServer          = New(KindInternal, "Internal server error")
	ErrClient                  = New(KindValidation, "Bad request")
	ErrUnauthorized            = New(KindUnauthorized, "Token tidak valid atau telah kedaluwarsa")
	ErrForbidden               = New(KindForbidden, "Anda tidak memiliki akses ke halaman ini")
	ErrAccountNotFound         = New(KindNotFound, "Account not found")
	ErrInvalidCredentialsEmail = New(KindUnauthorized, "Email or password is incorrect")
	ErrUnverifiedUser          = New(KindForbidden, "The user is not verified yet")
	ErrNotAnImage              = New(KindValidation, "Uploaded file is not an image")
	ErrBadGateway              = New(KindBadGateway, "Upstream provider is unavailable")

	ErrRequiredFields     = New(KindValidation, "All fields are required!")
	ErrInvalidEmailFormat = New(KindValidation, "Invalid email format!")
	ErrWeakPassword       = New(KindValidation, "Password must be at least 8 characters long and include at least one number, one uppercase letter, and one lowercase letter.")

	ErrEmailInPegawai      = New(KindConflict, "Email already exists in Pegawai!")
	ErrEmailInPembeli      = New(KindConflict, "Email already exists in Pembeli!")
	ErrEmailInOrganisasi   = New(KindConflict, "Email already exists in Organisasi!")
	ErrEmailInPenitip      = New(KindConflict, "Email already exists in Penitip!")
	ErrEmailOrKTPInPenitip = New(KindConflict, "Email or No KTP already exists in Penitip!")

	ErrPenitipNotFound       = New(KindNotFound, "Penitip not found!")
	ErrIDPenitipRequired     = New(KindValidation, "id_penitip is required!")
	ErrInvalidNumber         = New(KindValidation, "no_ktp and no_telepon must be numeric!")
	ErrBarangNotFound        = New(KindNotFound, "Barang tidak ditemukan")
	ErrIDBarangRequired      = New(KindValidation, "id_barang is required!")
	ErrInvalidBarangID       = New(KindValidation, "ID barang tidak valid")
	ErrInvalidRating         = New(KindValidation, "Rating tidak valid")
	ErrRatingPenitipNotFound = New(KindNotFound, "Penitip tidak ditemukan untuk barang ini")
	ErrPembeliNotFound       = New(KindNotFound, "Pembeli tidak ditemukan")
)

// KindOf reports the kind of err; anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func GetErrorStatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadGateway:
		return http.StatusBadGateway
	case KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
