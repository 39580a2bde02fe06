package apierror

import "net/http"

// ErrInvalidInput dipakai handler saat input form tidak bisa diproses
// sama sekali (id rusak, error validasi yang bukan per field).
var ErrInvalidInput = New(
	CodeInvalidInput,
	"The provided input is invalid",
	http.StatusBadRequest,
)
