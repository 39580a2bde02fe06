package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError membawa hasil mentah dari request upstream yang gagal.
// Body disimpan apa adanya: bentuk payload error backend tidak konsisten,
// jadi interpretasinya diserahkan ke Normalize.
type APIError struct {
	StatusCode int    // 0 berarti gagal di level transport (timeout, connection refused)
	Body       []byte // raw response body, boleh kosong
	Err        error  // transport error, jika ada
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("upstream request failed: %v", e.Err)
		}
		return "upstream request failed"
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusOf mengembalikan HTTP status dari error upstream, 0 jika bukan APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized melaporkan apakah upstream menolak token sesi (401).
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}
