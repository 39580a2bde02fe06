package apierror

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	depCodeRe    = regexp.MustCompile(`^[A-Z0-9]+$`)
	alphaSpaceRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

const dateLayout = "2006-01-02"

// Init mendaftarkan glue validasi ke validator bawaan Gin:
// nama field diambil dari tag json, plus aturan kustom milik form console.
// Dipanggil sekali dari main sebelum router dibangun.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Mengambil nama dari tag json (contoh: `json:"departmentCode"`)
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// depcode: huruf besar dan angka saja (panjang diurus tag min/max)
	_ = v.RegisterValidation("depcode", func(fl validator.FieldLevel) bool {
		return depCodeRe.MatchString(fl.Field().String())
	})

	// alphaspace: huruf dan spasi saja, untuk nama orang
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRe.MatchString(fl.Field().String())
	})

	// adult: tanggal lahir valid dan umur >= 18 pada saat submit
	_ = v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		dob, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return AgeAt(dob, time.Now()) >= 18
	})
}

// AgeAt menghitung umur penuh pada tanggal now; ulang tahun yang belum
// lewat bulan/harinya mengurangi selisih tahun naif satu.
func AgeAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
