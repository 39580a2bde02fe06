package webview

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "hradmin_flash"

// Flash adalah notifikasi transien satu kali tayang setelah aksi mutasi.
type Flash struct {
	Kind    string // "success" atau "danger"
	Message string
}

// SetFlash menyimpan notifikasi di cookie untuk dirender pada request
// berikutnya. Nilai disimpan mentah; escaping cookie sudah diurus Gin.
func SetFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, kind+"|"+message, 60, "/", "", false, true)
}

// TakeFlash mengambil sekaligus menghapus notifikasi yang tersimpan.
func TakeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
