package webview

import "fmt"

// PageSizes adalah pilihan ukuran halaman yang ditampilkan di tabel.
var PageSizes = []int{5, 10, 25, 50}

const DefaultPageSize = 10

// Pagination adalah view model untuk kontrol halaman di bawah tabel.
type Pagination struct {
	Total      int64
	TotalPages int
	Page       int
	PageSize   int
	From       int64 // nomor baris pertama yang tampil, 1-based
	To         int64 // nomor baris terakhir yang tampil
	Pages      []int // window nomor halaman yang dirender
	HasPrev    bool
	HasNext    bool
}

func NewPagination(total int64, page, limit int) Pagination {
	page = NormalizePage(page)
	limit = NormalizePageSize(limit)

	totalPages := 0
	if limit > 0 {
		// pembulatan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	from := int64(0)
	to := int64(0)
	if total > 0 {
		from = int64(page-1)*int64(limit) + 1
		to = int64(page) * int64(limit)
		if to > total {
			to = total
		}
	}

	return Pagination{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
		From:       from,
		To:         to,
		Pages:      pageWindow(page, totalPages),
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Summary menghasilkan teks ringkasan tabel, mis. "Showing 11 to 20 of 25 entries".
func (p Pagination) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", p.From, p.To, p.Total)
}

// pageWindow memilih maksimal 5 nomor halaman di sekitar halaman aktif.
func pageWindow(page, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	const width = 5
	start := page - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > totalPages {
		end = totalPages
		if start = end - width + 1; start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// NormalizePage menjaga page >= 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizePageSize membatasi ukuran halaman ke pilihan yang tersedia.
func NormalizePageSize(size int) int {
	for _, allowed := range PageSizes {
		if size == allowed {
			return size
		}
	}
	return DefaultPageSize
}
