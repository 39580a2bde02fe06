package department

import (
	"context"
	"sync"

	"hr-admin/internal/shared/apierror"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/webview"

	"go.uber.org/zap"
)

// errorAliases adalah nama field yang backend pakai saat menolak mutasi
// department di luar bentuk {errors: ...} standar.
var errorAliases = []string{"DepartmentCode"}

// Snapshot adalah potret state yang dirender halaman; salinan, bukan referensi.
type Snapshot struct {
	Items      []Department
	TotalCount int64
	Page       int
	PageSize   int
	Loading    bool
	Err        string
}

// Store memegang satu halaman department di memori beserta kursornya.
// Semua mutasi lewat HR API; state lokal hanya cache tampilan dan
// dibuang saat proses berhenti.
type Store interface {
	Fetch(ctx context.Context, page, pageSize int) error
	Snapshot() Snapshot
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	Update(ctx context.Context, id int64, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id int64) error
	CodeExists(code string, excludeID int64) bool
}

type store struct {
	client Client
	logger *zap.Logger

	mu         sync.Mutex
	items      []Department
	totalCount int64
	page       int
	pageSize   int
	loading    bool
	err        string

	// generation naik setiap Fetch; response dari fetch yang sudah
	// disusul fetch lain dibuang supaya last-issued yang menang.
	generation uint64
}

func NewStore(client Client, logger ...*zap.Logger) Store {
	l := zap.L().Named("department.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.store")
	}
	return &store{
		client:   client,
		logger:   l,
		page:     1,
		pageSize: webview.DefaultPageSize,
	}
}

func (s *store) Fetch(ctx context.Context, page, pageSize int) error {
	page = webview.NormalizePage(page)
	pageSize = webview.NormalizePageSize(pageSize)

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	result, err := s.client.GetPaged(ctx, page, pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// sudah ada fetch yang lebih baru; hasil ini basi
		contextutil.GetLogger(ctx, s.logger).Debug("discarding stale fetch", zap.Int("page", page))
		return nil
	}
	s.loading = false

	if err != nil {
		// list lama dipertahankan; hanya pesan error yang berubah
		s.err = apierror.Normalize(err, errorAliases...)
		return err
	}

	s.items = result.Items
	s.totalCount = result.TotalCount
	s.page = page
	s.pageSize = pageSize
	return nil
}

func (s *store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Department, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:      items,
		TotalCount: s.totalCount,
		Page:       s.page,
		PageSize:   s.pageSize,
		Loading:    s.loading,
		Err:        s.err,
	}
}

func (s *store) Create(ctx context.Context, req CreateDepartmentRequest) (Department, error) {
	s.begin()

	created, err := s.client.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = apierror.Normalize(err, errorAliases...)
		return Department{}, err
	}

	s.items = append(s.items, created)
	return created, nil
}

func (s *store) Update(ctx context.Context, id int64, req UpdateDepartmentRequest) error {
	s.begin()

	err := s.client.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = apierror.Normalize(err, errorAliases...)
		return err
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Code = req.Code
			s.items[i].Name = req.Name
			break
		}
	}
	return nil
}

func (s *store) Delete(ctx context.Context, id int64) error {
	s.begin()

	err := s.client.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = apierror.Normalize(err, errorAliases...)
		return err
	}

	kept := s.items[:0]
	for _, d := range s.items {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.items = kept
	return nil
}

// CodeExists memeriksa duplikat kode terhadap halaman yang sedang dimuat.
// Ini cek oportunistik untuk feedback cepat; keunikan sesungguhnya tetap
// ditegakkan server.
func (s *store) CodeExists(code string, excludeID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.items {
		if d.Code == code && d.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}
