package employee

import (
	"context"
	"sync"

	"hr-admin/internal/shared/apierror"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/webview"

	"go.uber.org/zap"
)

// Backend menolak email duplikat dengan payload {"Email": ["..."]}.
var errorAliases = []string{"Email"}

type Snapshot struct {
	Items      []Employee
	TotalCount int64
	Page       int
	PageSize   int
	Loading    bool
	Err        string
}

// Store memegang satu halaman employee di memori. Field hasil hitungan
// server (age, department summary) tidak pernah direkonsiliasi lokal:
// setelah mutasi sukses halaman di-fetch ulang oleh handler.
type Store interface {
	Fetch(ctx context.Context, page, pageSize int) error
	Snapshot() Snapshot
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}

type store struct {
	client Client
	logger *zap.Logger

	mu         sync.Mutex
	items      []Employee
	totalCount int64
	page       int
	pageSize   int
	loading    bool
	err        string
	generation uint64
}

func NewStore(client Client, logger ...*zap.Logger) Store {
	l := zap.L().Named("employee.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.store")
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
		contextutil.GetLogger(ctx, s.logger).Debug("discarding stale fetch", zap.Int("page", page))
		return nil
	}
	s.loading = false

	if err != nil {
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

	items := make([]Employee, len(s.items))
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

func (s *store) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	s.begin()

	created, err := s.client.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = apierror.Normalize(err, errorAliases...)
		return Employee{}, err
	}

	s.items = append(s.items, created)
	return created, nil
}

func (s *store) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error {
	s.begin()

	err := s.client.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = apierror.Normalize(err, errorAliases...)
		return err
	}

	// merge field yang bisa diedit; age dan department summary menunggu
	// fetch ulang dari server
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].FirstName = req.FirstName
			s.items[i].LastName = req.LastName
			s.items[i].Email = req.Email
			s.items[i].DateOfBirth = req.DateOfBirth
			s.items[i].Salary = req.Salary
			s.items[i].DepartmentID = req.DepartmentID
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
	for _, e := range s.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.items = kept
	return nil
}

func (s *store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}
