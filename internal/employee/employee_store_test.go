package employee_test

import (
	"context"
	"testing"

	"hr-admin/internal/employee"
	"hr-admin/internal/shared/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	getAllFn   func(ctx context.Context) ([]employee.Employee, error)
	getPagedFn func(ctx context.Context, page, pageSize int) (employee.PagedEmployees, error)
	getByIDFn  func(ctx context.Context, id int64) (employee.Employee, error)
	createFn   func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	updateFn   func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeClient) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return f.getAllFn(ctx)
}

func (f *fakeClient) GetPaged(ctx context.Context, page, pageSize int) (employee.PagedEmployees, error) {
	return f.getPagedFn(ctx, page, pageSize)
}

func (f *fakeClient) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeClient) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return f.createFn(ctx, req)
}

func (f *fakeClient) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	return f.updateFn(ctx, id, req)
}

func (f *fakeClient) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

var jane = employee.Employee{
	ID:           1,
	FirstName:    "Jane",
	LastName:     "Doe",
	Email:        "jane@example.com",
	DateOfBirth:  "1996-04-12",
	Age:          30,
	Salary:       5000,
	DepartmentID: 2,
	Department:   &employee.DepartmentSummary{ID: 2, Code: "ENG", Name: "Engineering"},
}

func TestStore_FetchPopulatesSnapshot(t *testing.T) {
	fc := &fakeClient{
		getPagedFn: func(_ context.Context, page, pageSize int) (employee.PagedEmployees, error) {
			return employee.PagedEmployees{Items: []employee.Employee{jane}, TotalCount: 42}, nil
		},
	}
	store := employee.NewStore(fc)

	require.NoError(t, store.Fetch(context.Background(), 1, 10))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "jane@example.com", snap.Items[0].Email)
	assert.Equal(t, 30, snap.Items[0].Age)
	assert.Equal(t, int64(42), snap.TotalCount)
}

func TestStore_CreateEmailConflictUsesAlias(t *testing.T) {
	fc := &fakeClient{
		createFn: func(_ context.Context, _ employee.CreateEmployeeRequest) (employee.Employee, error) {
			return employee.Employee{}, &apierror.APIError{
				StatusCode: 409,
				Body:       []byte(`{"Email":"Email already exists"}`),
			}
		},
	}
	store := employee.NewStore(fc)

	_, err := store.Create(context.Background(), employee.CreateEmployeeRequest{Email: "jane@example.com"})

	assert.Error(t, err)
	assert.Equal(t, "Email already exists", store.Snapshot().Err)
}

func TestStore_UpdateMergesEditableFieldsOnly(t *testing.T) {
	fc := &fakeClient{
		getPagedFn: func(_ context.Context, _, _ int) (employee.PagedEmployees, error) {
			return employee.PagedEmployees{Items: []employee.Employee{jane}, TotalCount: 1}, nil
		},
		updateFn: func(_ context.Context, _ int64, _ employee.UpdateEmployeeRequest) error {
			return nil
		},
	}
	store := employee.NewStore(fc)
	require.NoError(t, store.Fetch(context.Background(), 1, 10))

	err := store.Update(context.Background(), 1, employee.UpdateEmployeeRequest{
		ID:           1,
		FirstName:    "Janet",
		LastName:     "Doe",
		Email:        "janet@example.com",
		DateOfBirth:  "1996-04-12",
		Salary:       6000,
		DepartmentID: 3,
	})

	require.NoError(t, err)
	got := store.Snapshot().Items[0]
	assert.Equal(t, "Janet", got.FirstName)
	assert.Equal(t, "janet@example.com", got.Email)
	assert.Equal(t, float64(6000), got.Salary)
	assert.Equal(t, int64(3), got.DepartmentID)
	// age dan department summary milik server, menunggu fetch ulang
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, "ENG", got.Department.Code)
}

func TestStore_DeleteRemovesItem(t *testing.T) {
	fc := &fakeClient{
		getPagedFn: func(_ context.Context, _, _ int) (employee.PagedEmployees, error) {
			return employee.PagedEmployees{
				Items:      []employee.Employee{jane, {ID: 2, FirstName: "Bob"}},
				TotalCount: 2,
			}, nil
		},
		deleteFn: func(_ context.Context, _ int64) error { return nil },
	}
	store := employee.NewStore(fc)
	require.NoError(t, store.Fetch(context.Background(), 1, 10))

	require.NoError(t, store.Delete(context.Background(), 1))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(2), snap.Items[0].ID)
}

func TestStore_StaleFetchDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fc := &fakeClient{
		getPagedFn: func(_ context.Context, page, _ int) (employee.PagedEmployees, error) {
			if page == 1 {
				close(started)
				<-release
				return employee.PagedEmployees{Items: []employee.Employee{{ID: 1, FirstName: "Old"}}, TotalCount: 1}, nil
			}
			return employee.PagedEmployees{Items: []employee.Employee{{ID: 2, FirstName: "New"}}, TotalCount: 1}, nil
		},
	}
	store := employee.NewStore(fc)

	done := make(chan error, 1)
	go func() {
		done <- store.Fetch(context.Background(), 1, 10)
	}()
	<-started

	require.NoError(t, store.Fetch(context.Background(), 2, 10))
	close(release)
	require.NoError(t, <-done)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "New", snap.Items[0].FirstName)
}
