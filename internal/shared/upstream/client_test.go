package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"hr-admin/internal/shared/apierror"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := upstream.New(srv.URL, time.Second)

	t.Run("token in context", func(t *testing.T) {
		ctx := contextutil.WithToken(context.Background(), "secret-token")
		err := client.GetJSON(ctx, "/departments", nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", gotAuth)
	})

	t.Run("no token", func(t *testing.T) {
		err := client.GetJSON(context.Background(), "/departments", nil, nil)

		assert.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departments/paged", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"items":[{"departmentId":7}],"totalCount":25}`))
	}))
	defer srv.Close()

	client := upstream.New(srv.URL, time.Second)

	var out struct {
		Items []struct {
			ID int64 `json:"departmentId"`
		} `json:"items"`
		TotalCount int64 `json:"totalCount"`
	}
	query := url.Values{"page": {"2"}, "pageSize": {"10"}}
	err := client.GetJSON(context.Background(), "/departments/paged", query, &out)

	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(7), out.Items[0].ID)
	assert.Equal(t, int64(25), out.TotalCount)
}

func TestClient_ErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"DepartmentCode":["Code already exists"]}`))
	}))
	defer srv.Close()

	client := upstream.New(srv.URL, time.Second)

	err := client.PostJSON(context.Background(), "/departments", map[string]string{"departmentCode": "ENG"}, nil)

	var apiErr *apierror.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	// body diteruskan mentah untuk Normalize
	assert.JSONEq(t, `{"DepartmentCode":["Code already exists"]}`, string(apiErr.Body))
	assert.Equal(t, "Code already exists", apierror.Normalize(err, "DepartmentCode"))
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server mati sebelum request

	client := upstream.New(srv.URL, time.Second)

	err := client.GetJSON(context.Background(), "/departments", nil, nil)

	var apiErr *apierror.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Error(t, apiErr.Err)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := upstream.New(srv.URL, 50*time.Millisecond)

	err := client.GetJSON(context.Background(), "/departments", nil, nil)

	var apiErr *apierror.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
}

func TestClient_LogsThroughContextLogger(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reqLogger := zap.New(core).With(zap.String("request_id", "req-123"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := upstream.New(srv.URL, time.Second)

	ctx := contextutil.WithLogger(context.Background(), reqLogger)
	err := client.GetJSON(ctx, "/departments/99", nil, nil)
	assert.Error(t, err)

	// diagnostik memakai logger request sehingga request_id ikut tercatat
	entries := logs.FilterMessage("resource not found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
}

func TestClient_DeleteAndPut(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := upstream.New(srv.URL, time.Second)

	assert.NoError(t, client.Delete(context.Background(), "/departments/3"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/departments/3", gotPath)

	assert.NoError(t, client.PutJSON(context.Background(), "/departments/3", map[string]any{"departmentId": 3}))
	assert.Equal(t, http.MethodPut, gotMethod)
}
