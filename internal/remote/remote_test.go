package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containment/internal/domain"
	"containment/internal/remote"
	"containment/internal/services/containment"
	"containment/internal/services/run"
	"containment/internal/store"
)

func newServer(t *testing.T, limit int) (*httptest.Server, *remote.HTTP) {
	t.Helper()
	runs := run.New(containment.New(nil, containment.Options{}), store.NewMemoryStore(), nil)
	srv := httptest.NewServer(remote.NewHandler(runs, nil, limit))
	t.Cleanup(srv.Close)
	return srv, remote.NewHTTP(srv.URL+"/", srv.Client())
}

func TestSolveAndFetch(t *testing.T) {
	_, client := newServer(t, 0)
	ctx := context.Background()

	p := domain.Problem{
		Motes:   []domain.Mote{{Radius: 1}, {Radius: 1}},
		Devices: []domain.Device{{Length: 10, Width: 10, Height: 10}},
	}
	rep, err := client.Solve(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.ID)
	assert.Len(t, rep.Fingerprint.String(), 64)
	assert.InDelta(t, 4.18879, rep.Result.Uncontained, 1e-5)
	require.Len(t, rep.Result.Assignments, 1)
	assert.Equal(t, 0, rep.Result.Assignments[0].Device)

	got, err := client.FetchReport(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)
	assert.Equal(t, rep.Result, got.Result)
	assert.True(t, rep.CreatedAt.Equal(got.CreatedAt))
}

func TestFetchReport_NotFound(t *testing.T) {
	_, client := newServer(t, 0)

	_, err := client.FetchReport(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, remote.ErrNotFound)
}

func TestSolve_Rejected(t *testing.T) {
	_, client := newServer(t, 2)
	ctx := context.Background()

	_, err := client.Solve(ctx, domain.Problem{Motes: []domain.Mote{{Radius: -1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "mote radius")

	_, err = client.Solve(ctx, domain.Problem{Motes: []domain.Mote{{Radius: 1}, {Radius: 2}, {Radius: 3}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "413")
}

func TestHandler_BadJSONAndHealth(t *testing.T) {
	srv, _ := newServer(t, 0)

	resp, err := srv.Client().Post(srv.URL+"/solve", "application/json", strings.NewReader(`{"devices": [[1, 2]]}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
