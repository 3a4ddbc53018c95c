package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParams_Query(t *testing.T) {
	q := ListParams{Page: 2, PageSize: 50, Search: "smoke", Project: 7}.query()

	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "50", q.Get("page_size"))
	assert.Equal(t, "smoke", q.Get("search"))
	assert.Equal(t, "7", q.Get("project"))

	// Zero values are omitted, not sent as zeroes.
	empty := ListParams{}.query()
	assert.Empty(t, empty.Encode())
}

func TestListProjects_DecodesPageEnvelope(t *testing.T) {
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/projects/", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(Page[Project]{
			Count:   42,
			Results: []Project{{ID: 1, Name: "checkout"}},
		})
	}))
	require.NoError(t, store.SetToken("tok"))

	page, err := client.ListProjects(context.Background(), ListParams{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 42, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "checkout", page.Results[0].Name)
}

func TestExecuteTestSuite_HitsActionEndpoint(t *testing.T) {
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/testsuites/testsuites/12/execute/", r.URL.Path)
		json.NewEncoder(w).Encode(SuiteExecution{ID: 3, Status: "passed", Total: 5, Passed: 5})
	}))
	require.NoError(t, store.SetToken("tok"))

	exec, err := client.ExecuteTestSuite(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "passed", exec.Status)
	assert.Equal(t, 5, exec.Passed)
}

func TestBatchDeleteExecutions_SendsIDs(t *testing.T) {
	var got struct {
		IDs []int `json:"ids"`
	}
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/executions/executions/batch_delete/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, store.SetToken("tok"))

	require.NoError(t, client.BatchDeleteExecutions(context.Background(), []int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, got.IDs)
}

func TestExecutePerformanceTest_OutlivesDefaultTimeout(t *testing.T) {
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/testcases/performance-tests/4/execute/", r.URL.Path)
		// Longer than a shrunk default would allow; the per-call
		// override keeps the call alive.
		time.Sleep(30 * time.Millisecond)
		json.NewEncoder(w).Encode(PerformanceReport{ID: 1, Status: "completed", TotalRequests: 1000})
	}))
	require.NoError(t, store.SetToken("tok"))

	report, err := client.ExecutePerformanceTest(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "completed", report.Status)
}

func TestToggleSchedule_PatchesStatus(t *testing.T) {
	var got map[string]string
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/scheduler/schedules/8/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(Schedule{ID: 8, Status: "paused"})
	}))
	require.NoError(t, store.SetToken("tok"))

	s, err := client.ToggleSchedule(context.Background(), 8, "paused")
	require.NoError(t, err)
	assert.Equal(t, "paused", got["status"])
	assert.Equal(t, "paused", s.Status)
}
