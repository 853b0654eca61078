package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/cms-tools/internal/adapter"
	"github.com/MKhiriev/cms-tools/internal/config"
	"github.com/MKhiriev/cms-tools/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContentsAPI serves the metadata endpoint under /repos/ and raw files
// under /raw/, recording how many requests of each kind arrived.
type fakeContentsAPI struct {
	*httptest.Server

	metadataStatus int
	metadataBody   string
	payloadStatus  int
	payloadBody    string

	metadataCalls atomic.Int32
	payloadCalls  atomic.Int32
	userAgents    sync.Map
}

func newFakeContentsAPI(t *testing.T) *fakeContentsAPI {
	t.Helper()
	api := &fakeContentsAPI{metadataStatus: http.StatusOK, payloadStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/", func(w http.ResponseWriter, r *http.Request) {
		api.metadataCalls.Add(1)
		api.userAgents.Store(r.Header.Get("User-Agent"), true)
		w.WriteHeader(api.metadataStatus)
		_, _ = w.Write([]byte(api.metadataBody))
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		api.payloadCalls.Add(1)
		api.userAgents.Store(r.Header.Get("User-Agent"), true)
		w.WriteHeader(api.payloadStatus)
		_, _ = w.Write([]byte(api.payloadBody))
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

func (api *fakeContentsAPI) metadataFor(name string) string {
	return `{"name":"` + name + `","type":"file","download_url":"` + api.URL + `/raw/` + name + `"}`
}

func newHTTPFetcher(t *testing.T, api *fakeContentsAPI) (ConfigFetcher, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("test", &buf)

	source, err := adapter.NewGitHubConfigSource(config.Adapter{
		APIAddress: api.URL,
		UserAgent:  config.DefaultUserAgent,
	}, log)
	require.NoError(t, err)

	return NewConfigFetcher(source, log), &buf
}

func TestDownloadConfigOverHTTP_ReturnsSecondBody(t *testing.T) {
	api := newFakeContentsAPI(t)
	api.metadataBody = api.metadataFor("theme.json")
	api.payloadBody = `{"label":"Boilerplate","fields":[{"name":"color"}]}`

	f, _ := newHTTPFetcher(t, api)
	got := f.DownloadConfig(context.Background(), testRepo, testPath)

	require.NotNil(t, got)
	assert.JSONEq(t, api.payloadBody, string(got))
	assert.EqualValues(t, 1, api.metadataCalls.Load())
	assert.EqualValues(t, 1, api.payloadCalls.Load())

	agents := map[any]bool{}
	api.userAgents.Range(func(k, _ any) bool { agents[k] = true; return true })
	assert.Equal(t, map[any]bool{config.DefaultUserAgent: true}, agents)
}

func TestDownloadConfigOverHTTP_NotFound(t *testing.T) {
	api := newFakeContentsAPI(t)
	api.metadataStatus = http.StatusNotFound
	api.metadataBody = `{"message":"Not Found"}`

	f, buf := newHTTPFetcher(t, api)
	got := f.DownloadConfig(context.Background(), testRepo, "missing.json")

	assert.Nil(t, got)
	assert.EqualValues(t, 0, api.payloadCalls.Load())

	errorsLogged := entriesAtLevel(logEntries(t, buf), "error")
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, msgConfigNotFound, errorsLogged[0]["message"])
}

func TestDownloadConfigOverHTTP_MalformedPayload(t *testing.T) {
	api := newFakeContentsAPI(t)
	api.metadataBody = api.metadataFor("theme.json")
	api.payloadBody = `<html>oops</html>`

	f, buf := newHTTPFetcher(t, api)
	got := f.DownloadConfig(context.Background(), testRepo, testPath)

	assert.Nil(t, got)
	errorsLogged := entriesAtLevel(logEntries(t, buf), "error")
	require.Len(t, errorsLogged, 2)
	assert.Equal(t, msgFetchFailed, errorsLogged[0]["message"])
	assert.Contains(t, errorsLogged[1]["error"], adapter.ErrMalformedPayload.Error())
}

func TestDownloadConfigOverHTTP_MetadataServerError(t *testing.T) {
	api := newFakeContentsAPI(t)
	api.metadataStatus = http.StatusServiceUnavailable

	f, buf := newHTTPFetcher(t, api)
	got := f.DownloadConfig(context.Background(), testRepo, testPath)

	assert.Nil(t, got)
	assert.EqualValues(t, 0, api.payloadCalls.Load())

	errorsLogged := entriesAtLevel(logEntries(t, buf), "error")
	require.Len(t, errorsLogged, 2)
	assert.Equal(t, msgFetchFailed, errorsLogged[0]["message"])
	assert.Equal(t, float64(http.StatusServiceUnavailable), errorsLogged[1]["status_code"])
}

func TestDownloadConfigOverHTTP_Concurrent(t *testing.T) {
	api := newFakeContentsAPI(t)
	api.metadataBody = api.metadataFor("theme.json")
	api.payloadBody = `{"ok":true}`

	source, err := adapter.NewGitHubConfigSource(config.Adapter{APIAddress: api.URL}, logger.Nop())
	require.NoError(t, err)
	f := NewConfigFetcher(source, logger.Nop())

	const workers = 8
	var wg sync.WaitGroup
	results := make([][]byte, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.DownloadConfig(context.Background(), testRepo, testPath)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.JSONEq(t, `{"ok":true}`, string(r))
	}
	assert.EqualValues(t, workers, api.payloadCalls.Load())
}
