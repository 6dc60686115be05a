package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/abhisek/quizdeck/releases/latest", r.URL.Path)
		w.Write([]byte(`{"tag_name": "v1.2.0"}`))
	})

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "v1.1.0", result.CurrentVersion)
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.1.0"}`))
	})

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)

	assert.False(t, result.UpdateAvailable)
}

func TestCheckHandlesBareVersion(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "1.3.0"}`))
	})

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.9"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker()

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheckServerError(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.Error(t, err)
}

func TestCheckMissingTag(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.Error(t, err)
}
