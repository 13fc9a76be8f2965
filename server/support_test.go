package server

import (
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRunnable struct {
	mock.Mock
}

func (m *mockRunnable) Run(waitGroup *sync.WaitGroup) error {
	return m.Called(waitGroup).Error(0)
}

// get issues a GET and returns the status code and body
func get(t *testing.T, url string) (int, string) {
	response, err := http.Get(url)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(body)
}
