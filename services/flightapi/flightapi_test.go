package flightapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDocumentReturnsBodyUndecoded(t *testing.T) {
	body := `{"data":{"arrivals":[{"flight_number":"MH1432"}]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	doc, err := client.FetchDocument()
	require.NoError(t, err)
	assert.Equal(t, body, string(doc))
}

func TestFetchDocumentNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.FetchDocument()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchDocumentTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 20*time.Millisecond)
	_, err := client.FetchDocument()
	assert.Error(t, err)
}
