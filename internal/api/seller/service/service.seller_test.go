// Package sellersvc - Test gọi và parse API người bán bên ngoài.
package sellersvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *SellerService {
	return &SellerService{httpClient: &http.Client{Timeout: 5 * time.Second}}
}

func TestFetchRemoteSellers_ParsesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sellers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"ext-1","name":"Seller A"},{"id":2,"name":"Seller B"}]`))
	}))
	defer server.Close()

	sellers, err := testService().fetchRemoteSellers(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, "ext-1", stringField(sellers[0], "id"))
	assert.Equal(t, "2", stringField(sellers[1], "id"), "id dạng số phải được chuyển thành chuỗi")
}

func TestFetchRemoteSellers_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream down`))
	}))
	defer server.Close()

	_, err := testService().fetchRemoteSellers(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchRemoteSellers_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`không phải json`))
	}))
	defer server.Close()

	_, err := testService().fetchRemoteSellers(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestStringField(t *testing.T) {
	raw := map[string]interface{}{
		"str":  "abc",
		"num":  float64(42),
		"null": nil,
	}
	assert.Equal(t, "abc", stringField(raw, "str"))
	assert.Equal(t, "42", stringField(raw, "num"))
	assert.Equal(t, "", stringField(raw, "null"))
	assert.Equal(t, "", stringField(raw, "missing"))
}
