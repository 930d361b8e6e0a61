package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleWishlist(t *testing.T, api *APIHandler, id string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/wishlist/"+id, nil)
	w := httptest.NewRecorder()
	api.ToggleWishlist(w, req, httprouter.Params{{Key: "id", Value: id}})
	res := w.Result()
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	resultMap := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(data, &resultMap))
	resultMap["http.status"] = res.StatusCode
	return resultMap
}

// TestToggleWishlistHandler ensures toggling flips membership and the
// response message follows the new state.
func TestToggleWishlistHandler(t *testing.T) {
	api, _ := newOrderTestAPI(true)

	resultMap := toggleWishlist(t, api, "1")
	assert.Equal(t, http.StatusOK, resultMap["http.status"])
	assert.Equal(t, "Book added to the wishlist.", resultMap["message"])
	entryMap, ok := resultMap["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, entryMap["wishlisted"])

	resultMap = toggleWishlist(t, api, "1")
	assert.Equal(t, http.StatusOK, resultMap["http.status"])
	assert.Equal(t, "Book removed from the wishlist.", resultMap["message"])
	entryMap, ok = resultMap["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, entryMap["wishlisted"])
}

// TestToggleWishlistHandler_MissingBook ensures an unknown book maps to 404.
func TestToggleWishlistHandler_MissingBook(t *testing.T) {
	api, _ := newOrderTestAPI(true)
	resultMap := toggleWishlist(t, api, "99")
	assert.Equal(t, http.StatusNotFound, resultMap["http.status"])
	assert.Equal(t, "book does not exist", resultMap["message"])
}

// TestGetWishlistHandler ensures the listing keeps insertion order.
func TestGetWishlistHandler(t *testing.T) {
	api, _ := newOrderTestAPI(true)
	toggleWishlist(t, api, "4")
	toggleWishlist(t, api, "1")

	req := httptest.NewRequest(http.MethodGet, "/v1/wishlist", nil)
	w := httptest.NewRecorder()
	api.GetWishlist(w, req, httprouter.Params{})
	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	resultMap := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(data, &resultMap))
	assert.Equal(t, float64(2), resultMap["total"])

	books, ok := resultMap["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, books, 2)
	first := books[0].(map[string]interface{})
	second := books[1].(map[string]interface{})
	assert.Equal(t, "4", first["id"])
	assert.Equal(t, "1", second["id"])
}
