package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthTestAPI() *APIHandler {
	config := newTestConfig()
	return NewAPIHandler(
		zap.NewNop(),
		config,
		&Statistics{started: NewMockClocker().Now()},
		NewMockClocker(),
		NewMockUIDHandler("abc", true),
		nil,
		nil,
		NewAuthService(zap.NewNop(), config, NewMockClocker(), NewMockUIDHandler("abc", true)),
	)
}

// TestSignInHandler ensures the mock sign-in answers any shape-valid
// credentials with a throwaway session.
func TestSignInHandler(t *testing.T) {
	api := newAuthTestAPI()

	t.Run("should pass: valid payload", func(t *testing.T) {
		payload := []byte(`{"email":"maya@millfield.io","password":"secret"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.SignIn(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		resultMap := make(map[string]interface{})
		require.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, "Signed in successfully.", resultMap["message"])

		sessionMap, ok := resultMap["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "s:abc", sessionMap["token"])
		userMap, ok := sessionMap["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "maya@millfield.io", userMap["email"])
		assert.Equal(t, "maya", userMap["name"])
	})

	t.Run("should fail: missing password", func(t *testing.T) {
		payload := []byte(`{"email":"maya@millfield.io"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.SignIn(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		expected := `{"requestid":"", "status":400, "message":"failed to sign in", "data":"password is required"}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: missing email", func(t *testing.T) {
		payload := []byte(`{"password":"secret"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.SignIn(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

// TestSignUpHandler ensures registration keeps the provided name and
// enforces the password length rule.
func TestSignUpHandler(t *testing.T) {
	api := newAuthTestAPI()

	t.Run("should pass: valid payload", func(t *testing.T) {
		payload := []byte(`{"name":"Maya","email":"maya@millfield.io","password":"secret"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.SignUp(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		resultMap := make(map[string]interface{})
		require.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, "Account created successfully.", resultMap["message"])
		sessionMap, ok := resultMap["data"].(map[string]interface{})
		require.True(t, ok)
		userMap, ok := sessionMap["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Maya", userMap["name"])
	})

	t.Run("should fail: short password", func(t *testing.T) {
		payload := []byte(`{"name":"Maya","email":"maya@millfield.io","password":"abc"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.SignUp(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		expected := `{"requestid":"", "status":400, "message":"failed to sign up", "data":"password must be at least 6 characters"}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: missing name", func(t *testing.T) {
		payload := []byte(`{"email":"maya@millfield.io","password":"secret"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.SignUp(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		expected := `{"requestid":"", "status":400, "message":"failed to sign up", "data":"name is required"}`
		assert.JSONEq(t, expected, string(data))
	})
}

// TestResetPasswordHandler ensures the forgot-password flow claims
// success for any shape-valid email.
func TestResetPasswordHandler(t *testing.T) {
	api := newAuthTestAPI()

	t.Run("should pass: valid email", func(t *testing.T) {
		payload := []byte(`{"email":"maya@millfield.io"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/reset", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.ResetPassword(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		expected := `{"requestid":"", "status":200, "message":"Password reset instructions sent.", "data":{}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: missing email", func(t *testing.T) {
		payload := []byte(`{}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/reset", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.ResetPassword(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		expected := `{"requestid":"", "status":400, "message":"failed to reset password", "data":"email is required"}`
		assert.JSONEq(t, expected, string(data))
	})
}
