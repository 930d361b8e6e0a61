package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// SignIn mimics the storefront sign-in flow: shape validation, a
// processing delay, then a throwaway session.
func (api *APIHandler) SignIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req AuthRequest
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeRequestBody(r, &req)
	if err != nil {
		api.logger.Error("failed to sign in", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to sign in", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	err = ValidateSignInRequestBody(&req)
	if err != nil {
		api.logger.Error("failed to sign in", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to sign in", err.Error())
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	session, err := api.authService.SignIn(r.Context(), req)
	if err != nil {
		api.logger.Error("failed to sign in", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to sign in", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	resp := GenericResponse(requestID, http.StatusOK, "Signed in successfully.", nil, session)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// SignUp mimics the storefront registration flow.
func (api *APIHandler) SignUp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req AuthRequest
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeRequestBody(r, &req)
	if err != nil {
		api.logger.Error("failed to sign up", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to sign up", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	err = ValidateSignUpRequestBody(&req)
	if err != nil {
		api.logger.Error("failed to sign up", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to sign up", err.Error())
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	session, err := api.authService.SignUp(r.Context(), req)
	if err != nil {
		api.logger.Error("failed to sign up", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to sign up", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	resp := GenericResponse(requestID, http.StatusCreated, "Account created successfully.", nil, session)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// ResetPassword mimics the forgot-password flow. It always claims
// success for any shape-valid email.
func (api *APIHandler) ResetPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req AuthRequest
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeRequestBody(r, &req)
	if err != nil {
		api.logger.Error("failed to reset password", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to reset password", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	if len(req.Email) == 0 {
		api.logger.Error("failed to reset password", zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to reset password", missingFieldError("email").Error())
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	if err = api.authService.Reset(r.Context(), req.Email); err != nil {
		api.logger.Error("failed to reset password", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to reset password", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	resp := GenericResponse(requestID, http.StatusOK, "Password reset instructions sent.", nil, EmptyData)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}
