// Package handler provides the HTTP handlers of the account feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/account/domain/entity"
	"storefront_backend/internal/feature/account/transport/http/dto"
	"storefront_backend/internal/feature/account/usecase"
	"storefront_backend/internal/shared/apperr"
	"storefront_backend/internal/shared/publicurl"
)

// Messages shown to the storefront user.
const (
	msgIncomplete     = "Datos incompletos."
	msgEmailTaken     = "Correo ya registrado."
	msgServerError    = "Error del servidor."
	msgUserNotFound   = "Usuario no encontrado."
	msgWrongPassword  = "Contraseña incorrecta."
	msgThrottled      = "Demasiados intentos. Intenta más tarde."
	msgRegistered     = "Registrado"
	msgLoginOK        = "Login OK"
	msgProfileUpdated = "Perfil actualizado"
	msgUpdateFailed   = "Error al actualizar."
	msgNoFile         = "No hay archivo."
	msgPhotoUploaded  = "Foto subida"
	msgPhotoFailed    = "Error al guardar foto."
)

// photoField is the multipart field carrying the profile photo.
const photoField = "fotoPerfil"

// AccountUsecase defines the account operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AccountUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	Login(ctx context.Context, email, password string) (*entity.User, error)
	UpdateProfile(ctx context.Context, in usecase.ProfileUpdate) error
	UploadPhoto(ctx context.Context, in usecase.PhotoUpload) (string, error)
}

// AccountHandler handles registration, login and profile requests.
type AccountHandler struct {
	account AccountUsecase
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(account AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

// Register handles POST /registrar.
// - missing fields: 400
// - duplicate email: 400 with a distinct message
// - success: 201
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgIncomplete})
		return
	}

	err := h.account.Register(c.Request.Context(), usecase.RegisterInput{
		FullName: req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		status := apperr.HTTPStatus(err)
		msg := msgServerError
		switch {
		case errors.Is(err, apperr.ErrConflict):
			msg = msgEmailTaken
		case errors.Is(err, apperr.ErrValidation):
			msg = msgIncomplete
		}
		if status == http.StatusInternalServerError {
			slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		} else {
			slog.Warn("register rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		}
		c.JSON(status, api.MessageResponse{Message: msg})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: msgRegistered})
}

// Login handles POST /login.
// No token is issued: the returned profile is the client's session.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgIncomplete})
		return
	}

	user, err := h.account.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, apperr.ErrValidation):
			msg = msgIncomplete
		case errors.Is(err, apperr.ErrNotFound):
			msg = msgUserNotFound
		case errors.Is(err, apperr.ErrUnauthorized):
			msg = msgWrongPassword
		case errors.Is(err, apperr.ErrTooManyAttempts):
			msg = msgThrottled
		default:
			slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgServerError})
			return
		}
		slog.Warn("login rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(apperr.HTTPStatus(err), api.MessageResponse{Message: msg})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Message: msgLoginOK,
		User:    sessionUser(user, publicurl.FromRequest(c.Request)),
	})
}

// UpdateProfile handles PUT /actualizar-perfil.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update profile bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgIncomplete})
		return
	}

	err := h.account.UpdateProfile(c.Request.Context(), usecase.ProfileUpdate{
		UserID:   req.UserID,
		FullName: req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgIncomplete})
			return
		}
		slog.Error("update profile failed", "error", err, "user_id", req.UserID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgUpdateFailed})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: msgProfileUpdated})
}

// UploadPhoto handles POST /subir-foto (multipart: fotoPerfil, id_usuario).
func (h *AccountHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile(photoField)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgNoFile})
		return
	}
	userID, err := strconv.ParseUint(c.PostForm("id_usuario"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgIncomplete})
		return
	}

	f, err := fh.Open()
	if err != nil {
		slog.Error("open uploaded photo failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgPhotoFailed})
		return
	}
	defer f.Close()

	stored, err := h.account.UploadPhoto(c.Request.Context(), usecase.PhotoUpload{
		UserID:   uint(userID),
		Filename: fh.Filename,
		Content:  f,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: msgUserNotFound})
		case errors.Is(err, apperr.ErrValidation):
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgIncomplete})
		default:
			slog.Error("upload photo failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgPhotoFailed})
		}
		return
	}

	slog.Info("profile photo updated", "user_id", userID, "path", stored, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.PhotoRes{
		Message: msgPhotoUploaded,
		URL:     publicurl.Resolve(publicurl.FromRequest(c.Request), stored),
	})
}

// sessionUser maps a user to the profile returned at login.
func sessionUser(u *entity.User, base string) dto.SessionUser {
	return dto.SessionUser{
		ID:         u.ID,
		Name:       u.FullName,
		Email:      u.Email,
		Address:    deref(u.Address),
		Phone:      deref(u.Phone),
		ProfilePic: publicurl.ResolvePhoto(base, u.PhotoPath),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
