// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for POST /registrar.
// Required fields are checked by the usecase so the client gets the storefront message.
type RegisterReq struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"contrasena"`
	Phone    string `json:"telefono"`
}

// LoginReq represents the request body for POST /login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"contrasena"`
}

// UpdateProfileReq represents the request body for PUT /actualizar-perfil.
type UpdateProfileReq struct {
	UserID  uint   `json:"id_usuario"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
}

// SessionUser is the profile the client keeps as its session.
// Address and Phone are empty strings when unset.
type SessionUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	ProfilePic string `json:"profilePic"`
}

// LoginRes represents the response body of a successful login.
type LoginRes struct {
	Message string      `json:"mensaje"`
	User    SessionUser `json:"usuario"`
}

// PhotoRes represents the response body of a successful photo upload.
type PhotoRes struct {
	Message string `json:"mensaje"`
	URL     string `json:"nuevaFotoUrl"`
}
