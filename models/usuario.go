package models

import "time"

type Usuario struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Nome        string    `json:"nome"`
	Sobrenome   string    `json:"sobrenome"`
	SenhaHash   string    `json:"-"`
	TOTPSecret  string    `json:"-"`
	TOTPEnabled bool      `json:"totpEnabled"`
	CreatedAt   time.Time `json:"-"`
}

type RegistroRequest struct {
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Senha     string `json:"senha"`
}

type LoginRequest struct {
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Codigo string `json:"codigo,omitempty"`
}

// LoginResponse is returned by both register and login.
type LoginResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Token     string `json:"token"`
}

type TOTPSetupResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

type TOTPVerifyRequest struct {
	Codigo string `json:"codigo"`
}

type TOTPDisableRequest struct {
	Senha string `json:"senha"`
}
