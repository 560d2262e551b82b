package services

import (
	"context"

	"github.com/badoux/checkmail"

	"financas-api/models"
	"financas-api/stores"
	"financas-api/utils"
)

type UsuarioService struct {
	usuarios stores.UsuarioStore
}

func NewUsuarioService(usuarios stores.UsuarioStore) *UsuarioService {
	return &UsuarioService{usuarios: usuarios}
}

func validarCredenciais(email, senha string) error {
	if email == "" {
		return &ValidationError{"E-mail é obrigatório!"}
	}
	if checkmail.ValidateFormat(email) != nil {
		return &ValidationError{"E-mail inválido!"}
	}
	if senha == "" {
		return &ValidationError{"Senha é obrigatória!"}
	}
	return nil
}

func (s *UsuarioService) Registrar(ctx context.Context, req models.RegistroRequest) (*models.LoginResponse, error) {
	existente, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, &ValidationError{"E-mail já cadastrado."}
	}

	if req.Email == "" {
		return nil, &ValidationError{"E-mail é obrigatório!"}
	}
	if checkmail.ValidateFormat(req.Email) != nil {
		return nil, &ValidationError{"E-mail inválido!"}
	}
	if req.Nome == "" {
		return nil, &ValidationError{"Nome é obrigatório!"}
	}
	if req.Senha == "" {
		return nil, &ValidationError{"Senha é obrigatória!"}
	}

	hash, err := utils.HashPassword(req.Senha)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		ID:        utils.NewObjectID(),
		Email:     req.Email,
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		SenhaHash: hash,
	}
	if err := s.usuarios.Insert(ctx, usuario); err != nil {
		return nil, err
	}

	return loginResponse(usuario)
}

func (s *UsuarioService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := validarCredenciais(req.Email, req.Senha); err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, &ValidationError{"E-mail não cadastrado!"}
	}

	if !utils.CheckPassword(req.Senha, usuario.SenhaHash) {
		return nil, &ValidationError{"Senha inválida!"}
	}

	if usuario.TOTPEnabled {
		if req.Codigo == "" {
			return nil, &ValidationError{"Código 2FA obrigatório!"}
		}
		if !utils.VerifyTOTP(usuario.TOTPSecret, req.Codigo) {
			return nil, &ValidationError{"Código 2FA inválido!"}
		}
	}

	return loginResponse(usuario)
}

// Setup2FA stores a fresh secret without enabling it; the caller must
// confirm with a valid code before logins start demanding one.
func (s *UsuarioService) Setup2FA(ctx context.Context, usuarioID, email string) (*models.TOTPSetupResponse, error) {
	secret, url, err := utils.GenerateTOTPSecret(email)
	if err != nil {
		return nil, err
	}
	if err := s.usuarios.UpdateTOTP(ctx, usuarioID, secret, false); err != nil {
		return nil, err
	}
	return &models.TOTPSetupResponse{Secret: secret, URL: url}, nil
}

func (s *UsuarioService) Confirmar2FA(ctx context.Context, usuarioID, codigo string) error {
	usuario, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil || usuario.TOTPSecret == "" {
		return &ValidationError{"2FA não configurado."}
	}
	if !utils.VerifyTOTP(usuario.TOTPSecret, codigo) {
		return &ValidationError{"Código 2FA inválido!"}
	}
	return s.usuarios.UpdateTOTP(ctx, usuarioID, usuario.TOTPSecret, true)
}

func (s *UsuarioService) Desativar2FA(ctx context.Context, usuarioID, senha string) error {
	usuario, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil || !utils.CheckPassword(senha, usuario.SenhaHash) {
		return &ValidationError{"Senha inválida!"}
	}
	return s.usuarios.UpdateTOTP(ctx, usuarioID, "", false)
}

func loginResponse(usuario *models.Usuario) (*models.LoginResponse, error) {
	token, err := utils.GenerateToken(usuario)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{
		ID:        usuario.ID,
		Email:     usuario.Email,
		Nome:      usuario.Nome,
		Sobrenome: usuario.Sobrenome,
		Token:     token,
	}, nil
}
