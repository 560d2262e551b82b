package stores

import (
	"context"
	"sync"

	"financas-api/models"
)

// In-memory implementations of the store interfaces, mutex-guarded and
// copy-out. They back the test suite and local development without Postgres.

type MemoryUsuarioStore struct {
	mu       sync.Mutex
	usuarios []models.Usuario
}

func NewMemoryUsuarioStore() *MemoryUsuarioStore {
	return &MemoryUsuarioStore{}
}

func (s *MemoryUsuarioStore) Insert(_ context.Context, u *models.Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuarios = append(s.usuarios, *u)
	return nil
}

func (s *MemoryUsuarioStore) FindByEmail(_ context.Context, email string) (*models.Usuario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.usuarios {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryUsuarioStore) FindByID(_ context.Context, id string) (*models.Usuario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.usuarios {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryUsuarioStore) UpdateTOTP(_ context.Context, id, secret string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.usuarios {
		if s.usuarios[i].ID == id {
			s.usuarios[i].TOTPSecret = secret
			s.usuarios[i].TOTPEnabled = enabled
			return nil
		}
	}
	return nil
}

type MemoryCategoriaStore struct {
	mu         sync.Mutex
	categorias []models.Categoria
}

func NewMemoryCategoriaStore() *MemoryCategoriaStore {
	return &MemoryCategoriaStore{}
}

func (s *MemoryCategoriaStore) Insert(_ context.Context, c *models.Categoria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categorias = append(s.categorias, *c)
	return nil
}

func (s *MemoryCategoriaStore) FindByID(_ context.Context, usuarioID, id string) (*models.Categoria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categorias {
		if c.UsuarioID == usuarioID && c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *MemoryCategoriaStore) FindByUsuario(_ context.Context, usuarioID string) ([]models.Categoria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Categoria{}
	for _, c := range s.categorias {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryCategoriaStore) Update(_ context.Context, c *models.Categoria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categorias {
		if s.categorias[i].UsuarioID == c.UsuarioID && s.categorias[i].ID == c.ID {
			s.categorias[i] = *c
			return nil
		}
	}
	return nil
}

func (s *MemoryCategoriaStore) Delete(_ context.Context, usuarioID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categorias {
		if s.categorias[i].UsuarioID == usuarioID && s.categorias[i].ID == id {
			s.categorias = append(s.categorias[:i], s.categorias[i+1:]...)
			return nil
		}
	}
	return nil
}

type MemoryTransacaoStore struct {
	mu         sync.Mutex
	transacoes []models.Transacao
}

func NewMemoryTransacaoStore() *MemoryTransacaoStore {
	return &MemoryTransacaoStore{}
}

func (s *MemoryTransacaoStore) Insert(_ context.Context, t *models.Transacao) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transacoes = append(s.transacoes, *t)
	return nil
}

func (s *MemoryTransacaoStore) FindByID(_ context.Context, usuarioID, id string) (*models.Transacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transacoes {
		if t.UsuarioID == usuarioID && t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (s *MemoryTransacaoStore) FindByUsuario(_ context.Context, usuarioID string) ([]models.Transacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Transacao{}
	for _, t := range s.transacoes {
		if t.UsuarioID == usuarioID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryTransacaoStore) FindByPeriodo(_ context.Context, usuarioID, inicio, fim string) ([]models.Transacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Transacao{}
	for _, t := range s.transacoes {
		if t.UsuarioID == usuarioID && t.Data >= inicio && t.Data <= fim {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryTransacaoStore) ExistsByCategoria(_ context.Context, usuarioID, categoriaID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transacoes {
		if t.UsuarioID == usuarioID && t.CategoriaID == categoriaID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryTransacaoStore) UpdateCategoriaNome(_ context.Context, usuarioID, categoriaID, nome string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transacoes {
		if s.transacoes[i].UsuarioID == usuarioID && s.transacoes[i].CategoriaID == categoriaID {
			s.transacoes[i].CategoriaNome = nome
		}
	}
	return nil
}

func (s *MemoryTransacaoStore) Update(_ context.Context, t *models.Transacao) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transacoes {
		if s.transacoes[i].UsuarioID == t.UsuarioID && s.transacoes[i].ID == t.ID {
			s.transacoes[i] = *t
			return nil
		}
	}
	return nil
}

func (s *MemoryTransacaoStore) Delete(_ context.Context, usuarioID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transacoes {
		if s.transacoes[i].UsuarioID == usuarioID && s.transacoes[i].ID == id {
			s.transacoes = append(s.transacoes[:i], s.transacoes[i+1:]...)
			return nil
		}
	}
	return nil
}
