// Package stores holds the persistence layer. Every read and write is scoped
// by the owning usuario id; nothing here ever crosses users. Find methods
// return (nil, nil) when the row does not exist so callers decide which
// not-found error fits.
package stores

import (
	"context"

	"financas-api/models"
)

type UsuarioStore interface {
	Insert(ctx context.Context, u *models.Usuario) error
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	FindByID(ctx context.Context, id string) (*models.Usuario, error)
	UpdateTOTP(ctx context.Context, id, secret string, enabled bool) error
}

type CategoriaStore interface {
	Insert(ctx context.Context, c *models.Categoria) error
	FindByID(ctx context.Context, usuarioID, id string) (*models.Categoria, error)
	FindByUsuario(ctx context.Context, usuarioID string) ([]models.Categoria, error)
	Update(ctx context.Context, c *models.Categoria) error
	Delete(ctx context.Context, usuarioID, id string) error
}

// TransacaoStore is implemented twice per deployment, once over the receitas
// collection and once over despesas. The contract is identical.
type TransacaoStore interface {
	Insert(ctx context.Context, t *models.Transacao) error
	FindByID(ctx context.Context, usuarioID, id string) (*models.Transacao, error)
	FindByUsuario(ctx context.Context, usuarioID string) ([]models.Transacao, error)
	// FindByPeriodo filters on the inclusive [inicio, fim] range. Dates are
	// ISO strings, so lexicographic comparison is chronological.
	FindByPeriodo(ctx context.Context, usuarioID, inicio, fim string) ([]models.Transacao, error)
	ExistsByCategoria(ctx context.Context, usuarioID, categoriaID string) (bool, error)
	// UpdateCategoriaNome rewrites the denormalized category name on every
	// transaction of the usuario that references categoriaID.
	UpdateCategoriaNome(ctx context.Context, usuarioID, categoriaID, nome string) error
	Update(ctx context.Context, t *models.Transacao) error
	Delete(ctx context.Context, usuarioID, id string) error
}
