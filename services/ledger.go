package services

import (
	"context"

	"financas-api/models"
	"financas-api/stores"
	"financas-api/utils"
)

// CategoriaRef is what gets denormalized onto a transaction. The zero value
// is the "no category" sentinel: empty id, empty name.
type CategoriaRef struct {
	ID   string
	Nome string
}

// LedgerService mediates every interaction between categorias and the two
// transaction collections: it resolves category references on transaction
// writes, blocks deletes of referenced categorias, and cascades renames into
// the denormalized categoria_nome copies. Cross-collection consistency
// relies on each individual store write; there is no surrounding transaction,
// so a failed cascade leaves the writes that already happened in place.
type LedgerService struct {
	categorias stores.CategoriaStore
	receitas   stores.TransacaoStore
	despesas   stores.TransacaoStore
}

func NewLedgerService(categorias stores.CategoriaStore, receitas, despesas stores.TransacaoStore) *LedgerService {
	return &LedgerService{categorias: categorias, receitas: receitas, despesas: despesas}
}

// ResolveCategoria validates a transaction's category reference. An empty
// categoriaID is legal and resolves to the empty sentinel.
func (s *LedgerService) ResolveCategoria(ctx context.Context, usuarioID, categoriaID string) (CategoriaRef, error) {
	if categoriaID == "" {
		return CategoriaRef{}, nil
	}

	categoria, err := s.categorias.FindByID(ctx, usuarioID, categoriaID)
	if err != nil {
		return CategoriaRef{}, err
	}
	if categoria == nil {
		return CategoriaRef{}, &NotFoundError{"Categoria não encontrada."}
	}

	return CategoriaRef{ID: categoria.ID, Nome: categoria.Nome}, nil
}

func (s *LedgerService) CreateCategoria(ctx context.Context, usuarioID string, req models.CategoriaRequest) (*models.Categoria, error) {
	if req.Nome == "" {
		return nil, &ValidationError{"Nome é obrigatório!"}
	}

	categoria := &models.Categoria{
		ID:        utils.NewObjectID(),
		Nome:      req.Nome,
		Descricao: req.Descricao,
		UsuarioID: usuarioID,
	}
	if err := s.categorias.Insert(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *LedgerService) ListCategorias(ctx context.Context, usuarioID string) ([]models.Categoria, error) {
	return s.categorias.FindByUsuario(ctx, usuarioID)
}

func (s *LedgerService) GetCategoria(ctx context.Context, usuarioID, id string) (*models.Categoria, error) {
	categoria, err := s.categorias.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, &NotFoundError{"Categoria não encontrada."}
	}
	return categoria, nil
}

// UpdateCategoria replaces nome and descricao, then synchronously rewrites
// the denormalized name on every referencing receita and despesa of the same
// usuario. Both kinds must be covered before the rename counts as done.
func (s *LedgerService) UpdateCategoria(ctx context.Context, usuarioID, id string, req models.CategoriaRequest) (*models.Categoria, error) {
	categoria, err := s.GetCategoria(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if req.Nome == "" {
		return nil, &ValidationError{"Nome é obrigatório!"}
	}

	categoria.Nome = req.Nome
	categoria.Descricao = req.Descricao
	if err := s.categorias.Update(ctx, categoria); err != nil {
		return nil, err
	}

	if err := s.receitas.UpdateCategoriaNome(ctx, usuarioID, id, categoria.Nome); err != nil {
		return nil, err
	}
	if err := s.despesas.UpdateCategoriaNome(ctx, usuarioID, id, categoria.Nome); err != nil {
		return nil, err
	}

	return categoria, nil
}

// DeleteCategoria removes a categoria only when nothing references it.
// Receitas are checked before despesas; the first hit decides the message.
func (s *LedgerService) DeleteCategoria(ctx context.Context, usuarioID, id string) (*models.Categoria, error) {
	categoria, err := s.GetCategoria(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}

	temReceita, err := s.receitas.ExistsByCategoria(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if temReceita {
		return nil, &InUseError{"Categoria possui receitas relacionadas."}
	}

	temDespesa, err := s.despesas.ExistsByCategoria(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if temDespesa {
		return nil, &InUseError{"Categoria possui despesas relacionadas."}
	}

	if err := s.categorias.Delete(ctx, usuarioID, id); err != nil {
		return nil, err
	}
	return categoria, nil
}
