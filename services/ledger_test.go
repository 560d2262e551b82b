package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"financas-api/models"
	"financas-api/stores"
	"financas-api/utils"
)

type ledgerFixture struct {
	categorias *stores.MemoryCategoriaStore
	receitas   *stores.MemoryTransacaoStore
	despesas   *stores.MemoryTransacaoStore
	ledger     *LedgerService
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		categorias: stores.NewMemoryCategoriaStore(),
		receitas:   stores.NewMemoryTransacaoStore(),
		despesas:   stores.NewMemoryTransacaoStore(),
	}
	f.ledger = NewLedgerService(f.categorias, f.receitas, f.despesas)
	return f
}

func (f *ledgerFixture) addCategoria(t *testing.T, usuarioID, nome string) *models.Categoria {
	t.Helper()
	categoria, err := f.ledger.CreateCategoria(context.Background(), usuarioID, models.CategoriaRequest{Nome: nome})
	assert.NoError(t, err)
	return categoria
}

func addTransacao(t *testing.T, store *stores.MemoryTransacaoStore, usuarioID string, ref CategoriaRef, data string, valor float64) *models.Transacao {
	t.Helper()
	tr := &models.Transacao{
		ID:            utils.NewObjectID(),
		Data:          data,
		Valor:         valor,
		UsuarioID:     usuarioID,
		CategoriaID:   ref.ID,
		CategoriaNome: ref.Nome,
	}
	assert.NoError(t, store.Insert(context.Background(), tr))
	return tr
}

func TestResolveCategoria(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()
	categoria := f.addCategoria(t, "u1", "Mercado")

	t.Run("empty id resolves to the sentinel", func(t *testing.T) {
		ref, err := f.ledger.ResolveCategoria(ctx, "u1", "")
		assert.NoError(t, err)
		assert.Equal(t, CategoriaRef{}, ref)
	})

	t.Run("existing categoria resolves to id and nome", func(t *testing.T) {
		ref, err := f.ledger.ResolveCategoria(ctx, "u1", categoria.ID)
		assert.NoError(t, err)
		assert.Equal(t, CategoriaRef{ID: categoria.ID, Nome: "Mercado"}, ref)
	})

	t.Run("unknown categoria fails", func(t *testing.T) {
		_, err := f.ledger.ResolveCategoria(ctx, "u1", utils.NewObjectID())
		assert.EqualError(t, err, "Categoria não encontrada.")
		assert.True(t, IsBusinessError(err))
	})

	t.Run("another user's categoria is invisible", func(t *testing.T) {
		_, err := f.ledger.ResolveCategoria(ctx, "u2", categoria.ID)
		assert.EqualError(t, err, "Categoria não encontrada.")
	})
}

func TestCreateCategoriaRequiresNome(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.ledger.CreateCategoria(context.Background(), "u1", models.CategoriaRequest{Descricao: "sem nome"})
	assert.EqualError(t, err, "Nome é obrigatório!")
}

func TestUpdateCategoriaCascadesBothKinds(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	categoria := f.addCategoria(t, "u1", "Food")
	outra := f.addCategoria(t, "u1", "Transporte")
	ref := CategoriaRef{ID: categoria.ID, Nome: categoria.Nome}

	receita := addTransacao(t, f.receitas, "u1", ref, "2024-01-01", 100)
	despesa := addTransacao(t, f.despesas, "u1", ref, "2024-01-02", 50)
	naoRelacionada := addTransacao(t, f.despesas, "u1", CategoriaRef{ID: outra.ID, Nome: outra.Nome}, "2024-01-03", 10)
	deOutroUsuario := addTransacao(t, f.despesas, "u2", ref, "2024-01-04", 20)

	atualizada, err := f.ledger.UpdateCategoria(ctx, "u1", categoria.ID, models.CategoriaRequest{Nome: "Groceries", Descricao: "d"})
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", atualizada.Nome)

	depois, _ := f.receitas.FindByID(ctx, "u1", receita.ID)
	assert.Equal(t, "Groceries", depois.CategoriaNome)

	depois, _ = f.despesas.FindByID(ctx, "u1", despesa.ID)
	assert.Equal(t, "Groceries", depois.CategoriaNome)

	depois, _ = f.despesas.FindByID(ctx, "u1", naoRelacionada.ID)
	assert.Equal(t, "Transporte", depois.CategoriaNome)

	depois, _ = f.despesas.FindByID(ctx, "u2", deOutroUsuario.ID)
	assert.Equal(t, "Food", depois.CategoriaNome)
}

func TestUpdateCategoriaValidation(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()
	categoria := f.addCategoria(t, "u1", "Food")

	_, err := f.ledger.UpdateCategoria(ctx, "u1", categoria.ID, models.CategoriaRequest{Nome: ""})
	assert.EqualError(t, err, "Nome é obrigatório!")

	_, err = f.ledger.UpdateCategoria(ctx, "u1", utils.NewObjectID(), models.CategoriaRequest{Nome: "x"})
	assert.EqualError(t, err, "Categoria não encontrada.")

	_, err = f.ledger.UpdateCategoria(ctx, "u2", categoria.ID, models.CategoriaRequest{Nome: "x"})
	assert.EqualError(t, err, "Categoria não encontrada.")
}

func TestDeleteCategoria(t *testing.T) {
	ctx := context.Background()

	t.Run("unreferenced categoria is removed and returned", func(t *testing.T) {
		f := newLedgerFixture()
		categoria := f.addCategoria(t, "u1", "Food")

		removida, err := f.ledger.DeleteCategoria(ctx, "u1", categoria.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Food", removida.Nome)

		_, err = f.ledger.GetCategoria(ctx, "u1", categoria.ID)
		assert.EqualError(t, err, "Categoria não encontrada.")
	})

	t.Run("blocked by a referencing receita", func(t *testing.T) {
		f := newLedgerFixture()
		categoria := f.addCategoria(t, "u1", "Food")
		addTransacao(t, f.receitas, "u1", CategoriaRef{ID: categoria.ID, Nome: categoria.Nome}, "2024-01-01", 1)

		_, err := f.ledger.DeleteCategoria(ctx, "u1", categoria.ID)
		assert.EqualError(t, err, "Categoria possui receitas relacionadas.")
	})

	t.Run("blocked by a referencing despesa", func(t *testing.T) {
		f := newLedgerFixture()
		categoria := f.addCategoria(t, "u1", "Food")
		addTransacao(t, f.despesas, "u1", CategoriaRef{ID: categoria.ID, Nome: categoria.Nome}, "2024-01-01", 1)

		_, err := f.ledger.DeleteCategoria(ctx, "u1", categoria.ID)
		assert.EqualError(t, err, "Categoria possui despesas relacionadas.")
	})

	t.Run("receitas win when both kinds reference", func(t *testing.T) {
		f := newLedgerFixture()
		categoria := f.addCategoria(t, "u1", "Food")
		ref := CategoriaRef{ID: categoria.ID, Nome: categoria.Nome}
		addTransacao(t, f.receitas, "u1", ref, "2024-01-01", 1)
		addTransacao(t, f.despesas, "u1", ref, "2024-01-02", 1)

		_, err := f.ledger.DeleteCategoria(ctx, "u1", categoria.ID)
		assert.EqualError(t, err, "Categoria possui receitas relacionadas.")
	})

	t.Run("another user's references do not block", func(t *testing.T) {
		f := newLedgerFixture()
		categoria := f.addCategoria(t, "u1", "Food")
		addTransacao(t, f.despesas, "u2", CategoriaRef{ID: categoria.ID, Nome: categoria.Nome}, "2024-01-01", 1)

		_, err := f.ledger.DeleteCategoria(ctx, "u1", categoria.ID)
		assert.NoError(t, err)
	})

	t.Run("another user cannot delete", func(t *testing.T) {
		f := newLedgerFixture()
		categoria := f.addCategoria(t, "u1", "Food")

		_, err := f.ledger.DeleteCategoria(ctx, "u2", categoria.ID)
		assert.EqualError(t, err, "Categoria não encontrada.")
	})
}
