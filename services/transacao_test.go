package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"financas-api/models"
	"financas-api/utils"
)

type transacaoFixture struct {
	*ledgerFixture
	despesasSvc *TransacaoService
	receitasSvc *TransacaoService
}

func newTransacaoFixture() *transacaoFixture {
	f := newLedgerFixture()
	return &transacaoFixture{
		ledgerFixture: f,
		despesasSvc:   NewTransacaoService(f.despesas, f.ledger, "Despesa"),
		receitasSvc:   NewTransacaoService(f.receitas, f.ledger, "Receita"),
	}
}

func TestTransacaoCreateValidation(t *testing.T) {
	f := newTransacaoFixture()
	ctx := context.Background()

	_, err := f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{Valor: 10})
	assert.EqualError(t, err, "Data é obrigatória!")

	_, err = f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{Data: "2024-01-01"})
	assert.EqualError(t, err, "Valor é obrigatório!")

	// Zero is treated as missing, not as a legitimate amount.
	_, err = f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{Data: "2024-01-01", Valor: 0})
	assert.EqualError(t, err, "Valor é obrigatório!")
}

func TestTransacaoCreateResolvesCategoria(t *testing.T) {
	f := newTransacaoFixture()
	ctx := context.Background()
	categoria := f.addCategoria(t, "u1", "Food")

	t.Run("with categoria", func(t *testing.T) {
		despesa, err := f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{
			Data: "2024-01-01", Valor: 50, CategoriaID: categoria.ID,
		})
		assert.NoError(t, err)
		assert.Equal(t, categoria.ID, despesa.CategoriaID)
		assert.Equal(t, "Food", despesa.CategoriaNome)
		assert.Equal(t, "u1", despesa.UsuarioID)
		assert.True(t, utils.IsValidObjectID(despesa.ID))
	})

	t.Run("without categoria", func(t *testing.T) {
		despesa, err := f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{Data: "2024-01-01", Valor: 50})
		assert.NoError(t, err)
		assert.Equal(t, "", despesa.CategoriaID)
		assert.Equal(t, "", despesa.CategoriaNome)
	})

	t.Run("unknown categoria fails", func(t *testing.T) {
		_, err := f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{
			Data: "2024-01-01", Valor: 50, CategoriaID: utils.NewObjectID(),
		})
		assert.EqualError(t, err, "Categoria não encontrada.")
	})

	t.Run("another user's categoria fails", func(t *testing.T) {
		_, err := f.despesasSvc.Create(ctx, "u2", models.TransacaoRequest{
			Data: "2024-01-01", Valor: 50, CategoriaID: categoria.ID,
		})
		assert.EqualError(t, err, "Categoria não encontrada.")
	})
}

func TestTransacaoUpdateIsFullReplace(t *testing.T) {
	f := newTransacaoFixture()
	ctx := context.Background()
	categoria := f.addCategoria(t, "u1", "Food")

	despesa, err := f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{
		Data: "2024-01-01", Valor: 50, Descricao: "almoço", CategoriaID: categoria.ID,
	})
	assert.NoError(t, err)

	// Every mutable field comes from the new request; the omitted descricao
	// and categoria are replaced, not preserved.
	atualizada, err := f.despesasSvc.Update(ctx, "u1", despesa.ID, models.TransacaoRequest{
		Data: "2024-02-01", Valor: 75,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-01", atualizada.Data)
	assert.Equal(t, 75.0, atualizada.Valor)
	assert.Equal(t, "", atualizada.Descricao)
	assert.Equal(t, "", atualizada.CategoriaID)
	assert.Equal(t, "", atualizada.CategoriaNome)

	_, err = f.despesasSvc.Update(ctx, "u1", despesa.ID, models.TransacaoRequest{Valor: 1})
	assert.EqualError(t, err, "Data é obrigatória!")

	_, err = f.despesasSvc.Update(ctx, "u1", utils.NewObjectID(), models.TransacaoRequest{Data: "2024-01-01", Valor: 1})
	assert.EqualError(t, err, "Despesa não encontrada.")
}

func TestTransacaoNotFoundMessagePerKind(t *testing.T) {
	f := newTransacaoFixture()
	ctx := context.Background()
	id := utils.NewObjectID()

	_, err := f.receitasSvc.Get(ctx, "u1", id)
	assert.EqualError(t, err, "Receita não encontrada.")

	_, err = f.despesasSvc.Get(ctx, "u1", id)
	assert.EqualError(t, err, "Despesa não encontrada.")
}

func TestTransacaoDeleteReturnsPriorState(t *testing.T) {
	f := newTransacaoFixture()
	ctx := context.Background()

	receita, err := f.receitasSvc.Create(ctx, "u1", models.TransacaoRequest{Data: "2024-01-01", Valor: 10})
	assert.NoError(t, err)

	removida, err := f.receitasSvc.Delete(ctx, "u1", receita.ID)
	assert.NoError(t, err)
	assert.Equal(t, receita.ID, removida.ID)
	assert.Equal(t, 10.0, removida.Valor)

	_, err = f.receitasSvc.Delete(ctx, "u1", receita.ID)
	assert.EqualError(t, err, "Receita não encontrada.")
}

func TestTransacaoCrossUserIsolation(t *testing.T) {
	f := newTransacaoFixture()
	ctx := context.Background()

	despesa, err := f.despesasSvc.Create(ctx, "u1", models.TransacaoRequest{Data: "2024-01-01", Valor: 10})
	assert.NoError(t, err)

	_, err = f.despesasSvc.Get(ctx, "u2", despesa.ID)
	assert.EqualError(t, err, "Despesa não encontrada.")

	_, err = f.despesasSvc.Update(ctx, "u2", despesa.ID, models.TransacaoRequest{Data: "2024-01-02", Valor: 1})
	assert.EqualError(t, err, "Despesa não encontrada.")

	_, err = f.despesasSvc.Delete(ctx, "u2", despesa.ID)
	assert.EqualError(t, err, "Despesa não encontrada.")

	lista, err := f.despesasSvc.List(ctx, "u2")
	assert.NoError(t, err)
	assert.Empty(t, lista)
}
