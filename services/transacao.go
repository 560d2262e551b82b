package services

import (
	"context"

	"financas-api/models"
	"financas-api/stores"
	"financas-api/utils"
)

// TransacaoService implements the shared contract of receitas and despesas.
// Two instances run side by side, each bound to its own collection; kind is
// the singular label used in not-found messages ("Receita" or "Despesa").
type TransacaoService struct {
	store  stores.TransacaoStore
	ledger *LedgerService
	kind   string
}

func NewTransacaoService(store stores.TransacaoStore, ledger *LedgerService, kind string) *TransacaoService {
	return &TransacaoService{store: store, ledger: ledger, kind: kind}
}

func (s *TransacaoService) notFound() error {
	return &NotFoundError{s.kind + " não encontrada."}
}

func validateTransacao(req models.TransacaoRequest) error {
	if req.Data == "" {
		return &ValidationError{"Data é obrigatória!"}
	}
	// A zero valor is indistinguishable from an absent one; both are
	// rejected. Callers that truly mean zero are out of luck.
	if req.Valor == 0 {
		return &ValidationError{"Valor é obrigatório!"}
	}
	return nil
}

// Create stamps the owner from the authenticated caller, never from the
// request body.
func (s *TransacaoService) Create(ctx context.Context, usuarioID string, req models.TransacaoRequest) (*models.Transacao, error) {
	if err := validateTransacao(req); err != nil {
		return nil, err
	}

	ref, err := s.ledger.ResolveCategoria(ctx, usuarioID, req.CategoriaID)
	if err != nil {
		return nil, err
	}

	transacao := &models.Transacao{
		ID:            utils.NewObjectID(),
		Data:          req.Data,
		Valor:         req.Valor,
		Descricao:     req.Descricao,
		UsuarioID:     usuarioID,
		CategoriaID:   ref.ID,
		CategoriaNome: ref.Nome,
	}
	if err := s.store.Insert(ctx, transacao); err != nil {
		return nil, err
	}
	return transacao, nil
}

// Update is a full-field replace: every mutable field comes from the request,
// and the category reference is re-resolved even when unchanged.
func (s *TransacaoService) Update(ctx context.Context, usuarioID, id string, req models.TransacaoRequest) (*models.Transacao, error) {
	transacao, err := s.store.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if transacao == nil {
		return nil, s.notFound()
	}

	if err := validateTransacao(req); err != nil {
		return nil, err
	}

	ref, err := s.ledger.ResolveCategoria(ctx, usuarioID, req.CategoriaID)
	if err != nil {
		return nil, err
	}

	transacao.Data = req.Data
	transacao.Valor = req.Valor
	transacao.Descricao = req.Descricao
	transacao.CategoriaID = ref.ID
	transacao.CategoriaNome = ref.Nome
	if err := s.store.Update(ctx, transacao); err != nil {
		return nil, err
	}
	return transacao, nil
}

// Delete removes the record and returns its prior state.
func (s *TransacaoService) Delete(ctx context.Context, usuarioID, id string) (*models.Transacao, error) {
	transacao, err := s.store.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if transacao == nil {
		return nil, s.notFound()
	}

	if err := s.store.Delete(ctx, usuarioID, id); err != nil {
		return nil, err
	}
	return transacao, nil
}

func (s *TransacaoService) Get(ctx context.Context, usuarioID, id string) (*models.Transacao, error) {
	transacao, err := s.store.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if transacao == nil {
		return nil, s.notFound()
	}
	return transacao, nil
}

func (s *TransacaoService) List(ctx context.Context, usuarioID string) ([]models.Transacao, error) {
	return s.store.FindByUsuario(ctx, usuarioID)
}
