package services

import (
	"context"

	"financas-api/models"
	"financas-api/stores"
)

const grupoSemCategoria = "Não informada"

// DashboardService computes read-only aggregations over an inclusive
// [startDate, endDate] range. Dates are ISO strings and compared as such.
type DashboardService struct {
	receitas stores.TransacaoStore
	despesas stores.TransacaoStore
}

func NewDashboardService(receitas, despesas stores.TransacaoStore) *DashboardService {
	return &DashboardService{receitas: receitas, despesas: despesas}
}

func validatePeriodo(req models.PeriodoRequest) error {
	if req.StartDate == "" {
		return &ValidationError{"Data de início é obrigatória."}
	}
	if req.EndDate == "" {
		return &ValidationError{"Data de fim é obrigatória."}
	}
	return nil
}

// DespesasReceitas returns the two period totals, despesas first.
func (s *DashboardService) DespesasReceitas(ctx context.Context, usuarioID string, req models.PeriodoRequest) ([]models.ChartData, error) {
	if err := validatePeriodo(req); err != nil {
		return nil, err
	}

	despesas, err := s.despesas.FindByPeriodo(ctx, usuarioID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	receitas, err := s.receitas.FindByPeriodo(ctx, usuarioID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	return []models.ChartData{
		{Group: "Despesas", Value: soma(despesas)},
		{Group: "Receitas", Value: soma(receitas)},
	}, nil
}

// Evolucao projects every matching transaction of both kinds to an
// unaggregated chart point.
func (s *DashboardService) Evolucao(ctx context.Context, usuarioID string, req models.PeriodoRequest) ([]models.SeriePonto, error) {
	if err := validatePeriodo(req); err != nil {
		return nil, err
	}

	despesas, err := s.despesas.FindByPeriodo(ctx, usuarioID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	receitas, err := s.receitas.FindByPeriodo(ctx, usuarioID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	pontos := []models.SeriePonto{}
	for _, t := range despesas {
		pontos = append(pontos, models.SeriePonto{Group: "Despesas", Date: t.Data, Value: t.Valor})
	}
	for _, t := range receitas {
		pontos = append(pontos, models.SeriePonto{Group: "Receitas", Date: t.Data, Value: t.Valor})
	}
	return pontos, nil
}

func (s *DashboardService) DespesasPorCategoria(ctx context.Context, usuarioID string, req models.PeriodoRequest) ([]models.ChartData, error) {
	return s.porCategoria(ctx, s.despesas, usuarioID, req)
}

func (s *DashboardService) ReceitasPorCategoria(ctx context.Context, usuarioID string, req models.PeriodoRequest) ([]models.ChartData, error) {
	return s.porCategoria(ctx, s.receitas, usuarioID, req)
}

func (s *DashboardService) porCategoria(ctx context.Context, store stores.TransacaoStore, usuarioID string, req models.PeriodoRequest) ([]models.ChartData, error) {
	if err := validatePeriodo(req); err != nil {
		return nil, err
	}

	transacoes, err := store.FindByPeriodo(ctx, usuarioID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	grupos := []models.ChartData{}
	if len(transacoes) == 0 {
		return grupos, nil
	}

	// Named groups in first-seen order, then the synthetic group for
	// transactions without a category. The synthetic group is present
	// whenever anything matched, even with value zero.
	indice := map[string]int{}
	semCategoria := 0.0
	for _, t := range transacoes {
		if t.CategoriaNome == "" {
			semCategoria += t.Valor
			continue
		}
		i, ok := indice[t.CategoriaNome]
		if !ok {
			i = len(grupos)
			indice[t.CategoriaNome] = i
			grupos = append(grupos, models.ChartData{Group: t.CategoriaNome})
		}
		grupos[i].Value += t.Valor
	}

	grupos = append(grupos, models.ChartData{Group: grupoSemCategoria, Value: semCategoria})
	return grupos, nil
}

func soma(transacoes []models.Transacao) float64 {
	total := 0.0
	for _, t := range transacoes {
		total += t.Valor
	}
	return total
}
