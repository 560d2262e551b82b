package models

// Transacao is the shape shared by receitas and despesas. The two kinds live
// in separate collections and never mix; CategoriaNome is a denormalized copy
// of the referenced category's name, kept in sync by the rename cascade.
type Transacao struct {
	ID            string  `json:"id"`
	Data          string  `json:"data"`
	Valor         float64 `json:"valor"`
	Descricao     string  `json:"descricao"`
	UsuarioID     string  `json:"usuarioId"`
	CategoriaID   string  `json:"categoriaId"`
	CategoriaNome string  `json:"categoriaNome"`
}

type TransacaoRequest struct {
	Data        string  `json:"data"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
	CategoriaID string  `json:"categoriaId"`
}
