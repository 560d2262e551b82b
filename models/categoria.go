package models

type Categoria struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	UsuarioID string `json:"usuarioId"`
}

type CategoriaRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}
