package stores

import (
	"context"
	"database/sql"
	"fmt"

	"financas-api/models"
)

type PostgresUsuarioStore struct {
	db *sql.DB
}

func NewPostgresUsuarioStore(db *sql.DB) *PostgresUsuarioStore {
	return &PostgresUsuarioStore{db: db}
}

func (s *PostgresUsuarioStore) Insert(ctx context.Context, u *models.Usuario) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO usuarios (id, email, nome, sobrenome, senha_hash, totp_secret, totp_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Email, u.Nome, u.Sobrenome, u.SenhaHash, u.TOTPSecret, u.TOTPEnabled)
	return err
}

func (s *PostgresUsuarioStore) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return s.findOne(ctx, `WHERE email = $1`, email)
}

func (s *PostgresUsuarioStore) FindByID(ctx context.Context, id string) (*models.Usuario, error) {
	return s.findOne(ctx, `WHERE id = $1`, id)
}

func (s *PostgresUsuarioStore) findOne(ctx context.Context, where string, arg interface{}) (*models.Usuario, error) {
	var u models.Usuario
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, nome, sobrenome, senha_hash, totp_secret, totp_enabled
		FROM usuarios `+where, arg).
		Scan(&u.ID, &u.Email, &u.Nome, &u.Sobrenome, &u.SenhaHash, &u.TOTPSecret, &u.TOTPEnabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresUsuarioStore) UpdateTOTP(ctx context.Context, id, secret string, enabled bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE usuarios SET totp_secret = $1, totp_enabled = $2 WHERE id = $3
	`, secret, enabled, id)
	return err
}

type PostgresCategoriaStore struct {
	db *sql.DB
}

func NewPostgresCategoriaStore(db *sql.DB) *PostgresCategoriaStore {
	return &PostgresCategoriaStore{db: db}
}

func (s *PostgresCategoriaStore) Insert(ctx context.Context, c *models.Categoria) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categorias (id, nome, descricao, usuario_id)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.Nome, c.Descricao, c.UsuarioID)
	return err
}

func (s *PostgresCategoriaStore) FindByID(ctx context.Context, usuarioID, id string) (*models.Categoria, error) {
	var c models.Categoria
	err := s.db.QueryRowContext(ctx, `
		SELECT id, nome, descricao, usuario_id
		FROM categorias
		WHERE usuario_id = $1 AND id = $2
	`, usuarioID, id).Scan(&c.ID, &c.Nome, &c.Descricao, &c.UsuarioID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresCategoriaStore) FindByUsuario(ctx context.Context, usuarioID string) ([]models.Categoria, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nome, descricao, usuario_id
		FROM categorias
		WHERE usuario_id = $1
		ORDER BY nome
	`, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categorias := []models.Categoria{}
	for rows.Next() {
		var c models.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.UsuarioID); err != nil {
			return nil, err
		}
		categorias = append(categorias, c)
	}
	return categorias, rows.Err()
}

func (s *PostgresCategoriaStore) Update(ctx context.Context, c *models.Categoria) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE categorias SET nome = $1, descricao = $2
		WHERE usuario_id = $3 AND id = $4
	`, c.Nome, c.Descricao, c.UsuarioID, c.ID)
	return err
}

func (s *PostgresCategoriaStore) Delete(ctx context.Context, usuarioID, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM categorias WHERE usuario_id = $1 AND id = $2
	`, usuarioID, id)
	return err
}

// PostgresTransacaoStore serves both transaction kinds; table is "receitas"
// or "despesas" and is never user input.
type PostgresTransacaoStore struct {
	db    *sql.DB
	table string
}

func NewPostgresTransacaoStore(db *sql.DB, table string) *PostgresTransacaoStore {
	return &PostgresTransacaoStore{db: db, table: table}
}

func (s *PostgresTransacaoStore) Insert(ctx context.Context, t *models.Transacao) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, data, valor, descricao, usuario_id, categoria_id, categoria_nome)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.table)
	_, err := s.db.ExecContext(ctx, query, t.ID, t.Data, t.Valor, t.Descricao, t.UsuarioID, t.CategoriaID, t.CategoriaNome)
	return err
}

func (s *PostgresTransacaoStore) FindByID(ctx context.Context, usuarioID, id string) (*models.Transacao, error) {
	query := fmt.Sprintf(`
		SELECT id, data, valor, descricao, usuario_id, categoria_id, categoria_nome
		FROM %s
		WHERE usuario_id = $1 AND id = $2
	`, s.table)
	var t models.Transacao
	err := s.db.QueryRowContext(ctx, query, usuarioID, id).
		Scan(&t.ID, &t.Data, &t.Valor, &t.Descricao, &t.UsuarioID, &t.CategoriaID, &t.CategoriaNome)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *PostgresTransacaoStore) FindByUsuario(ctx context.Context, usuarioID string) ([]models.Transacao, error) {
	query := fmt.Sprintf(`
		SELECT id, data, valor, descricao, usuario_id, categoria_id, categoria_nome
		FROM %s
		WHERE usuario_id = $1
		ORDER BY data
	`, s.table)
	rows, err := s.db.QueryContext(ctx, query, usuarioID)
	if err != nil {
		return nil, err
	}
	return scanTransacoes(rows)
}

func (s *PostgresTransacaoStore) FindByPeriodo(ctx context.Context, usuarioID, inicio, fim string) ([]models.Transacao, error) {
	query := fmt.Sprintf(`
		SELECT id, data, valor, descricao, usuario_id, categoria_id, categoria_nome
		FROM %s
		WHERE usuario_id = $1 AND data >= $2 AND data <= $3
		ORDER BY data
	`, s.table)
	rows, err := s.db.QueryContext(ctx, query, usuarioID, inicio, fim)
	if err != nil {
		return nil, err
	}
	return scanTransacoes(rows)
}

func (s *PostgresTransacaoStore) ExistsByCategoria(ctx context.Context, usuarioID, categoriaID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS(SELECT 1 FROM %s WHERE usuario_id = $1 AND categoria_id = $2)
	`, s.table)
	var exists bool
	err := s.db.QueryRowContext(ctx, query, usuarioID, categoriaID).Scan(&exists)
	return exists, err
}

func (s *PostgresTransacaoStore) UpdateCategoriaNome(ctx context.Context, usuarioID, categoriaID, nome string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET categoria_nome = $1
		WHERE usuario_id = $2 AND categoria_id = $3
	`, s.table)
	_, err := s.db.ExecContext(ctx, query, nome, usuarioID, categoriaID)
	return err
}

func (s *PostgresTransacaoStore) Update(ctx context.Context, t *models.Transacao) error {
	query := fmt.Sprintf(`
		UPDATE %s SET data = $1, valor = $2, descricao = $3, categoria_id = $4, categoria_nome = $5
		WHERE usuario_id = $6 AND id = $7
	`, s.table)
	_, err := s.db.ExecContext(ctx, query, t.Data, t.Valor, t.Descricao, t.CategoriaID, t.CategoriaNome, t.UsuarioID, t.ID)
	return err
}

func (s *PostgresTransacaoStore) Delete(ctx context.Context, usuarioID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE usuario_id = $1 AND id = $2`, s.table)
	_, err := s.db.ExecContext(ctx, query, usuarioID, id)
	return err
}

func scanTransacoes(rows *sql.Rows) ([]models.Transacao, error) {
	defer rows.Close()

	transacoes := []models.Transacao{}
	for rows.Next() {
		var t models.Transacao
		if err := rows.Scan(&t.ID, &t.Data, &t.Valor, &t.Descricao, &t.UsuarioID, &t.CategoriaID, &t.CategoriaNome); err != nil {
			return nil, err
		}
		transacoes = append(transacoes, t)
	}
	return transacoes, rows.Err()
}
