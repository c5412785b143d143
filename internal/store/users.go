package store

import (
	"context"
	"database/sql"
	"errors"

	"sisventas/internal/models"
)

// CreateUser inserts a new account. Returns ErrEmailTaken when the email
// unique constraint rejects the insert; any other failure passes through.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO usuarios(nombre, correo, password) VALUES (?, ?, ?)",
		u.Name, u.Email, u.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	u.ID, err = res.LastInsertId()
	return err
}

// Authenticate looks up a user by exact email and password match.
// Returns (nil, nil) when no row matches.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u,
		"SELECT id, nombre, correo, password FROM usuarios WHERE correo = ? AND password = ?",
		email, password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RenameUser updates the stored display name for a user
func (s *Store) RenameUser(ctx context.Context, id int64, name string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE usuarios SET nombre = ? WHERE id = ?", name, id)
	return err
}

// CountUsersByEmail returns how many accounts exist for an email
func (s *Store) CountUsersByEmail(ctx context.Context, email string) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM usuarios WHERE correo = ?", email)
	return n, err
}
