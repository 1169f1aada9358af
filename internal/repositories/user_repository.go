package repositories

import (
	"database/sql"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByUsername returns the user and its password hash for login checks.
func (r UserRepository) GetByUsername(username string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, password_hash
		FROM users
		WHERE username = ? OR email = ?
		LIMIT 1
	`, username, username).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash)
	if err != nil {
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM users
		WHERE username = ? OR email = ?
	`, username, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, u.Name, u.Username, u.Email, u.Phone, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
