package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/rmccall/shelftrack-golang/internal/models"
)

// UserStore persists credentials. It stores bcrypt hashes only; the
// plaintext password and the stored hash are never logged or returned.
type UserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{DB: db}
}

// Register creates a user with a hashed password. It returns false when
// the username is already taken. The pre-insert existence check is only
// a fast path: the UNIQUE constraint on username is the authoritative
// guard, so a racing duplicate insert still comes back false rather
// than producing two rows.
func (s *UserStore) Register(username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, ErrInvalidArgument
	}

	if s.UsernameExists(username) {
		return false, nil
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		logrus.WithError(err).Error("Failed to hash password during registration")
		return false, err
	}

	_, err := s.DB.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, pw.Hash,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			logrus.WithField("username", username).Warn("Registration lost race to duplicate username")
			return false, nil
		}
		logrus.WithError(err).Error("Error adding user")
		return false, err
	}

	return true, nil
}

// Authenticate verifies a password against the stored hash. Unknown
// usernames and wrong passwords both yield (false, nil) so the two
// cases are indistinguishable to the caller; only a store failure
// produces an error.
func (s *UserStore) Authenticate(username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	var hash string
	err := s.DB.QueryRow(
		"SELECT password_hash FROM users WHERE username = ?",
		username,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		logrus.WithError(err).Error("Error checking user credentials")
		return false, err
	}

	pw := models.Password{Hash: hash}
	ok, err := pw.Matches(password)
	if err != nil {
		logrus.WithError(err).Error("Error verifying password hash")
		return false, err
	}
	return ok, nil
}

// UsernameExists reports whether a user row exists for the trimmed
// username. Lookup failures read as "does not exist"; Register still
// hits the UNIQUE constraint if this is wrong.
func (s *UserStore) UsernameExists(username string) bool {
	username = strings.TrimSpace(username)
	if username == "" {
		return false
	}

	var one int
	err := s.DB.QueryRow("SELECT 1 FROM users WHERE username = ?", username).Scan(&one)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logrus.WithError(err).Error("Error checking username")
		}
		return false
	}
	return true
}
