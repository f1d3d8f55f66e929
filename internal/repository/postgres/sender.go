package postgres

import (
	"database/sql"
)

// SenderRepo implements repository.SenderRepository
type SenderRepo struct {
	db *sql.DB
}

// NewSenderRepo creates a new sender repository
func NewSenderRepo(db *sql.DB) *SenderRepo {
	return &SenderRepo{db: db}
}

// EnsureExists creates the sender record if not present
func (r *SenderRepo) EnsureExists(phone string) error {
	query := `
		INSERT INTO senders (phone)
		VALUES ($1)
		ON CONFLICT (phone) DO NOTHING
	`
	_, err := r.db.Exec(query, phone)
	return err
}

// GetLanguage returns the sender's language, or "" if never set
func (r *SenderRepo) GetLanguage(phone string) (string, error) {
	var lang sql.NullString
	query := `SELECT language FROM senders WHERE phone = $1`
	err := r.db.QueryRow(query, phone).Scan(&lang)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !lang.Valid {
		return "", nil
	}
	return lang.String, nil
}

// SetLanguage stores the sender's language preference
func (r *SenderRepo) SetLanguage(phone, lang string) error {
	query := `
		INSERT INTO senders (phone, language)
		VALUES ($1, $2)
		ON CONFLICT (phone)
		DO UPDATE SET language = EXCLUDED.language
	`
	_, err := r.db.Exec(query, phone, lang)
	return err
}
