package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/storage"
)

var errSessionExpired = errors.New("session expired")

// SaveSession stores token -> session until session.ExpiresAt
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	if session.Token == "" {
		return fmt.Errorf("session token cannot be empty")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		key := []byte(session.Token)
		if bucket.Get(key) != nil {
			return storage.ErrTokenExists
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})
}

// GetSession retrieves a live session by token.
// Expired entries are removed on access.
func (s *Storage) GetSession(ctx context.Context, token string) (*models.Session, error) {
	var session *models.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		data := bucket.Get([]byte(token))
		if data == nil {
			return storage.ErrSessionNotFound
		}

		session = &models.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		session.Token = token

		if session.Expired(s.now()) {
			return errSessionExpired
		}

		return nil
	})

	if errors.Is(err, errSessionExpired) {
		if err := s.DeleteSession(ctx, token); err != nil {
			return nil, err
		}
		return nil, storage.ErrSessionNotFound
	}

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes the token; missing tokens are ignored
func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		if err := bucket.Delete([]byte(token)); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		return nil
	})
}

// DeleteExpiredSessions removes all expired sessions
func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int, error) {
	deleted := 0
	now := s.now()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		// Собираем ключи заранее: удалять во время ForEach нельзя
		var expired [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var session models.Session
			if err := json.Unmarshal(v, &session); err != nil {
				// Поврежденные записи тоже удаляем
				expired = append(expired, append([]byte(nil), k...))
				return nil
			}
			if session.Expired(now) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan sessions: %w", err)
		}

		for _, k := range expired {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
		}

		deleted = len(expired)
		return nil
	})

	if err != nil {
		return 0, err
	}

	return deleted, nil
}
