// File: services/trip/session.go
package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reisdesk/config"
	"reisdesk/models"
	"reisdesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// BeginEdit loads the persisted set for itemID, reconstructs a selection
// from it (best effort, see restore.go) and caches the resulting edit
// session in Redis. The caller owns the selection from here; committing it
// goes through UpdateItem.
func (s *DefaultTripService) BeginEdit(ctx context.Context, uid, itemID string) (*EditSession, error) {
	if !IsMainID(itemID) {
		return nil, ErrNotMainItem
	}

	items, err := s.Store.ListByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip items: %w", err)
	}

	var main *models.LineItem
	var extras []models.LineItem
	for i, item := range items {
		switch {
		case item.ID == itemID:
			main = &items[i]
		case isExtraOf(item.ID, itemID):
			extras = append(extras, item)
		}
	}
	if main == nil {
		return nil, ErrItemNotFound
	}

	selection, warnings := s.restoreSelection(ctx, *main, extras)
	session := &EditSession{
		SessionID: uuid.New().String(),
		UID:       uid,
		ItemID:    itemID,
		Selection: selection,
		Warnings:  warnings,
	}

	sessionData, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal edit session: %w", err)
	}
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, sessionKey(session.SessionID), sessionData, sessionTTL()).Err(); err != nil {
		return nil, fmt.Errorf("failed to store edit session: %w", err)
	}
	return session, nil
}

// GetEditSession retrieves a cached edit session.
func (s *DefaultTripService) GetEditSession(ctx context.Context, sessionID string) (*EditSession, error) {
	cacheClient := utils.GetSessionCacheClient()
	sessionData, err := cacheClient.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load edit session: %w", err)
	}
	var session EditSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse edit session: %w", err)
	}
	return &session, nil
}

// CancelEdit discards the cached session without any persistence calls.
func (s *DefaultTripService) CancelEdit(ctx context.Context, sessionID string) error {
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel edit session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

func sessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}
