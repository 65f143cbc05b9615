package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"memoapp/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrMemoNotFound covers both a nonexistent memo id and a memo owned by
// another user, so callers cannot tell the two apart.
var ErrMemoNotFound = errors.New("memo not found")

const memoCacheTTL = 10 * time.Minute

// MemoPatch carries the optional fields of an update. A nil pointer means
// the field was not supplied and must keep its stored value.
type MemoPatch struct {
	Title   *string
	Content *string
}

type MemoService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *slog.Logger
}

func NewMemoService(db *gorm.DB, rdb *redis.Client, logger *slog.Logger) *MemoService {
	return &MemoService{
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *MemoService) Create(ctx context.Context, userID uint, title, content string) (*models.Memo, error) {
	memo := models.Memo{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&memo).Error; err != nil {
		return nil, fmt.Errorf("failed to create memo: %w", err)
	}

	s.invalidateCache(ctx, userID)

	return &memo, nil
}

// List returns the user's memos in insertion order. An empty slice, not an
// error, when the user has none.
func (s *MemoService) List(ctx context.Context, userID uint) ([]models.Memo, error) {
	cacheKey := s.cacheKey(userID)

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []models.Memo
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	memos := []models.Memo{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&memos).Error; err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}

	if s.rdb != nil {
		data, _ := json.Marshal(memos)
		s.rdb.Set(ctx, cacheKey, data, memoCacheTTL)
	}

	return memos, nil
}

func (s *MemoService) Update(ctx context.Context, userID, memoID uint, patch MemoPatch) (*models.Memo, error) {
	memo, err := s.findOwned(ctx, userID, memoID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		memo.Title = *patch.Title
	}
	if patch.Content != nil {
		memo.Content = *patch.Content
	}

	if err := s.db.WithContext(ctx).Save(memo).Error; err != nil {
		return nil, fmt.Errorf("failed to update memo: %w", err)
	}

	s.invalidateCache(ctx, userID)

	return memo, nil
}

func (s *MemoService) Delete(ctx context.Context, userID, memoID uint) error {
	memo, err := s.findOwned(ctx, userID, memoID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(memo).Error; err != nil {
		return fmt.Errorf("failed to delete memo: %w", err)
	}

	s.invalidateCache(ctx, userID)

	return nil
}

// findOwned filters by memo id and owner id in a single query. A miss never
// reveals whether the memo exists under another owner.
func (s *MemoService) findOwned(ctx context.Context, userID, memoID uint) (*models.Memo, error) {
	var memo models.Memo
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", memoID, userID).First(&memo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoNotFound
		}
		return nil, fmt.Errorf("failed to fetch memo: %w", err)
	}
	return &memo, nil
}

func (s *MemoService) cacheKey(userID uint) string {
	return fmt.Sprintf("memos:%d", userID)
}

func (s *MemoService) invalidateCache(ctx context.Context, userID uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, s.cacheKey(userID)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate memo cache", "user_id", userID, "error", err)
	}
}
