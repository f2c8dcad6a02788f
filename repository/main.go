package repository

import (
	"errors"

	"github.com/videomotion/video-motion-api/infra"
	"gorm.io/gorm"
)

// Sentinel errors the controllers map onto response codes.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	ErrForbidden = errors.New("record owned by another user")
)

type Repository struct {
	Db *gorm.DB

	UserRepo         *UserRepository
	VideoRepo        *VideoRepository
	CommentRepo      *CommentRepository
	TweetRepo        *TweetRepository
	LikeRepo         *LikeRepository
	PlaylistRepo     *PlaylistRepository
	SubscriptionRepo *SubscriptionRepository
	WatchHistoryRepo *WatchHistoryRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	db := infra.Postgres.DB
	if db == nil {
		panic("database connection is nil")
	}

	return &Repository{
		Db:               db,
		UserRepo:         NewUserRepository(db),
		VideoRepo:        NewVideoRepository(db),
		CommentRepo:      NewCommentRepository(db),
		TweetRepo:        NewTweetRepository(db),
		LikeRepo:         NewLikeRepository(db),
		PlaylistRepo:     NewPlaylistRepository(db),
		SubscriptionRepo: NewSubscriptionRepository(db),
		WatchHistoryRepo: NewWatchHistoryRepository(db),
	}
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// NormalizePage clamps page/limit query values into the supported window.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// TotalPages derives the page count for a listing response.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
