package controller

import (
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/repository"
)

// Per-entity persistence contracts the handlers depend on. The gorm
// repositories satisfy them in production; tests substitute in-memory
// fakes.

type UserStore interface {
	Create(user *entity.User) error
	GetByID(id uuid.UUID) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByIdentifier(identifier string) (*entity.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	UpdateRefreshToken(id uuid.UUID, refreshToken string) error
	UpdatePassword(id uuid.UUID, hashed string) error
	UpdateAccount(id uuid.UUID, fullname, email string) (*entity.User, error)
	UpdateAvatar(id uuid.UUID, avatarURL string) (*entity.User, error)
	UpdateCoverImage(id uuid.UUID, coverURL string) (*entity.User, error)
}

type VideoStore interface {
	Create(video *entity.Video) error
	GetByID(id uuid.UUID) (*entity.Video, error)
	GetWithOwner(id uuid.UUID) (*entity.VideoWithOwner, error)
	ListPublished(page, limit int, ownerID *uuid.UUID) ([]entity.VideoWithOwner, int64, error)
	ListByOwner(ownerID uuid.UUID, includeUnpublished bool) ([]entity.VideoWithOwner, error)
	UpdateDetails(id, ownerID uuid.UUID, title, description string) (*entity.Video, error)
	TogglePublished(id, ownerID uuid.UUID) (*entity.Video, error)
	IncrementViews(id uuid.UUID) (*entity.Video, error)
	DeleteCascade(id, ownerID uuid.UUID) (*entity.Video, error)
	CountByOwner(ownerID uuid.UUID) (int64, error)
	SumViewsByOwner(ownerID uuid.UUID) (int64, error)
}

type CommentStore interface {
	Create(comment *entity.Comment) error
	GetByID(id uuid.UUID) (*entity.Comment, error)
	ListByVideo(videoID uuid.UUID, page, limit int) ([]entity.CommentWithOwner, int64, error)
	Update(id, ownerID uuid.UUID, content string) (*entity.Comment, error)
	Delete(id, ownerID uuid.UUID) error
	CountForOwnerVideos(ownerID uuid.UUID) (int64, error)
}

type TweetStore interface {
	Create(tweet *entity.Tweet) error
	GetByID(id uuid.UUID) (*entity.Tweet, error)
	ListAll() ([]entity.TweetWithOwner, error)
	ListByOwner(ownerID uuid.UUID) ([]entity.TweetWithOwner, error)
	Update(id, ownerID uuid.UUID, content string) (*entity.Tweet, error)
	Delete(id, ownerID uuid.UUID) error
}

type LikeStore interface {
	Toggle(userID uuid.UUID, targetType string, targetID uuid.UUID) (bool, error)
	Count(targetType string, targetID uuid.UUID) (int64, error)
	ListLikedVideos(userID uuid.UUID) ([]entity.VideoWithOwner, error)
	CountForOwnerVideos(ownerID uuid.UUID) (int64, error)
}

type PlaylistStore interface {
	Create(playlist *entity.Playlist, videoIDs []uuid.UUID) error
	GetWithVideos(id uuid.UUID) (*entity.PlaylistWithVideos, error)
	ListByOwner(ownerID uuid.UUID) ([]entity.Playlist, error)
	Update(id, ownerID uuid.UUID, name, description string) (*entity.Playlist, error)
	Delete(id, ownerID uuid.UUID) error
	AddVideos(id, ownerID uuid.UUID, videoIDs []uuid.UUID) (*entity.PlaylistWithVideos, error)
	RemoveVideos(id, ownerID uuid.UUID, videoIDs []uuid.UUID) (*entity.PlaylistWithVideos, error)
}

type SubscriptionStore interface {
	Toggle(channelID, subscriberID uuid.UUID) (bool, error)
	CountByChannel(channelID uuid.UUID) (int64, error)
	CountBySubscriber(subscriberID uuid.UUID) (int64, error)
	IsSubscribed(channelID, subscriberID uuid.UUID) (bool, error)
	ListSubscribers(channelID uuid.UUID) ([]entity.OwnerRef, error)
	ListChannels(subscriberID uuid.UUID) ([]entity.OwnerRef, error)
}

type WatchHistoryStore interface {
	Upsert(userID, videoID uuid.UUID, duration, position float64) (*entity.WatchHistory, error)
	Delete(userID, videoID uuid.UUID) error
	ListByUser(userID uuid.UUID) ([]entity.WatchHistoryEntry, error)
}

// Store bundles the persistence handles the controller works against.
type Store struct {
	UserRepo         UserStore
	VideoRepo        VideoStore
	CommentRepo      CommentStore
	TweetRepo        TweetStore
	LikeRepo         LikeStore
	PlaylistRepo     PlaylistStore
	SubscriptionRepo SubscriptionStore
	WatchHistoryRepo WatchHistoryStore
}

func NewStore(repo *repository.Repository) *Store {
	return &Store{
		UserRepo:         repo.UserRepo,
		VideoRepo:        repo.VideoRepo,
		CommentRepo:      repo.CommentRepo,
		TweetRepo:        repo.TweetRepo,
		LikeRepo:         repo.LikeRepo,
		PlaylistRepo:     repo.PlaylistRepo,
		SubscriptionRepo: repo.SubscriptionRepo,
		WatchHistoryRepo: repo.WatchHistoryRepo,
	}
}
