package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts the playlist and its initial memberships in one
// transaction.
func (r *PlaylistRepository) Create(playlist *entity.Playlist, videoIDs []uuid.UUID) error {
	if playlist == nil {
		return errors.New("playlist cannot be nil")
	}

	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(playlist).Error; err != nil {
			return err
		}
		return addMemberships(tx, playlist.ID, videoIDs, 0)
	}))
}

func (r *PlaylistRepository) GetByID(id uuid.UUID) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.db.First(&playlist, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &playlist, nil
}

// GetWithVideos loads a playlist and its videos in membership order.
func (r *PlaylistRepository) GetWithVideos(id uuid.UUID) (*entity.PlaylistWithVideos, error) {
	playlist, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	var videos []entity.Video
	err = r.db.Model(&entity.Video{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", id).
		Order("playlist_videos.position ASC, playlist_videos.created_at ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}

	return &entity.PlaylistWithVideos{Playlist: *playlist, Videos: videos}, nil
}

func (r *PlaylistRepository) ListByOwner(ownerID uuid.UUID) ([]entity.Playlist, error) {
	var playlists []entity.Playlist
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&playlists).Error
	return playlists, err
}

func (r *PlaylistRepository) Update(id, ownerID uuid.UUID, name, description string) (*entity.Playlist, error) {
	playlist, err := r.ownedPlaylist(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) > 0 {
		if err := r.db.Model(playlist).Updates(updates).Error; err != nil {
			return nil, translateError(err)
		}
	}
	return playlist, nil
}

// Delete removes the playlist and its membership rows in one transaction.
func (r *PlaylistRepository) Delete(id, ownerID uuid.UUID) error {
	if _, err := r.ownedPlaylist(id, ownerID); err != nil {
		return err
	}

	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&entity.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Playlist{}, "id = ?", id).Error
	}))
}

// AddVideos appends memberships set-union style: already present videos
// are skipped by the unique index, new ones land after the current tail.
func (r *PlaylistRepository) AddVideos(id, ownerID uuid.UUID, videoIDs []uuid.UUID) (*entity.PlaylistWithVideos, error) {
	if _, err := r.ownedPlaylist(id, ownerID); err != nil {
		return nil, err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var maxPosition int
		err := tx.Model(&entity.PlaylistVideo{}).
			Where("playlist_id = ?", id).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&maxPosition).Error
		if err != nil {
			return err
		}
		return addMemberships(tx, id, videoIDs, maxPosition)
	})
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetWithVideos(id)
}

// RemoveVideos drops the listed memberships; ids not in the playlist are
// ignored.
func (r *PlaylistRepository) RemoveVideos(id, ownerID uuid.UUID, videoIDs []uuid.UUID) (*entity.PlaylistWithVideos, error) {
	if _, err := r.ownedPlaylist(id, ownerID); err != nil {
		return nil, err
	}

	err := r.db.Where("playlist_id = ? AND video_id IN ?", id, videoIDs).
		Delete(&entity.PlaylistVideo{}).Error
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetWithVideos(id)
}

func (r *PlaylistRepository) ownedPlaylist(id, ownerID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return playlist, nil
}

func addMemberships(tx *gorm.DB, playlistID uuid.UUID, videoIDs []uuid.UUID, startPosition int) error {
	if len(videoIDs) == 0 {
		return nil
	}

	memberships := make([]entity.PlaylistVideo, 0, len(videoIDs))
	for i, videoID := range videoIDs {
		memberships = append(memberships, entity.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   startPosition + i,
		})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&memberships).Error
}
