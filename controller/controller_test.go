package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/repository"
)

// memoryData is the shared backing state for the store stubs, so a
// cascade in one stub is observable through the others.
type memoryData struct {
	videos   map[uuid.UUID]*entity.Video
	comments map[uuid.UUID]*entity.Comment
	likes    map[string]struct{}
	history  map[string]struct{}
}

func newMemoryData() *memoryData {
	return &memoryData{
		videos:   map[uuid.UUID]*entity.Video{},
		comments: map[uuid.UUID]*entity.Comment{},
		likes:    map[string]struct{}{},
		history:  map[string]struct{}{},
	}
}

func likeKey(targetType string, targetID, userID uuid.UUID) string {
	return targetType + "|" + targetID.String() + "|" + userID.String()
}

func historyKey(userID, videoID uuid.UUID) string {
	return userID.String() + "|" + videoID.String()
}

type userStoreStub struct {
	exists  bool
	created *entity.User
	users   map[uuid.UUID]*entity.User
}

func (s *userStoreStub) Create(user *entity.User) error {
	user.ID = uuid.New()
	s.created = user
	return nil
}

func (s *userStoreStub) GetByID(id uuid.UUID) (*entity.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *userStoreStub) GetByUsername(username string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *userStoreStub) GetByIdentifier(identifier string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *userStoreStub) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	return s.exists, nil
}

func (s *userStoreStub) UpdateRefreshToken(id uuid.UUID, refreshToken string) error { return nil }
func (s *userStoreStub) UpdatePassword(id uuid.UUID, hashed string) error           { return nil }

func (s *userStoreStub) UpdateAccount(id uuid.UUID, fullname, email string) (*entity.User, error) {
	return s.GetByID(id)
}

func (s *userStoreStub) UpdateAvatar(id uuid.UUID, avatarURL string) (*entity.User, error) {
	return s.GetByID(id)
}

func (s *userStoreStub) UpdateCoverImage(id uuid.UUID, coverURL string) (*entity.User, error) {
	return s.GetByID(id)
}

type videoStoreStub struct {
	data       *memoryData
	listVideos []entity.VideoWithOwner
	listTotal  int64
}

func (s *videoStoreStub) Create(video *entity.Video) error {
	video.ID = uuid.New()
	s.data.videos[video.ID] = video
	return nil
}

func (s *videoStoreStub) GetByID(id uuid.UUID) (*entity.Video, error) {
	if video, ok := s.data.videos[id]; ok {
		return video, nil
	}
	return nil, repository.ErrNotFound
}

func (s *videoStoreStub) GetWithOwner(id uuid.UUID) (*entity.VideoWithOwner, error) {
	video, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &entity.VideoWithOwner{Video: *video}, nil
}

func (s *videoStoreStub) ListPublished(page, limit int, ownerID *uuid.UUID) ([]entity.VideoWithOwner, int64, error) {
	return s.listVideos, s.listTotal, nil
}

func (s *videoStoreStub) ListByOwner(ownerID uuid.UUID, includeUnpublished bool) ([]entity.VideoWithOwner, error) {
	var out []entity.VideoWithOwner
	for _, video := range s.data.videos {
		if video.OwnerID == ownerID && (includeUnpublished || video.IsPublished) {
			out = append(out, entity.VideoWithOwner{Video: *video})
		}
	}
	return out, nil
}

func (s *videoStoreStub) UpdateDetails(id, ownerID uuid.UUID, title, description string) (*entity.Video, error) {
	return s.owned(id, ownerID)
}

func (s *videoStoreStub) TogglePublished(id, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := s.owned(id, ownerID)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

func (s *videoStoreStub) IncrementViews(id uuid.UUID) (*entity.Video, error) {
	video, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	video.Views++
	return video, nil
}

// DeleteCascade mirrors the production contract: the video's comments
// (with their likes), its own likes, and its watch-history rows all go
// with the video.
func (s *videoStoreStub) DeleteCascade(id, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := s.owned(id, ownerID)
	if err != nil {
		return nil, err
	}

	for commentID, comment := range s.data.comments {
		if comment.VideoID != id {
			continue
		}
		for key := range s.data.likes {
			if strings.HasPrefix(key, entity.LikeTargetComment+"|"+commentID.String()+"|") {
				delete(s.data.likes, key)
			}
		}
		delete(s.data.comments, commentID)
	}
	for key := range s.data.likes {
		if strings.HasPrefix(key, entity.LikeTargetVideo+"|"+id.String()+"|") {
			delete(s.data.likes, key)
		}
	}
	for key := range s.data.history {
		if strings.HasSuffix(key, "|"+id.String()) {
			delete(s.data.history, key)
		}
	}
	delete(s.data.videos, id)
	return video, nil
}

func (s *videoStoreStub) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	for _, video := range s.data.videos {
		if video.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (s *videoStoreStub) SumViewsByOwner(ownerID uuid.UUID) (int64, error) {
	var sum int64
	for _, video := range s.data.videos {
		if video.OwnerID == ownerID {
			sum += video.Views
		}
	}
	return sum, nil
}

func (s *videoStoreStub) owned(id, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, repository.ErrForbidden
	}
	return video, nil
}

type commentStoreStub struct {
	data        *memoryData
	createCalls int
}

func (s *commentStoreStub) Create(comment *entity.Comment) error {
	s.createCalls++
	comment.ID = uuid.New()
	s.data.comments[comment.ID] = comment
	return nil
}

func (s *commentStoreStub) GetByID(id uuid.UUID) (*entity.Comment, error) {
	if comment, ok := s.data.comments[id]; ok {
		return comment, nil
	}
	return nil, repository.ErrNotFound
}

func (s *commentStoreStub) ListByVideo(videoID uuid.UUID, page, limit int) ([]entity.CommentWithOwner, int64, error) {
	var out []entity.CommentWithOwner
	for _, comment := range s.data.comments {
		if comment.VideoID == videoID {
			out = append(out, entity.CommentWithOwner{Comment: *comment})
		}
	}
	return out, int64(len(out)), nil
}

func (s *commentStoreStub) Update(id, ownerID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != ownerID {
		return nil, repository.ErrForbidden
	}
	comment.Content = content
	return comment, nil
}

func (s *commentStoreStub) Delete(id, ownerID uuid.UUID) error {
	comment, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if comment.OwnerID != ownerID {
		return repository.ErrForbidden
	}
	delete(s.data.comments, id)
	return nil
}

func (s *commentStoreStub) CountForOwnerVideos(ownerID uuid.UUID) (int64, error) {
	return int64(len(s.data.comments)), nil
}

type likeStoreStub struct {
	data *memoryData
}

func (s *likeStoreStub) Toggle(userID uuid.UUID, targetType string, targetID uuid.UUID) (bool, error) {
	key := likeKey(targetType, targetID, userID)
	if _, ok := s.data.likes[key]; ok {
		delete(s.data.likes, key)
		return false, nil
	}
	s.data.likes[key] = struct{}{}
	return true, nil
}

func (s *likeStoreStub) Count(targetType string, targetID uuid.UUID) (int64, error) {
	prefix := targetType + "|" + targetID.String() + "|"
	var count int64
	for key := range s.data.likes {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}
	return count, nil
}

func (s *likeStoreStub) ListLikedVideos(userID uuid.UUID) ([]entity.VideoWithOwner, error) {
	return nil, nil
}

func (s *likeStoreStub) CountForOwnerVideos(ownerID uuid.UUID) (int64, error) {
	return int64(len(s.data.likes)), nil
}

type playlistStoreStub struct {
	created     *entity.Playlist
	createCalls int
}

func (s *playlistStoreStub) Create(playlist *entity.Playlist, videoIDs []uuid.UUID) error {
	s.createCalls++
	playlist.ID = uuid.New()
	s.created = playlist
	return nil
}

func (s *playlistStoreStub) GetWithVideos(id uuid.UUID) (*entity.PlaylistWithVideos, error) {
	return nil, repository.ErrNotFound
}

func (s *playlistStoreStub) ListByOwner(ownerID uuid.UUID) ([]entity.Playlist, error) {
	return nil, nil
}

func (s *playlistStoreStub) Update(id, ownerID uuid.UUID, name, description string) (*entity.Playlist, error) {
	return nil, repository.ErrNotFound
}

func (s *playlistStoreStub) Delete(id, ownerID uuid.UUID) error { return repository.ErrNotFound }

func (s *playlistStoreStub) AddVideos(id, ownerID uuid.UUID, videoIDs []uuid.UUID) (*entity.PlaylistWithVideos, error) {
	return nil, repository.ErrNotFound
}

func (s *playlistStoreStub) RemoveVideos(id, ownerID uuid.UUID, videoIDs []uuid.UUID) (*entity.PlaylistWithVideos, error) {
	return nil, repository.ErrNotFound
}

type storageStub struct {
	uploads []string
}

func (s *storageStub) UploadObject(ctx context.Context, objectKey string, data io.Reader, size int64, contentType string) (string, error) {
	s.uploads = append(s.uploads, objectKey)
	return "http://localhost:9000/video-motion/" + objectKey, nil
}

func newTestController(store *Store, storage ObjectStorage) *Controller {
	cfg := &config.Config{EnvConfig: &config.EnvConfig{}}
	cfg.EnvConfig.Minio.Bucket = "video-motion"
	return &Controller{
		Config:     cfg,
		Infra:      &infra.Infra{Logger: infra.InitLoggerClient(cfg.EnvConfig)},
		Repository: store,
		Storage:    storage,
	}
}

func testContext(t *testing.T, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func registerForm(t *testing.T, username string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	_ = form.WriteField("fullname", "John Doe")
	_ = form.WriteField("email", "John.Doe@Example.com")
	_ = form.WriteField("password", "supersecret1")
	_ = form.WriteField("username", username)
	avatar, err := form.CreateFormFile("avatar", "avatar.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = avatar.Write([]byte("png-bytes"))
	_ = form.Close()
	return body, form.FormDataContentType()
}

func TestRegisterUserNormalizesMixedCaseInput(t *testing.T) {
	users := &userStoreStub{}
	storage := &storageStub{}
	ctrl := newTestController(&Store{UserRepo: users}, storage)

	body, contentType := registerForm(t, "JohnDoe")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set("Content-Type", contentType)
	c, w := testContext(t, req)

	ctrl.RegisterUser(c)

	if w.Code != 201 {
		t.Fatalf("expected status 201 got %d: %s", w.Code, w.Body.String())
	}
	if users.created == nil {
		t.Fatal("expected a user to be stored")
	}
	if users.created.Username != "johndoe" {
		t.Fatalf("expected username stored lowercase, got %q", users.created.Username)
	}
	if users.created.Email != "john.doe@example.com" {
		t.Fatalf("expected email stored lowercase, got %q", users.created.Email)
	}
	if len(storage.uploads) != 1 {
		t.Fatalf("expected one uploaded object, got %d", len(storage.uploads))
	}
}

func TestRegisterUserDuplicateConflict(t *testing.T) {
	users := &userStoreStub{exists: true}
	ctrl := newTestController(&Store{UserRepo: users}, &storageStub{})

	body, contentType := registerForm(t, "johndoe")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set("Content-Type", contentType)
	c, w := testContext(t, req)

	ctrl.RegisterUser(c)

	if w.Code != 409 {
		t.Fatalf("expected status 409 got %d", w.Code)
	}
	if users.created != nil {
		t.Fatal("duplicate registration must not store a user")
	}
}

func TestToggleVideoLikeInvolution(t *testing.T) {
	data := newMemoryData()
	videos := &videoStoreStub{data: data}
	likes := &likeStoreStub{data: data}
	ctrl := newTestController(&Store{VideoRepo: videos, LikeRepo: likes}, nil)

	user := &entity.User{ID: uuid.New(), Username: "viewer"}
	video := &entity.Video{OwnerID: uuid.New(), IsPublished: true}
	if err := videos.Create(video); err != nil {
		t.Fatalf("seed video: %v", err)
	}

	toggle := func() (bool, int64, int) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+video.ID.String(), nil)
		c, w := testContext(t, req)
		c.Set("user", user)
		c.Params = gin.Params{{Key: "videoId", Value: video.ID.String()}}

		ctrl.ToggleVideoLike(c)

		var envelope struct {
			Data struct {
				Liked bool  `json:"liked"`
				Likes int64 `json:"likes"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return envelope.Data.Liked, envelope.Data.Likes, w.Code
	}

	liked, count, code := toggle()
	if code != 200 || !liked || count != 1 {
		t.Fatalf("first toggle: expected liked with count 1, got liked=%v count=%d code=%d", liked, count, code)
	}

	liked, count, code = toggle()
	if code != 200 || liked || count != 0 {
		t.Fatalf("second toggle: expected unliked with count 0, got liked=%v count=%d code=%d", liked, count, code)
	}

	if len(data.likes) != 0 {
		t.Fatalf("two toggles must restore the original state, %d likes remain", len(data.likes))
	}
}

func TestDeleteVideoCascade(t *testing.T) {
	data := newMemoryData()
	videos := &videoStoreStub{data: data}
	comments := &commentStoreStub{data: data}
	likes := &likeStoreStub{data: data}
	owner := &entity.User{ID: uuid.New(), Username: "owner"}
	viewer := uuid.New()

	video := &entity.Video{OwnerID: owner.ID, IsPublished: true}
	if err := videos.Create(video); err != nil {
		t.Fatalf("seed video: %v", err)
	}
	comment := &entity.Comment{Content: "nice", OwnerID: viewer, VideoID: video.ID}
	if err := comments.Create(comment); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	data.likes[likeKey(entity.LikeTargetVideo, video.ID, viewer)] = struct{}{}
	data.likes[likeKey(entity.LikeTargetComment, comment.ID, viewer)] = struct{}{}
	data.history[historyKey(viewer, video.ID)] = struct{}{}

	ctrl := newTestController(&Store{VideoRepo: videos, CommentRepo: comments, LikeRepo: likes}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/videos/"+video.ID.String(), nil)
	c, w := testContext(t, req)
	c.Set("user", owner)
	c.Params = gin.Params{{Key: "videoId", Value: video.ID.String()}}

	ctrl.DeleteVideo(c)

	if w.Code != 200 {
		t.Fatalf("expected status 200 got %d: %s", w.Code, w.Body.String())
	}
	if len(data.videos) != 0 {
		t.Fatalf("expected video removed, %d remain", len(data.videos))
	}
	if len(data.comments) != 0 {
		t.Fatalf("expected comments purged, %d remain", len(data.comments))
	}
	if len(data.likes) != 0 {
		t.Fatalf("expected likes purged, %d remain", len(data.likes))
	}
	if len(data.history) != 0 {
		t.Fatalf("expected watch history purged, %d entries remain", len(data.history))
	}
}

func TestDeleteVideoForbiddenForNonOwner(t *testing.T) {
	data := newMemoryData()
	videos := &videoStoreStub{data: data}

	video := &entity.Video{OwnerID: uuid.New(), IsPublished: true}
	if err := videos.Create(video); err != nil {
		t.Fatalf("seed video: %v", err)
	}

	ctrl := newTestController(&Store{VideoRepo: videos}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/videos/"+video.ID.String(), nil)
	c, w := testContext(t, req)
	c.Set("user", &entity.User{ID: uuid.New(), Username: "intruder"})
	c.Params = gin.Params{{Key: "videoId", Value: video.ID.String()}}

	ctrl.DeleteVideo(c)

	if w.Code != 403 {
		t.Fatalf("expected status 403 got %d", w.Code)
	}
	if len(data.videos) != 1 {
		t.Fatal("video must survive a non-owner delete attempt")
	}
}

func TestListVideosPaginationEnvelope(t *testing.T) {
	videos := &videoStoreStub{data: newMemoryData(), listTotal: 21}
	ctrl := newTestController(&Store{VideoRepo: videos}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos?page=2&limit=10", nil)
	c, w := testContext(t, req)

	ctrl.ListVideos(c)

	if w.Code != 200 {
		t.Fatalf("expected status 200 got %d", w.Code)
	}

	var envelope struct {
		Data struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int64 `json:"totalPages"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Total != 21 || envelope.Data.Page != 2 || envelope.Data.Limit != 10 {
		t.Fatalf("unexpected paging fields: %+v", envelope.Data)
	}
	if envelope.Data.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 21 items at limit 10, got %d", envelope.Data.TotalPages)
	}
}

func TestUnauthenticatedRequestsDoNotMutate(t *testing.T) {
	data := newMemoryData()
	comments := &commentStoreStub{data: data}
	ctrl := newTestController(&Store{CommentRepo: comments}, nil)

	body := bytes.NewBufferString(`{"content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comments/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	c, w := testContext(t, req)

	ctrl.AddComment(c)

	if w.Code != 401 {
		t.Fatalf("expected status 401 got %d", w.Code)
	}
	if comments.createCalls != 0 {
		t.Fatalf("expected no writes, got %d create calls", comments.createCalls)
	}
}

func TestCreatePlaylistRejectsUnknownVideos(t *testing.T) {
	playlists := &playlistStoreStub{}
	videos := &videoStoreStub{data: newMemoryData()}
	ctrl := newTestController(&Store{PlaylistRepo: playlists, VideoRepo: videos}, nil)

	body := bytes.NewBufferString(`{"name":"Favorites","videos":["` + uuid.NewString() + `"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/playlists", body)
	req.Header.Set("Content-Type", "application/json")
	c, w := testContext(t, req)
	c.Set("user", &entity.User{ID: uuid.New(), Username: "curator"})

	ctrl.CreatePlaylist(c)

	if w.Code != 404 {
		t.Fatalf("expected status 404 got %d", w.Code)
	}
	if playlists.createCalls != 0 {
		t.Fatal("playlist must not be created when a video id is unknown")
	}
}
