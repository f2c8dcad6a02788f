package controller

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/infra/produce"
	"github.com/videomotion/video-motion-api/repository"
	"github.com/videomotion/video-motion-api/utils"
)

// ObjectStorage is the upload surface the handlers write assets through.
type ObjectStorage interface {
	UploadObject(ctx context.Context, objectKey string, data io.Reader, size int64, contentType string) (string, error)
}

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *Store
	Storage    ObjectStorage
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: NewStore(repo),
		Storage:    infra.Minio,
	}
}

// uploadAsset streams a multipart file into object storage under the
// given folder and returns the public URL plus the object key.
func (ctrl *Controller) uploadAsset(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(fileHeader.Filename))

	url, err := ctrl.Storage.UploadObject(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		return "", "", err
	}
	return url, objectKey, nil
}

// queueAssetDelete publishes an object-delete job for a previously stored
// asset URL. A failed publish only orphans the object; the database state
// already moved on, so the error is logged and swallowed.
func (ctrl *Controller) queueAssetDelete(ctx context.Context, userID uuid.UUID, assetURL, reason string) {
	if assetURL == "" {
		return
	}

	objectKey, err := utils.ObjectKeyFromURL(assetURL, ctrl.Config.EnvConfig.Minio.Bucket)
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Storage] Skipping cleanup of foreign asset URL %s: %v", assetURL, err)
		return
	}

	err = ctrl.Infra.Produce.StorageCleanup.PublishDeleteObject(ctx, produce.DeleteObjectMessage{
		ObjectKey: objectKey,
		UserID:    userID.String(),
		Reason:    reason,
	})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Failed to queue delete for object %s", objectKey)
	}
}
