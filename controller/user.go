package controller

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/videomotion/video-motion-api/controller/dto"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/utils"
)

func (ctrl *Controller) RegisterUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, 400, "All fields are required")
		return
	}
	req.Username = strings.ToLower(req.Username)
	req.Email = strings.ToLower(req.Email)

	exists, err := ctrl.Repository.UserRepo.ExistsByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to check username/email existence")
		respondError(c, 500, "Internal server error")
		return
	}
	if exists {
		respondError(c, 409, "Username or email already exists")
		return
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, 400, "Avatar is required")
		return
	}

	avatarURL, _, err := ctrl.uploadAsset(ctx, avatarFile, infra.FolderAvatars)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to upload avatar")
		respondError(c, 500, "Error while uploading avatar")
		return
	}

	coverURL := ""
	if coverFile, err := c.FormFile("coverImage"); err == nil {
		coverURL, _, err = ctrl.uploadAsset(ctx, coverFile, infra.FolderCovers)
		if err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to upload cover image")
			respondError(c, 500, "Error while uploading cover image")
			return
		}
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to hash password")
		respondError(c, 500, "Internal server error")
		return
	}

	user := &entity.User{
		Username:   req.Username,
		Email:      req.Email,
		Fullname:   req.Fullname,
		Password:   hashed,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	if err := ctrl.Repository.UserRepo.Create(user); err != nil {
		// The unique index catches registrations racing past the
		// existence check above.
		respondRepositoryError(c, err, "User not found")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] Registered user %s (%s)", user.Username, user.ID)
	respondSuccess(c, 201, user.Public(), "User created successfully")
}

func (ctrl *Controller) LoginUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Identifier() == "" {
		respondError(c, 400, "Username or email and password are required")
		return
	}

	user, err := ctrl.Repository.UserRepo.GetByIdentifier(strings.ToLower(req.Identifier()))
	if err != nil {
		respondError(c, 401, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		respondError(c, 401, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := ctrl.issueTokens(c, user)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to issue tokens for %s", user.Username)
		respondError(c, 500, "Internal server error")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] User %s logged in", user.Username)
	respondSuccess(c, 200, gin.H{
		"user":         user.Public(),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "User logged in successfully")
}

func (ctrl *Controller) LogoutUser(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	if err := ctrl.Repository.UserRepo.UpdateRefreshToken(user.ID, ""); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to clear refresh token for %s", user.Username)
		respondError(c, 500, "Internal server error")
		return
	}

	// Revoke the live access token so it cannot outlive the session.
	if tokenStr := utils.ExtractAccessToken(c); tokenStr != "" {
		if parsed, err := utils.ParseAccessToken(tokenStr, ctrl.Config.EnvConfig); err == nil {
			if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
				err := ctrl.Infra.Redis.RevokeToken(ctx, utils.TokenJTI(claims), utils.TokenRemainingTTL(claims))
				if err != nil {
					ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] Failed to revoke access token for %s: %v", user.Username, err)
				}
			}
		}
	}

	ctrl.clearAuthCookies(c)
	respondSuccess(c, 200, gin.H{}, "User logged out successfully")
}

func (ctrl *Controller) RefreshAccessToken(c *gin.Context) {
	ctx := c.Request.Context()

	incoming, err := c.Cookie("refreshToken")
	if err != nil || incoming == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}
	if incoming == "" {
		respondError(c, 401, "Refresh token is required")
		return
	}

	parsed, err := utils.ParseRefreshToken(incoming, ctrl.Config.EnvConfig)
	if err != nil || !parsed.Valid {
		respondError(c, 401, "Invalid refresh token")
		return
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		respondError(c, 401, "Invalid refresh token")
		return
	}
	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		respondError(c, 401, "Invalid refresh token")
		return
	}

	user, err := ctrl.Repository.UserRepo.GetByID(userID)
	if err != nil {
		respondError(c, 401, "Invalid refresh token")
		return
	}

	// Single active refresh credential per user: anything but an exact
	// match of the stored token is rejected.
	if user.RefreshToken == "" || user.RefreshToken != incoming {
		respondError(c, 401, "Refresh token is expired or used")
		return
	}

	accessToken, refreshToken, err := ctrl.issueTokens(c, user)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to rotate tokens for %s", user.Username)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "Access token refreshed successfully")
}

func (ctrl *Controller) ChangeCurrentPassword(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Old and new password are required")
		return
	}

	// The gateway strips the password hash, so reload the full record.
	full, err := ctrl.Repository.UserRepo.GetByID(user.ID)
	if err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	if !utils.CheckPassword(full.Password, req.OldPassword) {
		respondError(c, 400, "Invalid old password")
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to hash password")
		respondError(c, 500, "Internal server error")
		return
	}

	if err := ctrl.Repository.UserRepo.UpdatePassword(user.ID, hashed); err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	respondSuccess(c, 200, gin.H{}, "Password changed successfully")
}

func (ctrl *Controller) GetCurrentUser(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}
	respondSuccess(c, 200, user.Public(), "Current user fetched successfully")
}

func (ctrl *Controller) UpdateAccountDetails(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Fullname == "" && req.Email == "") {
		respondError(c, 400, "Fullname or email is required")
		return
	}

	updated, err := ctrl.Repository.UserRepo.UpdateAccount(user.ID, req.Fullname, strings.ToLower(req.Email))
	if err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	respondSuccess(c, 200, updated.Public(), "Account details updated successfully")
}

func (ctrl *Controller) UpdateAvatar(c *gin.Context) {
	ctrl.updateAsset(c, "avatar")
}

func (ctrl *Controller) UpdateCoverImage(c *gin.Context) {
	ctrl.updateAsset(c, "coverImage")
}

// updateAsset uploads the replacement before touching the record, then
// queues deletion of the object the old URL pointed at.
func (ctrl *Controller) updateAsset(c *gin.Context, field string) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		respondError(c, 400, field+" file is required")
		return
	}

	folder := infra.FolderAvatars
	if field == "coverImage" {
		folder = infra.FolderCovers
	}

	url, _, err := ctrl.uploadAsset(ctx, fileHeader, folder)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to upload %s", field)
		respondError(c, 500, "Error while uploading "+field)
		return
	}

	var updated *entity.User
	var oldURL string
	if field == "coverImage" {
		oldURL = user.CoverImage
		updated, err = ctrl.Repository.UserRepo.UpdateCoverImage(user.ID, url)
	} else {
		oldURL = user.Avatar
		updated, err = ctrl.Repository.UserRepo.UpdateAvatar(user.ID, url)
	}
	if err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	ctrl.queueAssetDelete(ctx, user.ID, oldURL, "replaced "+field)

	respondSuccess(c, 200, updated.Public(), field+" updated successfully")
}

func (ctrl *Controller) GetUserChannelProfile(c *gin.Context) {
	ctx := c.Request.Context()

	viewer, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	username := strings.ToLower(c.Param("username"))
	if username == "" {
		respondError(c, 400, "Username is required")
		return
	}

	channel, err := ctrl.Repository.UserRepo.GetByUsername(username)
	if err != nil {
		respondRepositoryError(c, err, "Channel not found")
		return
	}

	subscriberCount, err := ctrl.Repository.SubscriptionRepo.CountByChannel(channel.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to count subscribers for %s", username)
		respondError(c, 500, "Internal server error")
		return
	}

	subscribedToCount, err := ctrl.Repository.SubscriptionRepo.CountBySubscriber(channel.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to count subscriptions for %s", username)
		respondError(c, 500, "Internal server error")
		return
	}

	isSubscribed, err := ctrl.Repository.SubscriptionRepo.IsSubscribed(channel.ID, viewer.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to check subscription for %s", username)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"user":              channel.Public(),
		"subscriberCount":   subscriberCount,
		"subscribedToCount": subscribedToCount,
		"isSubscribed":      isSubscribed,
	}, "Channel profile fetched successfully")
}

func (ctrl *Controller) GetWatchHistory(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	entries, err := ctrl.Repository.WatchHistoryRepo.ListByUser(user.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to list watch history for %s", user.Username)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, entries, "Watch history fetched successfully")
}

// issueTokens signs a fresh access/refresh pair, persists the refresh
// token and sets both cookies.
func (ctrl *Controller) issueTokens(c *gin.Context, user *entity.User) (string, string, error) {
	cfg := ctrl.Config.EnvConfig

	accessToken, err := utils.GenerateAccessToken(user, cfg)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := utils.GenerateRefreshToken(user, cfg)
	if err != nil {
		return "", "", err
	}

	if err := ctrl.Repository.UserRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return "", "", err
	}

	secure := cfg.Environment.Mode != "development"
	c.SetCookie("accessToken", accessToken, cfg.JWT.AccessExpire, "/", "", secure, true)
	c.SetCookie("refreshToken", refreshToken, cfg.JWT.RefreshExpire, "/", "", secure, true)

	return accessToken, refreshToken, nil
}

func (ctrl *Controller) clearAuthCookies(c *gin.Context) {
	secure := ctrl.Config.EnvConfig.Environment.Mode != "development"
	c.SetCookie("accessToken", "", -1, "/", "", secure, true)
	c.SetCookie("refreshToken", "", -1, "/", "", secure, true)
}
