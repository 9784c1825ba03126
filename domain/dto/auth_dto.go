package dto

import "streamhub/domain/model"

// ReqRegister is assembled by the handler from the multipart form; the image
// paths point at temp files the handler already persisted locally.
type ReqRegister struct {
	Username       string `json:"username"`
	Fullname       string `json:"fullname"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	AvatarPath     string `json:"-"`
	CoverImagePath string `json:"-"`
}

type ReqLogin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ReqRefreshToken struct {
	RefreshToken string `json:"refreshToken"`
}

type ReqChangePassword struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ReqUpdateAccount struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

type ResTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ResLogin struct {
	User         model.User `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}
