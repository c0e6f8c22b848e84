package domain

import "context"

type UploadRequest struct {
	UserID   string
	Role     string
	Kind     string // avatar, cv, logo
	Filename string
	Data     []byte
	IP       string
}

type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type UploadUsecase interface {
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)
}
