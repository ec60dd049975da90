package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/common"
)

var (
	ErrUploadMissingURL = errors.New("Upload failed: missing URL")
	ErrFileList         = errors.New("Failed to fetch file list")
)

type UploadService interface {
	// UploadImage returns the path the file is served under,
	// /api/uploads/files/<filename>.
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
	ListFiles(ctx context.Context) ([]string, error)
}

type uploadService struct {
	r Requester
}

func NewUploadService(r Requester) UploadService {
	return &uploadService{r: r}
}

func (s *uploadService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := s.r.Upload(ctx, "/api/uploads/image", filename, r, &resp); err != nil {
		return "", err
	}

	name := strings.TrimSpace(resp.URL)
	if name == "" {
		return "", ErrUploadMissingURL
	}
	if strings.HasPrefix(name, common.UploadsFilesPath) {
		return name, nil
	}
	return common.UploadsFilesPath + name, nil
}

func (s *uploadService) ListFiles(ctx context.Context) ([]string, error) {
	var resp struct {
		Files []string `json:"files"`
	}
	if err := s.r.Do(ctx, http.MethodGet, "/api/uploads/list", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Files == nil {
		return nil, ErrFileList
	}
	return resp.Files, nil
}
