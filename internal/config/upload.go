package config

import (
	"os"
	"sync"
)

type UploadConfig struct {
	Dir       string
	MaxSize   int64
	URLPrefix string
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		dir := os.Getenv("UPLOAD_DIR")
		if dir == "" {
			dir = "./uploads"
		}
		uploadConfig = &UploadConfig{
			Dir:       dir,
			MaxSize:   5 * 1024 * 1024,
			URLPrefix: "/uploads",
		}
	})
	return uploadConfig
}
