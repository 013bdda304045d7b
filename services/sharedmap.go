package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"state-tracker-system/models"
	"state-tracker-system/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const shareCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const shareCodeLength = 8

type SharedMapService struct {
	DB *gorm.DB
}

func NewSharedMapService(db *gorm.DB) *SharedMapService {
	return &SharedMapService{DB: db}
}

// SaveSharedMap stores a map snapshot under a fresh share code. When R2 is
// configured the image is offloaded there and only the URL is kept; otherwise
// the data URL stays inline in the row.
func (s *SharedMapService) SaveSharedMap(userID, imageData string) (*models.SharedMap, error) {
	userID = NormalizeUserID(userID)

	record := models.SharedMap{
		UserID:    userID,
		ImageData: imageData,
	}

	if utils.R2Enabled() {
		if url, err := s.uploadImage(imageData); err != nil {
			// Keep the inline copy — sharing still works without the CDN.
			log.Printf("⚠️ [SHARED_MAPS] R2 upload failed, keeping image inline: %v", err)
		} else {
			record.ImageURL = url
			record.ImageData = ""
		}
	}

	// Share codes collide rarely (62^8 space); retry a few times on the
	// unique index rather than pre-checking.
	for attempt := 0; attempt < 3; attempt++ {
		record.ShareCode = generateShareCode()
		err := s.DB.Create(&record).Error
		if err == nil {
			return &record, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, errors.New("failed to allocate a unique share code")
}

// GetSharedMapByCode looks up a shared map by its public code.
func (s *SharedMapService) GetSharedMapByCode(shareCode string) (*models.SharedMap, error) {
	var record models.SharedMap
	if err := s.DB.Where("share_code = ?", shareCode).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// uploadImage decodes a "data:image/png;base64,..." payload and pushes the
// bytes to R2, returning the public URL.
func (s *SharedMapService) uploadImage(imageData string) (string, error) {
	header, encoded, found := strings.Cut(imageData, ",")
	if !found || !strings.HasPrefix(header, "data:") {
		return "", errors.New("image is not a data URL")
	}
	contentType := strings.TrimPrefix(header, "data:")
	contentType = strings.TrimSuffix(contentType, ";base64")
	if contentType == "" {
		contentType = "image/png"
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	ext := "png"
	if idx := strings.Index(contentType, "/"); idx >= 0 && idx+1 < len(contentType) {
		ext = contentType[idx+1:]
	}
	key := fmt.Sprintf("shared-maps/%s.%s", generateShareCode(), ext)
	return utils.UploadBytesToR2(raw, key, contentType)
}

func generateShareCode() string {
	buf := make([]byte, shareCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:shareCodeLength]
	}
	for i, b := range buf {
		buf[i] = shareCodeCharset[int(b)%len(shareCodeCharset)]
	}
	return string(buf)
}
