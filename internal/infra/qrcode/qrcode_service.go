// Package qrcode renders restaurant review links as QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"foodcritic/internal/domain/constants"
	"foodcritic/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is the JSON payload encoded in a review QR code
type QRCodeData struct {
	Type         string `json:"type"`
	RestaurantID int64  `json:"restaurant_id"`
	URL          string `json:"url,omitempty"`
}

// NewQRCodeService creates a QR code service. Levels are L, M, Q or H; anything
// else falls back to M. baseURL, when set, is the review listing the code links to.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimSpace(baseURL),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateReviewQR generates a PNG QR code for a restaurant's reviews
func (s *qrcodeService) GenerateReviewQR(restaurantID int64) ([]byte, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("invalid restaurant ID: %d", restaurantID)
	}

	data := QRCodeData{
		Type:         constants.QRCodeTypeRestaurantReview,
		RestaurantID: restaurantID,
		URL:          s.reviewURL(restaurantID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReviewQR parses QR code data and returns the restaurant ID
func (s *qrcodeService) ParseReviewQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != constants.QRCodeTypeRestaurantReview {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RestaurantID <= 0 {
		return 0, fmt.Errorf("invalid restaurant ID: %d", data.RestaurantID)
	}

	return data.RestaurantID, nil
}

func (s *qrcodeService) reviewURL(restaurantID int64) string {
	if s.baseURL == "" {
		return ""
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return ""
	}

	query := u.Query()
	query.Set("restaurantId", strconv.FormatInt(restaurantID, 10))
	u.RawQuery = query.Encode()

	return u.String()
}
