package qrcode

import (
	"encoding/json"
	"testing"

	"foodcritic/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateReviewQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "http://localhost:8080/reviews")

		qrBytes, err := service.GenerateReviewQR(42)
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), len(pngMagic))
		assert.Equal(t, pngMagic, qrBytes[:len(pngMagic)])
	}
}

func TestQRCodeService_GenerateReviewQR_InvalidID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateReviewQR(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid restaurant ID")
}

func TestQRCodeService_ParseReviewQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	jsonData, err := json.Marshal(QRCodeData{Type: constants.QRCodeTypeRestaurantReview, RestaurantID: 7})
	require.NoError(t, err)

	restaurantID, err := service.ParseReviewQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, int64(7), restaurantID)
}

func TestQRCodeService_ParseReviewQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"Malformed JSON", "{not json", "failed to unmarshal QR code data"},
		{"Wrong type", `{"type":"subscription","restaurant_id":1}`, "invalid QR code type"},
		{"Missing restaurant", `{"type":"restaurant_review"}`, "invalid restaurant ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseReviewQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQRCodeService_ReviewURL(t *testing.T) {
	svc, ok := NewQRCodeService(256, "M", "http://localhost:8080/reviews").(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, "http://localhost:8080/reviews?restaurantId=9", svc.reviewURL(9))

	bare, ok := NewQRCodeService(256, "M", "").(*qrcodeService)
	require.True(t, ok)
	assert.Empty(t, bare.reviewURL(9))
}
