package booking

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
)

// MaxProofBytes is the maximum decoded size of a proof-of-delivery image.
const MaxProofBytes = 5 << 20 // 5 MiB

// ValidateProofPayload checks that the payload is a recognizable inline image
// and within the size limit, returning its mime type and decoded size.
func ValidateProofPayload(p *ProofPayload) (mimeType string, size int64, err error) {
	if p == nil || p.Data == "" {
		return "", 0, NewValidationError("proof of delivery payload is required")
	}
	if !strings.HasPrefix(p.Data, "data:image/") {
		return "", 0, NewValidationError("proof of delivery must be an inline image (data:image/... URI)")
	}
	marker := ";base64,"
	idx := strings.Index(p.Data, marker)
	if idx < 0 {
		return "", 0, NewValidationError("proof of delivery must be base64 encoded")
	}

	mimeType = p.Data[len("data:"):idx]
	decoded, err := base64.StdEncoding.DecodeString(p.Data[idx+len(marker):])
	if err != nil {
		return "", 0, NewValidationError("proof of delivery is not valid base64 data")
	}
	size = int64(len(decoded))
	if size == 0 {
		return "", 0, NewValidationError("proof of delivery image is empty")
	}
	if size > MaxProofBytes {
		return "", 0, NewValidationError("proof of delivery exceeds the %d byte limit", MaxProofBytes)
	}
	return mimeType, size, nil
}

// attachProof validates, stores and records the proof-of-delivery document.
func (s *DefaultBookingService) attachProof(ctx context.Context, booking *models.Booking, p *ProofPayload) (*models.TripDocument, error) {
	mimeType, size, err := ValidateProofPayload(p)
	if err != nil {
		return nil, err
	}

	documentType := p.DocumentType
	if documentType == "" {
		documentType = "proofOfDelivery"
	}

	publicID, err := s.Storage.UploadDataURI(ctx, p.Data, "proof-of-delivery/"+booking.TripNumber)
	if err != nil {
		return nil, err
	}

	return &models.TripDocument{
		PublicID:     publicID,
		DocumentType: documentType,
		FileSize:     size,
		MimeType:     mimeType,
		UploadedAt:   time.Now(),
	}, nil
}
