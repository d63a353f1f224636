package usecase

import (
	"github.com/openparish/sacristy/internal/domain"
)

// Upload is a certificate file received from a multipart request.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

func validateUpload(u Upload) error {
	if len(u.Data) == 0 {
		return domain.Invalid("certificate file is required")
	}
	if len(u.Data) > domain.MaxCertificateSize {
		return domain.Invalid("certificate file exceeds the 2 MB limit")
	}
	return nil
}
