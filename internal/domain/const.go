package domain

const (
	RequesterNameCtxKey = "sacristy-requesterName"
	RequesterRoleCtxKey = "sacristy-requesterRole"
)

const (
	// SeeCertificate stands in for a field whose true value is only
	// available on the uploaded certificate image.
	SeeCertificate = "See Certificate"
	// NoValue stands in for a name with no safe default.
	NoValue = "—"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// MaxCertificateSize is the upload ceiling for certificate files.
const MaxCertificateSize = 2 << 20
