package usecase

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

// CertificateUsecase renders, retrieves and emails certificates. Internal
// records get a generated PDF; external records serve back the file that was
// uploaded when the record was created.
type CertificateUsecase struct {
	registry   RegistryRepository
	baptisms   BaptismRepository
	communions CommunionRepository
	renderer   CertificateRenderer
	blobs      BlobStore
	mailer     Mailer
}

func NewCertificateUsecase(
	registry RegistryRepository,
	baptisms BaptismRepository,
	communions CommunionRepository,
	renderer CertificateRenderer,
	blobs BlobStore,
	mailer Mailer,
) *CertificateUsecase {
	return &CertificateUsecase{
		registry:   registry,
		baptisms:   baptisms,
		communions: communions,
		renderer:   renderer,
		blobs:      blobs,
		mailer:     mailer,
	}
}

// RenderBaptism generates the baptism certificate PDF. External baptisms have
// no generated form; the caller should fetch the uploaded file instead.
func (uc *CertificateUsecase) RenderBaptism(ctx context.Context, baptismID int64) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Certificate.Usecase.RenderBaptism")
	defer span.End()

	b, err := uc.baptisms.GetBaptism(ctx, baptismID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if b.Source == domain.SourceExternal {
		return nil, domain.Invalid("baptism %d is external; download its uploaded certificate instead", baptismID)
	}

	parish, diocese := uc.ancestry(ctx, b.ParishID)
	pdf, err := uc.renderer.BaptismCertificate(b, parish, diocese)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "render baptism certificate")
	}
	return pdf, nil
}

// ExternalBaptismCertificate retrieves the uploaded certificate file for an
// external baptism.
func (uc *CertificateUsecase) ExternalBaptismCertificate(ctx context.Context, baptismID int64) ([]byte, string, error) {
	b, err := uc.baptisms.GetBaptism(ctx, baptismID)
	if err != nil {
		return nil, "", err
	}
	if b.CertificatePath == "" {
		return nil, "", domain.NotFoundError{Resource: "baptism certificate"}
	}
	return uc.blobs.Get(ctx, b.CertificatePath)
}

// RenderCommunion generates the communion certificate PDF. External
// communions serve their uploaded file instead.
func (uc *CertificateUsecase) RenderCommunion(ctx context.Context, communionID int64) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Certificate.Usecase.RenderCommunion")
	defer span.End()

	c, err := uc.communions.GetCommunion(ctx, communionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if c.Source == domain.SourceExternal {
		return nil, domain.Invalid("communion %d is external; download its uploaded certificate instead", communionID)
	}

	b, err := uc.baptisms.GetBaptism(ctx, c.BaptismID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		return nil, err
	}

	parish, diocese := uc.ancestry(ctx, b.ParishID)
	pdf, err := uc.renderer.CommunionCertificate(c, b, parish, diocese)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "render communion certificate")
	}
	return pdf, nil
}

// CommunionCertificate retrieves the uploaded certificate file for an
// external communion.
func (uc *CertificateUsecase) CommunionCertificate(ctx context.Context, communionID int64) ([]byte, string, error) {
	c, err := uc.communions.GetCommunion(ctx, communionID)
	if err != nil {
		return nil, "", err
	}
	if c.CommunionCertificatePath == "" {
		return nil, "", domain.NotFoundError{Resource: "communion certificate"}
	}
	return uc.blobs.Get(ctx, c.CommunionCertificatePath)
}

// EmailBaptismCertificate renders the certificate and sends it as a PDF
// attachment. Configuration is checked before the address so operators see
// the setup problem first.
func (uc *CertificateUsecase) EmailBaptismCertificate(ctx context.Context, baptismID int64, to string) error {
	ctx, span := tracer.Start(ctx, "Certificate.Usecase.EmailBaptismCertificate")
	defer span.End()

	if !uc.mailer.Configured() {
		return domain.UnavailableError{Message: "Email is not configured. Set RESEND_API_KEY."}
	}
	if !sacristy.IsEmailAddress(to) {
		return domain.Invalid("a valid email address is required")
	}

	pdf, err := uc.RenderBaptism(ctx, baptismID)
	if err != nil {
		span.RecordError(err)
		return err
	}

	filename := fmt.Sprintf("baptism-certificate-%d.pdf", baptismID)
	if err := uc.mailer.SendCertificate(ctx, to, "Baptism Certificate", filename, pdf); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "send baptism certificate")
	}
	return nil
}

// ancestry resolves parish and diocese for certificate headings. Missing rows
// come back zero-valued so a certificate can still render.
func (uc *CertificateUsecase) ancestry(ctx context.Context, parishID int64) (domain.Parish, domain.Diocese) {
	var parish domain.Parish
	var diocese domain.Diocese
	if p, err := uc.registry.GetParish(ctx, parishID); err == nil {
		parish = p
		if d, err := uc.registry.GetDiocese(ctx, p.DioceseID); err == nil {
			diocese = d
		}
	}
	return parish, diocese
}
