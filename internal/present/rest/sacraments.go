package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/present/rest/presenter"
)

func (h *Handler) handleListBaptisms(c echo.Context) error {
	parishID, err := pathID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	baptisms, err := h.baptisms.List(c.Request().Context(), parishID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, baptisms)
}

func (h *Handler) handleCreateBaptism(c echo.Context) error {
	parishID, err := pathID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	var req sacristy.CreateBaptismRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	baptism, err := h.baptisms.Create(c.Request().Context(), parishID, req)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, baptism)
}

// handleCreateExternalBaptism takes a multipart form: the placeholder fields
// plus the certificate file evidencing the baptism.
func (h *Handler) handleCreateExternalBaptism(c echo.Context) error {
	parishID, err := formID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	certificate, err := formUpload(c, "certificate")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	baptism, err := h.baptisms.CreateExternal(c.Request().Context(), parishID, baptismForm(c), certificate)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, baptism)
}

func (h *Handler) handleGetBaptism(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	baptism, err := h.baptisms.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, baptism)
}

func (h *Handler) handleUpdateBaptismNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	var req sacristy.UpdateBaptismRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	baptism, err := h.baptisms.UpdateNote(c.Request().Context(), id, req.Note)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, baptism)
}

func (h *Handler) handleBaptismNotes(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	notes, err := h.baptisms.Notes(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, notes)
}

func (h *Handler) handleBaptismCertificateData(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	data, err := h.baptisms.CertificateData(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, data)
}

func (h *Handler) handleBaptismCertificate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	pdf, err := h.certificates.RenderBaptism(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) handleExternalBaptismCertificate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	data, contentType, err := h.certificates.ExternalBaptismCertificate(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}

func (h *Handler) handleEmailBaptismCertificate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if err := h.certificates.EmailBaptismCertificate(c.Request().Context(), id, req.Email); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "sent"})
}

func (h *Handler) handleListCommunions(c echo.Context) error {
	parishID, err := pathID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	communions, err := h.communions.List(c.Request().Context(), parishID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, communions)
}

func (h *Handler) handleGetCommunion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	communion, err := h.communions.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, communion)
}

// handleCreateCommunion accepts two request shapes: plain JSON linking an
// existing baptism, or a multipart form carrying the external-baptism
// placeholder and its certificate alongside the communion fields.
func (h *Handler) handleCreateCommunion(c echo.Context) error {
	ctx := c.Request().Context()

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		parishID, err := formID(c, "parishId")
		if err != nil {
			return presenter.BadRequest(c, err)
		}

		baptismCertificate, err := formUpload(c, "baptismCertificate")
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		communionCertificate, err := formUpload(c, "communionCertificate")
		if err != nil {
			return presenter.BadRequest(c, err)
		}

		communion, err := h.communions.CreateWithExternalBaptism(
			ctx, parishID, communionForm(c), baptismForm(c), baptismCertificate, communionCertificate,
		)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.Created(c, communion)
	}

	var req sacristy.CreateCommunionRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	communion, err := h.communions.Create(ctx, req)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, communion)
}

func (h *Handler) handleCommunionGeneratedCertificate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	pdf, err := h.certificates.RenderCommunion(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) handleCommunionUploadedCertificate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	data, contentType, err := h.certificates.CommunionCertificate(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}

func (h *Handler) handleListConfirmations(c echo.Context) error {
	parishID, err := pathID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	confirmations, err := h.confirmations.List(c.Request().Context(), parishID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, confirmations)
}

func (h *Handler) handleGetConfirmation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	confirmation, err := h.confirmations.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, confirmation)
}

func (h *Handler) handleCreateConfirmation(c echo.Context) error {
	var req sacristy.CreateConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	confirmation, err := h.confirmations.Create(c.Request().Context(), req)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, confirmation)
}

func (h *Handler) handleListMarriages(c echo.Context) error {
	parishID, err := pathID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	marriages, err := h.marriages.List(c.Request().Context(), parishID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, marriages)
}

func (h *Handler) handleGetMarriage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	marriage, err := h.marriages.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, marriage)
}

func (h *Handler) handleCreateMarriage(c echo.Context) error {
	var req sacristy.CreateMarriageRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	marriage, err := h.marriages.Create(c.Request().Context(), req.ParishID, req)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, marriage)
}

func (h *Handler) handleUploadMarriageCertificate(c echo.Context) error {
	parishID, err := pathID(c, "parishId")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	certificate, err := formUpload(c, "certificate")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	uploaded, err := h.marriages.UploadPartyCertificate(
		c.Request().Context(), parishID, c.FormValue("role"), c.FormValue("kind"), certificate,
	)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, uploaded)
}

func (h *Handler) handleListHolyOrders(c echo.Context) error {
	orders, err := h.holyOrders.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, orders)
}

func (h *Handler) handleGetHolyOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	order, err := h.holyOrders.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, order)
}

func (h *Handler) handleCreateHolyOrder(c echo.Context) error {
	var req sacristy.CreateHolyOrderRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	order, err := h.holyOrders.Create(c.Request().Context(), req)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, order)
}

func baptismForm(c echo.Context) sacristy.CreateBaptismRequest {
	return sacristy.CreateBaptismRequest{
		BaptismName:       c.FormValue("baptismName"),
		OtherNames:        c.FormValue("otherNames"),
		Surname:           c.FormValue("surname"),
		Gender:            c.FormValue("gender"),
		DateOfBirth:       c.FormValue("dateOfBirth"),
		FathersName:       c.FormValue("fathersName"),
		MothersName:       c.FormValue("mothersName"),
		SponsorNames:      c.FormValue("sponsorNames"),
		OfficiatingPriest: c.FormValue("officiatingPriest"),
		Address:           c.FormValue("address"),
		ParishAddress:     c.FormValue("parishAddress"),
		ParentAddress:     c.FormValue("parentAddress"),
	}
}

func communionForm(c echo.Context) sacristy.CreateCommunionRequest {
	return sacristy.CreateCommunionRequest{
		CommunionDate:     c.FormValue("communionDate"),
		OfficiatingPriest: c.FormValue("officiatingPriest"),
		Parish:            c.FormValue("parish"),
	}
}
