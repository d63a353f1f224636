package rest

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
	"github.com/openparish/sacristy/internal/present/rest/presenter"
	"github.com/openparish/sacristy/internal/service"
	"github.com/openparish/sacristy/internal/usecase"
)

type Handler struct {
	auth          *service.AuthService
	registry      *usecase.RegistryUsecase
	baptisms      *usecase.BaptismUsecase
	communions    *usecase.CommunionUsecase
	confirmations *usecase.ConfirmationUsecase
	marriages     *usecase.MarriageUsecase
	holyOrders    *usecase.HolyOrderUsecase
	certificates  *usecase.CertificateUsecase
}

func NewHandler(
	auth *service.AuthService,
	registry *usecase.RegistryUsecase,
	baptisms *usecase.BaptismUsecase,
	communions *usecase.CommunionUsecase,
	confirmations *usecase.ConfirmationUsecase,
	marriages *usecase.MarriageUsecase,
	holyOrders *usecase.HolyOrderUsecase,
	certificates *usecase.CertificateUsecase,
) *Handler {
	return &Handler{
		auth:          auth,
		registry:      registry,
		baptisms:      baptisms,
		communions:    communions,
		confirmations: confirmations,
		marriages:     marriages,
		holyOrders:    holyOrders,
		certificates:  certificates,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/api/auth/login", h.handleLogin)
	e.POST("/api/auth/refresh", h.handleRefresh)
	e.GET("/api/health", h.handleHealth)

	e.GET("/api/dioceses", h.handleListDioceses)
	e.POST("/api/dioceses", h.handleCreateDiocese)
	e.GET("/api/dioceses/:id/parishes", h.handleListParishes)
	e.POST("/api/dioceses/:id/parishes", h.handleCreateParish)

	e.GET("/api/parishes/:parishId/baptisms", h.handleListBaptisms)
	e.POST("/api/parishes/:parishId/baptisms", h.handleCreateBaptism)
	e.POST("/api/baptisms", h.handleCreateExternalBaptism)
	e.GET("/api/baptisms/:id", h.handleGetBaptism)
	e.PATCH("/api/baptisms/:id", h.handleUpdateBaptismNote)
	e.GET("/api/baptisms/:id/notes", h.handleBaptismNotes)
	e.GET("/api/baptisms/:id/certificate-data", h.handleBaptismCertificateData)
	e.GET("/api/baptisms/:id/certificate", h.handleBaptismCertificate)
	e.GET("/api/baptisms/:id/external-certificate", h.handleExternalBaptismCertificate)
	e.POST("/api/baptisms/:id/email-certificate", h.handleEmailBaptismCertificate)

	e.GET("/api/parishes/:parishId/communions", h.handleListCommunions)
	e.GET("/api/communions/:id", h.handleGetCommunion)
	e.POST("/api/communions", h.handleCreateCommunion)
	e.GET("/api/communions/:id/certificate", h.handleCommunionGeneratedCertificate)
	e.GET("/api/communions/:id/communion-certificate", h.handleCommunionUploadedCertificate)

	e.GET("/api/parishes/:parishId/confirmations", h.handleListConfirmations)
	e.GET("/api/confirmations/:id", h.handleGetConfirmation)
	e.POST("/api/confirmations", h.handleCreateConfirmation)

	e.GET("/api/parishes/:parishId/marriages", h.handleListMarriages)
	e.GET("/api/marriages/:id", h.handleGetMarriage)
	e.POST("/api/marriages", h.handleCreateMarriage)
	e.POST("/api/parishes/:parishId/marriages/upload-certificate", h.handleUploadMarriageCertificate)

	e.GET("/api/holy-orders", h.handleListHolyOrders)
	e.GET("/api/holy-orders/:id", h.handleGetHolyOrder)
	e.POST("/api/holy-orders", h.handleCreateHolyOrder)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"ok": true})
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req sacristy.LoginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	identity, pair, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, sacristy.LoginResponse{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
		Username:     identity.Username,
		DisplayName:  identity.DisplayName,
		Role:         identity.Role,
	})
}

func (h *Handler) handleRefresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req sacristy.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	identity, pair, err := h.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, sacristy.LoginResponse{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
		Username:     identity.Username,
		DisplayName:  identity.DisplayName,
		Role:         identity.Role,
	})
}

func (h *Handler) handleListDioceses(c echo.Context) error {
	dioceses, err := h.registry.ListDioceses(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, dioceses)
}

func (h *Handler) handleCreateDiocese(c echo.Context) error {
	var req sacristy.CreateDioceseRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	diocese, err := h.registry.CreateDiocese(c.Request().Context(), req.Name)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, diocese)
}

func (h *Handler) handleListParishes(c echo.Context) error {
	dioceseID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	parishes, err := h.registry.ListParishes(c.Request().Context(), dioceseID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, parishes)
}

func (h *Handler) handleCreateParish(c echo.Context) error {
	dioceseID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	var req sacristy.CreateParishRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	parish, err := h.registry.CreateParish(c.Request().Context(), dioceseID, req.ParishName, req.Description)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, parish)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domain.Invalid("invalid %s parameter", name)
	}
	return id, nil
}

func formID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.FormValue(name), 10, 64)
	if err != nil {
		return 0, domain.Invalid("invalid %s field", name)
	}
	return id, nil
}

// formUpload reads one uploaded file from a multipart form. A missing file is
// returned as a zero Upload; the usecases decide whether it was required.
func formUpload(c echo.Context, field string) (usecase.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return usecase.Upload{}, nil
	}
	return readUpload(fh)
}

func readUpload(fh *multipart.FileHeader) (usecase.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.Upload{}, err
	}
	defer f.Close()

	// one byte past the ceiling so the usecase can reject oversize uploads
	data, err := io.ReadAll(io.LimitReader(f, domain.MaxCertificateSize+1))
	if err != nil {
		return usecase.Upload{}, err
	}

	return usecase.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
