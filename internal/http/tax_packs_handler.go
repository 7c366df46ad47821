package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/i18n"
	"github.com/guttosm/payroll-service/internal/middleware"
	"github.com/guttosm/payroll-service/internal/service"
	"github.com/samber/lo"
)

// DefaultHistoryLimit caps tax pack history when no limit is given.
const DefaultHistoryLimit = 20

// TaxPacksHandler provides HTTP handlers for tax pack routes.
type TaxPacksHandler struct {
	packs service.TaxPackService
	audit middleware.LogSink
}

// NewTaxPacksHandler creates a new TaxPacksHandler instance.
func NewTaxPacksHandler(packs service.TaxPackService, audit middleware.LogSink) *TaxPacksHandler {
	return &TaxPacksHandler{packs: packs, audit: audit}
}

func countryParam(c *gin.Context) model.Country {
	return model.Country(strings.ToUpper(c.Param("country")))
}

// GetActiveTaxPack handles GET /api/tax-packs/:country requests.
//
// @Summary      Get the active tax pack
// @Description  Returns the tax pack calculations for the country currently use: the active stored version, or the built-in pack when none is stored.
// @Tags         Tax Packs
// @Produce      json
// @Param        country path string true "ISO country code (NA, ZA)"
// @Success      200 {object} dto.SuccessResponse{data=dto.TaxPackResponse} "Active tax pack"
// @Failure      400 {object} dto.ErrorResponse "Unsupported country"
// @Failure      404 {object} dto.ErrorResponse "No tax pack"
// @Security     ApiKeyAuth
// @Router       /api/tax-packs/{country} [get]
func (h *TaxPacksHandler) GetActiveTaxPack(c *gin.Context) {
	pack, err := h.packs.GetActive(c.Request.Context(), countryParam(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewTaxPackResponse(pack))
}

// UpdateTaxPack handles PUT /api/tax-packs/:country requests.
//
// @Summary      Activate a new tax pack
// @Description  Validates the pack and stores it as the new active version for the country. The previous version stays in the history.
// @Tags         Tax Packs
// @Accept       json
// @Produce      json
// @Param        country path string true "ISO country code (NA, ZA)"
// @Param        request body dto.TaxPackRequest true "Tax pack"
// @Success      200 {object} dto.SuccessResponse{data=dto.TaxPackResponse} "Stored version"
// @Failure      400 {object} dto.ErrorResponse "Invalid tax pack"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Tax pack storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/tax-packs/{country} [put]
func (h *TaxPacksHandler) UpdateTaxPack(c *gin.Context) {
	builder := NewResponseBuilder(c)
	country := countryParam(c)

	req, err := BuildRequest[dto.TaxPackRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	pack, err := req.ToModel(country)
	if err != nil {
		taxPackError(c, err)
		return
	}

	version, err := h.packs.Create(c.Request.Context(), pack, middleware.GetActor(c))
	event := middleware.AuditEvent{
		Action:  model.ActionUpdateTaxPack,
		Country: country,
		Message: "Tax pack activated",
		Fields:  map[string]interface{}{"period": pack.Period().String()},
		Err:     err,
	}
	if err != nil {
		event.Message = "Tax pack rejected"
	} else {
		event.Fields["version"] = version.Version
	}
	middleware.AuditLog(h.audit, c, event)

	if err != nil {
		taxPackError(c, err)
		return
	}
	builder.SuccessOK(dto.NewTaxPackVersionResponse(*version))
}

// taxPackError attaches err, reporting input errors as an invalid pack.
func taxPackError(c *gin.Context, err error) {
	ginErr := c.Error(err)
	if _, invalid := lo.ErrorsAs[*model.InvalidInputError](err); invalid {
		ginErr.SetMeta(i18n.ErrKeyInvalidTaxPack)
	}
}

// ListTaxPacks handles GET /api/tax-packs/:country/history requests.
//
// @Summary      List tax pack versions
// @Description  Returns the stored versions of the country's tax pack, newest first.
// @Tags         Tax Packs
// @Produce      json
// @Param        country path string true "ISO country code (NA, ZA)"
// @Param        limit query int false "Maximum versions to return" default(20)
// @Success      200 {object} dto.SuccessResponse{data=[]dto.TaxPackResponse} "Versions"
// @Failure      400 {object} dto.ErrorResponse "Unsupported country"
// @Failure      503 {object} dto.ErrorResponse "Tax pack storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/tax-packs/{country}/history [get]
func (h *TaxPacksHandler) ListTaxPacks(c *gin.Context) {
	limit := queryInt(c, "limit", DefaultHistoryLimit)

	versions, err := h.packs.List(c.Request.Context(), countryParam(c), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	NewResponseBuilder(c).SuccessOK(lo.Map(versions, func(v model.TaxPackVersion, _ int) dto.TaxPackResponse {
		return dto.NewTaxPackVersionResponse(v)
	}))
}

// queryInt reads a positive integer query parameter, or def.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
