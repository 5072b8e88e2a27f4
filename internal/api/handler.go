package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/volumepulse/internal/domain/dto"
	"github.com/guttosm/volumepulse/internal/service"
	"github.com/guttosm/volumepulse/internal/source"
)

// Handler provides HTTP handlers for volume aggregation endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate acquisition and aggregation to the service layer
//   - Map domain failures to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc         service.VolumeService
	defaultLive bool
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.VolumeService): service used to compute volumes.
//   - defaultLive (bool): source used when the request has no "live" parameter.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.VolumeService, defaultLive bool) *Handler {
	return &Handler{svc: svc, defaultLive: defaultLive}
}

// GetVolume handles GET /api/v1/volume requests.
//
// Query Parameters:
//   - live (bool, optional): true fetches the live feed, false reads the fixture.
//
// Responses:
//   - 200 OK: object mapping currency code to total volume, keys in ascending order.
//   - 400 Bad Request: invalid "live" parameter.
//   - 502 Bad Gateway: live feed unreachable or returned malformed data.
//   - 500 Internal Server Error: fixture unreadable or persistence failure.
//
// GetVolume godoc
// @Summary      Get traded volume by currency
// @Description  Sums the positive volume of every market grouped by currency, sorted by currency code
// @Tags         volume
// @Produce      json
// @Param        live  query     bool  false  "Use the live feed instead of the fixture"  example(true)
// @Success      200   {object}  map[string]number  "Volume by currency"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Failure      502   {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /api/v1/volume [get]
func (h *Handler) GetVolume(c *gin.Context) {
	// ─── Parse optional "live" param ──────────────────────────
	live := h.defaultLive
	if s := strings.TrimSpace(c.Query("live")); s != "" {
		parsed, err := strconv.ParseBool(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid live parameter, expected true or false", err))
			return
		}
		live = parsed
	}

	// ─── Aggregate (with request context) ─────────────────────
	snap, err := h.svc.GetVolumeByCurrency(c.Request.Context(), live)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, dto.NewErrorResponse(msg, err))
		return
	}

	body, err := snap.Volumes.MarshalJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to encode volume", err))
		return
	}

	c.Header("X-Markets-Source", snap.Source)
	c.Header("X-Markets-Count", strconv.Itoa(snap.Markets))
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetLatestSnapshot handles GET /api/v1/volume/latest requests.
//
// Responses:
//   - 200 OK: the most recently persisted snapshot.
//   - 404 Not Found: no snapshot stored yet.
//   - 503 Service Unavailable: persistence is disabled.
//   - 500 Internal Server Error: repository failure.
//
// GetLatestSnapshot godoc
// @Summary      Get the latest stored snapshot
// @Description  Returns the most recent persisted volume aggregation
// @Tags         volume
// @Produce      json
// @Success      200  {object}  dto.SnapshotResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse     "Not Found"
// @Failure      500  {object}  dto.ErrorResponse     "Internal Error"
// @Failure      503  {object}  dto.ErrorResponse     "Persistence disabled"
// @Router       /api/v1/volume/latest [get]
func (h *Handler) GetLatestSnapshot(c *gin.Context) {
	snap, err := h.svc.LatestSnapshot(c.Request.Context())
	if errors.Is(err, service.ErrSnapshotsDisabled) {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("snapshots are not enabled", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch latest snapshot", err))
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no snapshot found", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewSnapshotResponse(snap))
}

// statusFor maps an aggregation failure to an HTTP status and message.
func statusFor(err error) (int, string) {
	var fe *source.FixtureError
	switch {
	case errors.As(err, &fe):
		return http.StatusInternalServerError, "failed to read fixture"
	case errors.Is(err, source.ErrMalformedRecord):
		return http.StatusBadGateway, "market data could not be parsed"
	case errors.Is(err, source.ErrAcquisitionFailed):
		return http.StatusBadGateway, "data acquisition failed"
	default:
		return http.StatusInternalServerError, "failed to aggregate volume"
	}
}
