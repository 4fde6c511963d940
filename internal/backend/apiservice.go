package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/campusweb/school-images-backend/internal/core"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultListLimit = 12

type APIService struct {
	coreService *core.CoreService
}

func NewAPIService(coreService *core.CoreService) *APIService {
	return &APIService{
		coreService: coreService,
	}
}

func (service *APIService) SetRoutes(e *echo.Echo) {
	e.GET("/", service.rootHandler)
	e.GET("/api/hello", service.helloHandler)
	e.GET("/api/school-images", service.listSchoolImagesHandler)
	e.POST("/api/school-images", service.createSchoolImageHandler)
	e.GET("/test", service.statusHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

type messageResponse struct {
	Message string `json:"message"`
}

type listImagesResponse struct {
	Images []core.Image `json:"images"`
}

type createImageRequest struct {
	URL      string   `json:"url" validate:"required,url"`
	Title    *string  `json:"title"`
	Tags     []string `json:"tags"`
	Approved *bool    `json:"approved"`
}

type createImageResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (service *APIService) rootHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, messageResponse{Message: "Hello from FastAPI Backend!"})
}

func (service *APIService) helloHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, messageResponse{Message: "Hello from the backend API!"})
}

// listSchoolImagesHandler returns approved images from the store, falling
// back to placeholders when none exist. There is no upper bound on limit;
// callers get exactly what they ask for.
func (service *APIService) listSchoolImagesHandler(ctx echo.Context) error {
	limit := defaultListLimit
	if limitParam := ctx.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("invalid limit %q: value must be an integer", limitParam))
		}
		limit = parsed
	}

	images, err := service.coreService.ListImages(ctx.Request().Context(), limit)
	if err != nil {
		imageListTotal.WithLabelValues(statusError).Inc()
		slog.Error("listSchoolImagesHandler: failed to list school images",
			"status", http.StatusInternalServerError, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	imageListTotal.WithLabelValues(statusOK).Inc()
	return ctx.JSON(http.StatusOK, listImagesResponse{Images: images})
}

func (service *APIService) createSchoolImageHandler(ctx echo.Context) error {
	request := new(createImageRequest)
	if err := ctx.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("received invalid request body: %v", err))
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	// New records are approved by default and immediately visible to the
	// listing operation.
	approved := true
	if request.Approved != nil {
		approved = *request.Approved
	}

	id, err := service.coreService.AddImage(ctx.Request().Context(), core.NewImage{
		URL:      request.URL,
		Title:    request.Title,
		Tags:     request.Tags,
		Approved: approved,
	})
	if errors.Is(err, core.ErrStoreUnavailable) {
		imageCreateTotal.WithLabelValues(statusUnavailable).Inc()
		slog.Warn("createSchoolImageHandler: no document store configured",
			"status", http.StatusServiceUnavailable)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Database not available")
	}
	if err != nil {
		imageCreateTotal.WithLabelValues(statusError).Inc()
		slog.Error("createSchoolImageHandler: failed to insert school image",
			"status", http.StatusInternalServerError, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	imageCreateTotal.WithLabelValues(statusOK).Inc()
	return ctx.JSON(http.StatusOK, createImageResponse{ID: id})
}

// statusHandler is purely observational: probe failures degrade the status
// strings but the endpoint itself always answers 200.
func (service *APIService) statusHandler(ctx echo.Context) error {
	response := statusResponse{
		Backend:          "✅ Running",
		ConnectionStatus: "Not Connected",
	}

	storeStatus := service.coreService.StoreStatus(ctx.Request().Context())
	response.Database = storeStatus.Status
	response.Collections = storeStatus.Collections
	if storeStatus.Connected {
		response.ConnectionStatus = "Connected"
	}

	response.DatabaseURL = envPresence("DATABASE_URL")
	response.DatabaseName = envPresence("DATABASE_NAME")

	return ctx.JSON(http.StatusOK, response)
}

// envPresence reports whether a variable is set without revealing its value.
func envPresence(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
