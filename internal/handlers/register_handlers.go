package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
	"github.com/savannah-hms/hotel_backoffice/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	exportMiddleware ...gin.HandlerFunc,
) {
	registerCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerReportRoutes(v1, services, exportMiddleware...)
}

// registerCustomValidations adds the sectorfilter rule used by the report
// query DTOs to gin's binding validator.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("sectorfilter", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "all", "rooms", "bar", "restaurant":
			return true
		default:
			return false
		}
	})
}
