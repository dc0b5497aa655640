package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/cache"
	"github.com/BruksfildServices01/salon-backoffice/internal/config"
	apDomain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	catalogDomain "github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	clientDomain "github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	productDomain "github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/handlers"
	"github.com/BruksfildServices01/salon-backoffice/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/salon-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/storage"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-backoffice/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/salon-backoffice/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/salon-backoffice/internal/usecase/client"
	ucProduct "github.com/BruksfildServices01/salon-backoffice/internal/usecase/product"
)

// Stores is one backend: every repository the use cases need.
type Stores struct {
	Clients      clientDomain.Repository
	Services     catalogDomain.Repository
	Appointments apDomain.Repository
	References   apDomain.References
	Products     productDomain.Repository
	AuditLogs    audit.Store
}

func GormStores(db *gorm.DB) Stores {
	appointments := infraRepo.NewAppointmentGormRepository(db)
	return Stores{
		Clients:      infraRepo.NewClientGormRepository(db),
		Services:     infraRepo.NewServiceGormRepository(db),
		Appointments: appointments,
		References:   appointments,
		Products:     infraRepo.NewProductGormRepository(db),
		AuditLogs:    infraRepo.NewAuditGormRepository(db),
	}
}

func MemoryStores(s *memory.Store) Stores {
	appointments := s.Appointments()
	return Stores{
		Clients:      s.Clients(),
		Services:     s.Services(),
		Appointments: appointments,
		References:   appointments,
		Products:     s.Products(),
		AuditLogs:    s.AuditLogs(),
	}
}

type Deps struct {
	Config   *config.Config
	Stores   Stores
	Clock    timezone.Clock
	Cache    cache.Cache
	Audit    audit.Recorder
	Uploader storage.Uploader
	Checks   map[string]handlers.Check
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins()),
	)
	r.SetHTMLTemplate(handlers.Templates())

	st := d.Stores
	loc := d.Clock.Location()

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentUC := handlers.AppointmentUseCases{
		Create:   ucAppointment.NewCreateAppointment(st.Appointments, st.References, d.Clock, d.Audit),
		Update:   ucAppointment.NewUpdateAppointment(st.Appointments, d.Clock, d.Audit),
		Complete: ucAppointment.NewCompleteAppointment(st.Appointments, d.Audit),
		Confirm:  ucAppointment.NewConfirmAppointment(st.Appointments, d.Audit),
		Cancel:   ucAppointment.NewCancelAppointment(st.Appointments, d.Audit),
		Delete:   ucAppointment.NewDeleteAppointment(st.Appointments, d.Audit),
		Query:    ucAppointment.NewListAppointments(st.Appointments, d.Clock),
	}

	clientUC := handlers.ClientUseCases{
		Create: ucClient.NewCreateClient(st.Clients, d.Clock, d.Audit),
		Update: ucClient.NewUpdateClient(st.Clients, d.Clock, d.Audit),
		Delete: ucClient.NewDeleteClient(st.Clients, d.Audit),
		Query:  ucClient.NewQueryClients(st.Clients),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC, loc)
	clientHandler := handlers.NewClientHandler(clientUC, loc)
	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewManageServices(st.Services, d.Cache, d.Audit),
		ucCatalog.NewQueryServices(st.Services, d.Cache),
	)
	productHandler := handlers.NewProductHandler(
		ucProduct.NewManageProducts(st.Products, d.Clock, d.Audit),
		ucProduct.NewQueryProducts(st.Products, d.Config.LowStockThreshold),
		ucProduct.NewUploadImage(st.Products, d.Uploader, d.Audit),
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(st.AuditLogs), loc)
	appWebHandler := handlers.NewAppWebHandler(appointmentUC.Query, d.Clock)
	healthHandler := handlers.NewHealthHandler(d.Checks)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/web/agenda", appWebHandler.Agenda)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		citas := api.Group("/CitasApi")
		{
			citas.GET("", appointmentHandler.List)
			citas.GET("/hoy", appointmentHandler.Today)
			citas.GET("/:id", appointmentHandler.Get)
			citas.POST("", appointmentHandler.Create)
			citas.PUT("/:id", appointmentHandler.Update)
			citas.PUT("/:id/completar", appointmentHandler.Complete)
			citas.PUT("/:id/confirmar", appointmentHandler.Confirm)
			citas.PUT("/:id/cancelar", appointmentHandler.Cancel)
			citas.DELETE("/:id", appointmentHandler.Delete)
		}

		clientes := api.Group("/ClientesApi")
		{
			clientes.GET("", clientHandler.List)
			clientes.GET("/buscar", clientHandler.Search)
			clientes.GET("/:id", clientHandler.Get)
			clientes.POST("", clientHandler.Create)
			clientes.PUT("/:id", clientHandler.Update)
			clientes.DELETE("/:id", clientHandler.Delete)
		}

		servicios := api.Group("/ServiciosApi")
		{
			servicios.GET("", serviceHandler.List)
			servicios.GET("/categoria/:categoria", serviceHandler.ByCategory)
			servicios.GET("/:id", serviceHandler.Get)
			servicios.POST("", serviceHandler.Create)
			servicios.PUT("/:id", serviceHandler.Update)
			servicios.DELETE("/:id", serviceHandler.Delete)
		}

		productos := api.Group("/ProductosApi")
		{
			productos.GET("", productHandler.List)
			productos.GET("/stock-bajo", productHandler.LowStock)
			productos.GET("/:id", productHandler.Get)
			productos.POST("", productHandler.Create)
			productos.PUT("/:id", productHandler.Update)
			productos.PUT("/:id/actualizar-stock", productHandler.AdjustStock)
			productos.POST("/:id/imagen", productHandler.UploadImage)
			productos.DELETE("/:id", productHandler.Delete)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
