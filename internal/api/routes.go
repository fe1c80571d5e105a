package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts every console screen on the router. Public routes sit
// at the top level; everything behind the login guard lives under the
// authenticated group.
func SetupRoutes(router *gin.Engine, handler *Handler, allowedOrigins []string) {
	router.Use(handler.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", handler.Home)
	router.GET("/healthz", handler.Healthz)

	router.GET("/login", handler.RedirectAuthenticated(), handler.LoginScreen)
	router.POST("/login", handler.Login)
	router.POST("/signup", handler.SignUp)
	router.POST("/logout", handler.Logout)

	// The signing flow is reached from an emailed link; no session exists.
	router.GET("/sign-lease", handler.SignLeaseScreen)
	router.POST("/sign-lease", handler.SignLease)

	// Marketing-page passthroughs
	router.POST("/contact-us", handler.ContactUs)
	router.POST("/book-demo", handler.BookDemo)
	router.POST("/quote", handler.SubscriptionQuote)

	auth := router.Group("/", handler.RequireAuth())
	{
		auth.GET("/dashboard", handler.Dashboard)
		auth.GET("/profile", handler.Profile)
		auth.PATCH("/profile", handler.UpdateProfile)
		auth.POST("/change-password", handler.ChangePassword)

		auth.GET("/properties", handler.ListProperties)
		auth.POST("/properties", handler.CreateProperty)
		auth.GET("/properties/:id", handler.GetProperty)
		auth.PUT("/properties/:id", handler.UpdateProperty)
		auth.DELETE("/properties/:id", handler.DeleteProperty)
		auth.GET("/properties/:id/units", handler.PropertyUnits)

		auth.GET("/units", handler.ListUnits)
		auth.GET("/units/by-type", handler.UnitsByType)
		auth.POST("/units", handler.CreateUnit)
		auth.GET("/units/:id", handler.GetUnit)
		auth.PUT("/units/:id", handler.UpdateUnit)
		auth.PATCH("/units/:id/status", handler.UpdateUnitStatus)
		auth.DELETE("/units/:id", handler.DeleteUnit)
		auth.POST("/units/:id/pay-rent", handler.PayRent)
		auth.POST("/units/:id/request-rent", handler.RequestRent)

		auth.GET("/tenants", handler.ListTenants)
		auth.POST("/tenants", handler.CreateTenant)
		auth.GET("/tenants/:id", handler.GetTenant)
		auth.PUT("/tenants/:id", handler.UpdateTenant)
		auth.DELETE("/tenants/:id", handler.DeleteTenant)

		auth.GET("/leases", handler.ListLeases)
		auth.POST("/leases", handler.CreateLease)
		auth.GET("/leases/:id", handler.GetLease)
		auth.PUT("/leases/:id", handler.UpdateLease)
		auth.DELETE("/leases/:id", handler.DeleteLease)
		auth.POST("/leases/:id/terminate", handler.TerminateLease)
		auth.POST("/leases/:id/transfer", handler.TransferLease)
		auth.GET("/leases/:id/pdf", handler.DownloadLeasePDF)

		auth.GET("/maintenance", handler.ListMaintenanceRequests)
		auth.POST("/maintenance", handler.CreateMaintenanceRequest)
		auth.GET("/maintenance/:id", handler.GetMaintenanceRequest)
		auth.PUT("/maintenance/:id", handler.UpdateMaintenanceRequest)
		auth.DELETE("/maintenance/:id", handler.DeleteMaintenanceRequest)
		auth.POST("/maintenance/:id/approve", handler.ApproveMaintenanceRequest)
		auth.POST("/maintenance/:id/reject", handler.RejectMaintenanceRequest)
		auth.POST("/maintenance/:id/complete", handler.CompleteMaintenanceRequest)

		auth.GET("/staff", handler.ListStaff)
		auth.POST("/staff", handler.CreateStaff)
		auth.GET("/staff/:id", handler.GetStaff)
		auth.PUT("/staff/:id", handler.UpdateStaff)
		auth.DELETE("/staff/:id", handler.DeleteStaff)

		auth.POST("/messages/email", handler.EmailTenants)
		auth.GET("/messages/history", handler.CommunicationHistory)

		auth.POST("/payments", handler.RecordPayment)

		auth.GET("/reports/:kind", handler.Report)
		auth.GET("/reports/:kind/export", handler.ExportReport)
	}
}
