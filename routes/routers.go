package routes

import (
	"net/http"

	"orionhotel/constants"
	"orionhotel/controllers"
	_ "orionhotel/docs"
	"orionhotel/middleware"
	"orionhotel/response"
	"orionhotel/services"
	"orionhotel/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies gom các service mà router cần
type Dependencies struct {
	Tokens        *services.TokenService
	Staff         *services.StaffService
	Rooms         *services.RoomService
	Guests        *services.GuestService
	Booking       *services.BookingService
	Billing       *services.BillingService
	Housekeeping  *services.HousekeepingService
	Inventory     *services.InventoryService
	Notifications *services.NotificationService
	Settings      *services.SettingsService
	Backups       *services.BackupService
	Analytics     *services.AnalyticsService
	Melody        *melody.Melody
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.SessionMiddleware(), middleware.ErrorHandler())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Melody != nil {
		router.GET("/ws", websocketHandler(deps.Tokens, deps.Melody))
	}

	authController := controllers.NewAuthController(deps.Staff)
	staffController := controllers.NewStaffController(deps.Staff)
	roomController := controllers.NewRoomController(deps.Rooms)
	guestController := controllers.NewGuestController(deps.Guests)
	bookingController := controllers.NewBookingController(deps.Booking)
	billingController := controllers.NewBillingController(deps.Billing)
	housekeepingController := controllers.NewHousekeepingController(deps.Housekeeping)
	inventoryController := controllers.NewInventoryController(deps.Inventory)
	notificationController := controllers.NewNotificationController(deps.Notifications)
	settingsController := controllers.NewSettingsController(deps.Settings, deps.Backups)
	reportController := controllers.NewReportController(deps.Analytics)

	auth := func(roles ...string) gin.HandlerFunc {
		return middleware.AuthMiddleware(deps.Tokens, roles...)
	}
	const (
		admin        = constants.RoleAdmin
		manager      = constants.RoleManager
		receptionist = constants.RoleReceptionist
		housekeeping = constants.RoleHousekeeping
		accountant   = constants.RoleAccountant
	)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/google", authController.GoogleLogin)
	v1.DELETE("/auth/logout", auth(), authController.Logout)
	v1.GET("/profile", auth(), authController.Profile)
	v1.PUT("/profile/password", auth(), authController.ChangePassword)

	staff := v1.Group("/staff", auth(admin))
	staff.GET("", staffController.GetStaff)
	staff.POST("", staffController.CreateStaff)
	staff.GET("/roles", staffController.RoleCounts)
	staff.GET("/:id", staffController.GetStaffDetail)
	staff.PUT("/:id", staffController.UpdateStaff)
	staff.DELETE("/:id", staffController.DeactivateStaff)

	rooms := v1.Group("/rooms", auth())
	rooms.GET("", roomController.GetRooms)
	rooms.GET("/available", roomController.GetAvailableRooms)
	rooms.GET("/status", roomController.StatusCounts)
	rooms.GET("/:number", roomController.GetRoom)
	rooms.POST("", auth(manager), roomController.CreateRoom)
	rooms.PUT("/:number", auth(manager), roomController.UpdateRoom)
	rooms.PUT("/:number/status", auth(manager, receptionist, housekeeping), roomController.ChangeStatus)

	guests := v1.Group("/guests", auth(manager, receptionist, accountant))
	guests.GET("", guestController.GetGuests)
	guests.GET("/suggest", guestController.SuggestGuests)
	guests.POST("", guestController.RegisterGuest)
	guests.GET("/:id", guestController.GetGuest)
	guests.PUT("/:id", guestController.UpdateGuest)
	guests.POST("/:id/check-in", guestController.CheckIn)
	guests.POST("/:id/check-out", guestController.CheckOut)
	guests.GET("/:id/bill", billingController.GetGuestBill)
	guests.POST("/:id/bill", billingController.GenerateBill)
	guests.POST("/:id/bill/charges", billingController.AddServiceCharge)
	guests.POST("/:id/bill/discount", auth(manager, accountant), billingController.ApplyDiscount)
	guests.POST("/:id/bill/payments", billingController.ProcessPayment)

	reservations := v1.Group("/reservations", auth(manager, receptionist))
	reservations.GET("", bookingController.GetReservations)
	reservations.GET("/upcoming", bookingController.GetUpcoming)
	reservations.GET("/cancelled", bookingController.GetCancelled)
	reservations.GET("/availability", bookingController.Availability)
	reservations.POST("", bookingController.CreateReservation)
	reservations.GET("/:id", bookingController.GetReservation)
	reservations.PUT("/:id", bookingController.ModifyReservation)
	reservations.PUT("/:id/room", bookingController.AssignRoom)
	reservations.POST("/:id/confirm", bookingController.Confirm)
	reservations.POST("/:id/cancel", bookingController.Cancel)
	reservations.POST("/:id/check-in", bookingController.CheckIn)

	bills := v1.Group("/bills", auth(manager, accountant, receptionist))
	bills.GET("", billingController.GetBills)
	bills.GET("/outstanding", billingController.GetOutstanding)
	bills.GET("/:id", billingController.GetBill)

	revenue := v1.Group("/revenue", auth(manager, accountant))
	revenue.GET("/daily", billingController.DailyRevenue)
	revenue.GET("/monthly", billingController.MonthlyRevenue)

	tasks := v1.Group("/housekeeping/tasks", auth(manager, housekeeping))
	tasks.GET("", housekeepingController.GetTasks)
	tasks.POST("", housekeepingController.CreateTask)
	tasks.PUT("/:id/assign", housekeepingController.AssignTask)
	tasks.PUT("/:id/status", housekeepingController.UpdateTaskStatus)

	maintenance := v1.Group("/maintenance", auth())
	maintenance.GET("", housekeepingController.GetMaintenance)
	maintenance.POST("", housekeepingController.CreateMaintenance)
	maintenance.PUT("/:id/assign", auth(manager), housekeepingController.AssignTechnician)
	maintenance.POST("/:id/complete", auth(manager, housekeeping), housekeepingController.CompleteMaintenance)

	inventory := v1.Group("/inventory", auth(manager, housekeeping))
	inventory.GET("", inventoryController.GetItems)
	inventory.GET("/low-stock", inventoryController.GetLowStock)
	inventory.GET("/consumption", inventoryController.GetConsumption)
	inventory.GET("/restocks", inventoryController.GetRestocks)
	inventory.GET("/most-used", inventoryController.GetMostUsed)
	inventory.POST("", auth(manager), inventoryController.CreateItem)
	inventory.GET("/:id", inventoryController.GetItem)
	inventory.PUT("/:id", auth(manager), inventoryController.UpdateItem)
	inventory.POST("/:id/consume", inventoryController.Consume)
	inventory.POST("/:id/restock", auth(manager), inventoryController.Restock)

	notifications := v1.Group("/notifications", auth())
	notifications.GET("", notificationController.GetNotifications)
	notifications.POST("", auth(manager), notificationController.SendNotification)
	notifications.PUT("/read", notificationController.MarkAllAsRead)
	notifications.PUT("/:id/read", notificationController.MarkAsRead)
	notifications.DELETE("", notificationController.ClearAll)

	settings := v1.Group("/settings", auth(admin))
	settings.GET("", settingsController.GetSettings)
	settings.PUT("", settingsController.UpdateSettings)
	settings.GET("/backups", settingsController.GetBackups)
	settings.POST("/backups", settingsController.CreateBackup)
	settings.POST("/backups/restore", settingsController.RestoreBackup)

	reports := v1.Group("/reports", auth(manager, accountant))
	reports.GET("/overview", reportController.GetOverview)
	reports.GET("/revenue", reportController.GetRevenueTrend)
	reports.GET("/inventory", reportController.GetInventoryUsage)
	reports.GET("/export", reportController.Export)
}

// websocketHandler xác thực token trên query rồi gắn role vào melody session
func websocketHandler(tokens *services.TokenService, m *melody.Melody) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Parse(c.Request.Context(), c.Query("token"))
		if err != nil {
			response.FromError(c, err)
			return
		}
		keys := map[string]interface{}{
			notification.SessionRoleKey:  claims.UserInfo.Role,
			notification.SessionStaffKey: claims.UserInfo.UserId,
		}
		if err := m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
			c.Error(err)
		}
	}
}
