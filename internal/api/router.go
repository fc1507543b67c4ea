package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"platformone/internal/model"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *AuthHandler,
	eventHandler *EventHandler,
	confirmationHandler *ConfirmationHandler,
	reminderHandler *ReminderHandler,
	jwtSecret string,
) *Router {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/login", authHandler.Login)
	r.GET("/events", eventHandler.ListEvents)
	r.GET("/confirm/:token", confirmationHandler.GetConfirmation)
	r.POST("/confirm/:token", confirmationHandler.Respond)

	// Staff console
	staff := r.Group("/")
	staff.Use(AuthMiddleware(jwtSecret), RequireRole(model.RoleStaff))
	{
		staff.POST("/reminders", reminderHandler.SendReminders)
		staff.GET("/reminders", reminderHandler.GetAttendees)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
