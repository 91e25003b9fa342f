package routes

import (
	"github.com/gofiber/fiber/v2"

	"carpool-backend/internal/controllers"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/repository"
)

// Controllers bundles the authenticated handlers Register wires up; auth
// itself goes through RegisterAuth.
type Controllers struct {
	Carpools      *controllers.CarpoolController
	Requests      *controllers.RequestController
	Payments      *controllers.PaymentController
	Profile       *controllers.ProfileController
	Feedback      *controllers.FeedbackController
	Notifications *controllers.NotificationController
	Chats         *controllers.ChatController
	Preferences   *controllers.PreferencesController
	Verifications *controllers.VerificationController
}

func RegisterHealth(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
}

func RegisterAuth(app *fiber.App, h *controllers.AuthController) {
	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
}

// Register wires every authenticated resource. The auth middleware is
// applied by the caller before this runs.
func Register(app *fiber.App, c Controllers, users *repository.UserRepo) {
	carpools := app.Group("/carpools")
	carpools.Post("/", c.Carpools.Create)
	carpools.Get("/", c.Carpools.List)
	carpools.Get("/mine", c.Carpools.Mine)
	carpools.Get("/:id", c.Carpools.Get)
	carpools.Post("/:id/join", c.Carpools.Join)
	carpools.Delete("/:id", c.Carpools.Cancel)

	requests := app.Group("/requests")
	requests.Get("/", c.Requests.List)
	requests.Patch("/:id", c.Requests.Update)

	payments := app.Group("/payments")
	payments.Post("/", c.Payments.Create)
	payments.Get("/", c.Payments.List)
	payments.Post("/:id/refund", c.Payments.Refund)

	profile := app.Group("/profile")
	profile.Get("/", c.Profile.Get)
	profile.Put("/", c.Profile.Update)
	profile.Put("/avatar", c.Profile.UpdateAvatar)

	ratings := app.Group("/ratings")
	ratings.Post("/", c.Feedback.Submit)
	ratings.Get("/", c.Feedback.List)

	notifications := app.Group("/notifications")
	notifications.Get("/", c.Notifications.List)
	notifications.Patch("/:id/read", c.Notifications.MarkRead)

	chats := app.Group("/chats")
	chats.Post("/", c.Chats.Create)
	chats.Get("/", c.Chats.List)
	chats.Post("/:id/messages", c.Chats.SendMessage)
	chats.Get("/:id/messages", c.Chats.Messages)

	preferences := app.Group("/preferences")
	preferences.Get("/", c.Preferences.Get)
	preferences.Put("/", c.Preferences.Put)

	verifications := app.Group("/verifications")
	verifications.Post("/", c.Verifications.Submit)
	verifications.Get("/", middleware.RequireAdmin(users), c.Verifications.ListPending)
	verifications.Patch("/:id", middleware.RequireAdmin(users), c.Verifications.Review)
}
