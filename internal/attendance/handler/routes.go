package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, attendance *AttendanceHandler, admin *AdminHandler) {
	api := app.Group("/api/v1")

	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)
	api.Get("/me", auth.RequireAuth(), auth.Me)

	att := api.Group("/attendance", auth.RequireAuth())
	att.Post("/check-in", attendance.CheckIn)
	att.Post("/check-out", attendance.CheckOut)
	att.Get("/status", attendance.Status)
	att.Get("/history", attendance.History)

	// Admin-only endpoints
	adm := api.Group("/admin", auth.RequireAuth(), auth.RequireAdmin())
	adm.Get("/users", admin.ListUsers)
	adm.Post("/users", admin.CreateUser)
	adm.Patch("/users/:id/toggle-admin", admin.ToggleAdmin)
	adm.Get("/attendance", admin.Report)
	adm.Get("/attendance/export/csv", admin.ExportCSV)
	adm.Get("/attendance/export/pdf", admin.ExportPDF)
}
