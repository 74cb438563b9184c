package handler

import (
	"bytes"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teamtrack/attendance-service/internal/attendance/dto"
	"github.com/teamtrack/attendance-service/internal/attendance/service"
	"github.com/teamtrack/attendance-service/internal/export"
	"github.com/teamtrack/attendance-service/pkg/constant"
)

type AdminHandler struct {
	userService   *service.UserService
	reportService *service.ReportService
}

func NewAdminHandler(userService *service.UserService, reportService *service.ReportService) *AdminHandler {
	return &AdminHandler{
		userService:   userService,
		reportService: reportService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserOutput(&users[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   out,
	})
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var input dto.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(c, "username, email and a password of at least 8 characters are required")
	}

	user, err := h.userService.CreateUser(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AdminHandler) ToggleAdmin(c *fiber.Ctx) error {
	user, err := h.userService.ToggleAdmin(c.UserContext(), CallerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AdminHandler) Report(c *fiber.Ctx) error {
	start, end, userID, err := reportQuery(c, constant.DefaultReportDays)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := h.reportService.Report(c.UserContext(), start, end, userID)
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.ReportRowOutput, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.NewReportRowOutput(row))
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"start_date": start.Format(constant.DateLayout),
		"end_date":   end.Format(constant.DateLayout),
		"attendance": out,
	})
}

func (h *AdminHandler) ExportCSV(c *fiber.Ctx) error {
	start, end, userID, err := reportQuery(c, constant.DefaultExportDays)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := h.reportService.Report(c.UserContext(), start, end, userID)
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(start, end, "csv")+`"`)

	return c.Send(buf.Bytes())
}

func (h *AdminHandler) ExportPDF(c *fiber.Ctx) error {
	start, end, userID, err := reportQuery(c, constant.DefaultExportDays)
	if err != nil {
		return badRequest(c, err.Error())
	}

	title := "Attendance Report for All Users"
	if userID != "" {
		user, err := h.userService.GetByID(c.UserContext(), userID)
		if err != nil {
			return fail(c, err)
		}
		title = "Attendance Report for " + user.Username
	}

	rows, err := h.reportService.Report(c.UserContext(), start, end, userID)
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, title, start, end, rows); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(start, end, "pdf")+`"`)

	return c.Send(buf.Bytes())
}

// reportQuery parses start_date/end_date/user_id query parameters, defaulting
// to the last defaultDays days ending today. user_id "all" means no filter.
func reportQuery(c *fiber.Ctx, defaultDays int) (start, end time.Time, userID string, err error) {
	today := time.Now().UTC()
	start = today.AddDate(0, 0, -defaultDays)
	end = today

	if s := c.Query("start_date"); s != "" {
		start, err = time.Parse(constant.DateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, "", errors.New("invalid start_date, expected YYYY-MM-DD")
		}
	}
	if e := c.Query("end_date"); e != "" {
		end, err = time.Parse(constant.DateLayout, e)
		if err != nil {
			return time.Time{}, time.Time{}, "", errors.New("invalid end_date, expected YYYY-MM-DD")
		}
	}

	userID = c.Query("user_id")
	if userID == "all" {
		userID = ""
	}

	return start, end, userID, nil
}
