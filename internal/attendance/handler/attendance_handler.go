package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teamtrack/attendance-service/internal/attendance/dto"
	"github.com/teamtrack/attendance-service/internal/attendance/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn accepts both JSON and form bodies; BodyParser picks the codec from
// the Content-Type header.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var input dto.CheckInInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(c, "latitude and longitude are out of range")
	}

	rec, err := h.attendanceService.CheckIn(c.UserContext(), CallerID(c), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "check-in successful",
		"attendance": dto.NewAttendanceOutput(rec),
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	rec, err := h.attendanceService.CheckOut(c.UserContext(), CallerID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "check-out successful",
		"attendance": dto.NewAttendanceOutput(rec),
	})
}

func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	open, err := h.attendanceService.Status(c.UserContext(), CallerID(c))
	if err != nil {
		return fail(c, err)
	}

	if open == nil {
		return c.JSON(dto.StatusOutput{Status: "checked_out"})
	}

	return c.JSON(dto.StatusOutput{
		Status:          "checked_in",
		CheckInTime:     &open.CheckInTime,
		Location:        &open.Location,
		LocationAddress: open.Address,
	})
}

func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	records, err := h.attendanceService.History(c.UserContext(), CallerID(c))
	if err != nil {
		return fail(c, err)
	}

	history := make([]dto.AttendanceOutput, 0, len(records))
	for i := range records {
		history = append(history, dto.NewAttendanceOutput(&records[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": history,
	})
}
