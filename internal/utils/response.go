package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": now(),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": now(),
		"url":       c.OriginalURL(),
		"type":      "notFound",
	})
}

// MutationSuccessResponse sends a success response for mutations that return no record
func MutationSuccessResponse(c *fiber.Ctx, message string, affectedRows int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      message,
		"ok":           true,
		"timestamp":    now(),
		"affectedRows": affectedRows,
	})
}

// DonationBatchResponse sends the outcome of a donation batch
func DonationBatchResponse(c *fiber.Ctx, applied, skipped int, skippedItemIDs []int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Donations applied",
		"ok":             true,
		"timestamp":      now(),
		"applied":        applied,
		"skipped":        skipped,
		"skippedItemIds": skippedItemIDs,
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Timestamp    string `json:"timestamp"`
	AffectedRows int64  `json:"affectedRows"`
}

// DonationBatchResponseStruct defines the schema for donation batch responses
type DonationBatchResponseStruct struct {
	Message        string  `json:"message"`
	Ok             bool    `json:"ok"`
	Timestamp      string  `json:"timestamp"`
	Applied        int     `json:"applied"`
	Skipped        int     `json:"skipped"`
	SkippedItemIDs []int64 `json:"skippedItemIds"`
}
