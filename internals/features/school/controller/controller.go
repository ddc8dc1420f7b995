// file: internals/features/school/controller/controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
	authmw "schoolku_backend/internals/middlewares/auth"
)

// fallbackMessage is shown when a mutation fails without a specific
// explanation.
const fallbackMessage = "Something went wrong!"

// callerFromLocals rebuilds the service caller from the claims the auth
// middleware stored on the request.
func callerFromLocals(c *fiber.Ctx) (service.Caller, bool) {
	role, ok := authmw.GetCallerRole(c)
	if !ok {
		return service.Caller{}, false
	}
	id, err := uuid.Parse(authmw.GetCallerID(c))
	if err != nil {
		return service.Caller{}, false
	}
	return service.Caller{ID: id, Role: role}, true
}

// mutationError maps a failed handler result to the error envelope.
func mutationError(c *fiber.Ctx, res service.Result) error {
	msg := res.Message
	if msg == "" {
		msg = fallbackMessage
	}
	return helper.JsonError(c, fiber.StatusBadRequest, msg)
}

// deletePayload pulls the target id out of the delete form, falling back
// to the path param for clients that send it there.
func deletePayload(c *fiber.Ctx) map[string]string {
	id := c.FormValue("id")
	if id == "" {
		id = c.Params("id")
	}
	return map[string]string{"id": id}
}
