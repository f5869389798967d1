package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
)

// fail maps service errors onto the HTTP taxonomy: not-found 404,
// constraint violations 409, invalid-state 422, forbidden 403.
func fail(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		resp.NotFound(c, err.Error())
	case services.IsConstraintViolation(err):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrCartOtherRestaurant):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidCardExpiry),
		errors.Is(err, services.ErrNotDelivered),
		errors.Is(err, services.ErrDeliveryAlreadyDone):
		resp.Unprocessable(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
