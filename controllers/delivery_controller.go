package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type DeliveryController struct{ Svc *services.DeliveryService }

func NewDeliveryController(s *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// GET /partner/driver/orders
func (h *DeliveryController) OpenOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	orders, err := h.Svc.ListOpenOrders(limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /partner/driver/deliveries
func (h *DeliveryController) Claim(c *gin.Context) {
	var req services.ClaimReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Claim(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /partner/driver/deliveries/:id/finish
func (h *DeliveryController) Finish(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid delivery id")
		return
	}
	d, err := h.Svc.Finish(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /partner/driver/histories
func (h *DeliveryController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	ds, err := h.Svc.History(utils.CurrentUserID(c), limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ds)
}
