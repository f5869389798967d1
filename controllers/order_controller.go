package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Create(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	out, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurants/:id/orders
func (h *OrderController) ListForRestaurant(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.ListForRestaurant(uid, uint(restID), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
