package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type CartController struct {
	Svc      *services.CartService
	OrderSvc *services.OrderService
}

func NewCartController(s *services.CartService, os *services.OrderService) *CartController {
	return &CartController{Svc: s, OrderSvc: os}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.Get(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

type cartItemReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddItem(uid, req.MenuItemID); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(uid, req.MenuItemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

type orderDateReq struct {
	OrderDate string `json:"orderDate" binding:"required"` // 2006-01-02
}

// PATCH /cart/order-date
func (h *CartController) SetOrderDate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req orderDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	at, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		resp.BadRequest(c, "orderDate must be YYYY-MM-DD")
		return
	}
	if err := h.Svc.SetOrderDate(uid, at); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.OrderSvc.Checkout(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}
