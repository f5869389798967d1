package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: s}
}

// POST /profile/customer
func (h *ProfileController) CreateCustomer(c *gin.Context) {
	var req services.CustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateCustomer(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/customer
func (h *ProfileController) GetCustomer(c *gin.Context) {
	out, err := h.Svc.GetCustomer(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /profile/customer
func (h *ProfileController) UpdateCustomer(c *gin.Context) {
	var req services.CustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateCustomer(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /profile/driver
func (h *ProfileController) CreateDriver(c *gin.Context) {
	var req services.DriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateDriver(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/driver
func (h *ProfileController) GetDriver(c *gin.Context) {
	out, err := h.Svc.GetDriver(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /profile/cards
func (h *ProfileController) AddCard(c *gin.Context) {
	var req services.CardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.AddCard(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/cards
func (h *ProfileController) ListCards(c *gin.Context) {
	out, err := h.Svc.ListCards(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /profile/cards/:id
func (h *ProfileController) RemoveCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid card id")
		return
	}
	if err := h.Svc.RemoveCard(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
