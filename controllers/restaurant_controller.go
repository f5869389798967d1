package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// fall back to slug lookup so /restaurants/chronic-tacos works
		rest, err := h.Svc.GetBySlug(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, rest)
		return
	}
	rest, err := h.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /partner/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Create(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rest)
}

// PATCH /partner/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req services.UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Update(uid, uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /partner/restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := h.Svc.Delete(uid, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
