package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /orders/:id/review
func (h *ReviewController) ForOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	review, err := h.Svc.GetForOrder(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, review)
}

// GET /restaurants/:id/reviews
func (h *ReviewController) ForRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	reviews, err := h.Svc.ListForRestaurant(uint(id), limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}
