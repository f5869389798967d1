package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

func restParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return 0, false
	}
	return uint(id), true
}

// ---------------- Categories ----------------

// GET /restaurants/:id/categories
func (h *MenuController) ListCategories(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	cats, err := h.Svc.ListCategories(restID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /partner/restaurants/:id/categories
func (h *MenuController) CreateCategory(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	var req services.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(utils.CurrentUserID(c), restID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /partner/restaurants/:id/categories/:catId
func (h *MenuController) RenameCategory(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	catID, err := strconv.ParseUint(c.Param("catId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var req services.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.RenameCategory(utils.CurrentUserID(c), restID, uint(catID), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /partner/restaurants/:id/categories/:catId
func (h *MenuController) DeleteCategory(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	catID, err := strconv.ParseUint(c.Param("catId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := h.Svc.DeleteCategory(utils.CurrentUserID(c), restID, uint(catID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// ---------------- Items ----------------

// GET /restaurants/:id/items?categoryId=
func (h *MenuController) ListItems(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	var categoryID *uint
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid category id")
			return
		}
		cid := uint(id)
		categoryID = &cid
	}
	items, err := h.Svc.ListItems(restID, categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /items/:id
func (h *MenuController) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	item, err := h.Svc.GetItem(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /partner/restaurants/:id/items
func (h *MenuController) CreateItem(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(utils.CurrentUserID(c), restID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/restaurants/:id/items/:itemId
func (h *MenuController) UpdateItem(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(utils.CurrentUserID(c), restID, uint(itemID), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /partner/restaurants/:id/items/:itemId
func (h *MenuController) DeleteItem(c *gin.Context) {
	restID, ok := restParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.DeleteItem(utils.CurrentUserID(c), restID, uint(itemID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
