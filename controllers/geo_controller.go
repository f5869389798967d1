package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodmarket/pkg/resp"
	"foodmarket/repository"
)

// GeoController serves the read-only State/City/ZipCode reference data.
type GeoController struct{ Repo *repository.GeoRepository }

func NewGeoController(r *repository.GeoRepository) *GeoController { return &GeoController{Repo: r} }

// GET /geo/states
func (h *GeoController) States(c *gin.Context) {
	states, err := h.Repo.ListStates()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, states)
}

// GET /geo/cities?state=CA
func (h *GeoController) Cities(c *gin.Context) {
	cities, err := h.Repo.ListCities(c.Query("state"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cities)
}

// GET /geo/zipcodes?cityId=1
func (h *GeoController) ZipCodes(c *gin.Context) {
	cityID, _ := strconv.ParseUint(c.Query("cityId"), 10, 64)
	zips, err := h.Repo.ListZipCodes(uint(cityID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, zips)
}

// GET /geo/zipcodes/:code
func (h *GeoController) ZipCode(c *gin.Context) {
	z, err := h.Repo.GetZipCode(c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, z)
}
