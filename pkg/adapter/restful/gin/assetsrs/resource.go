// Package assetsrs realizes the assets resource, allowing the assets
// REST APIs to be accepted and delegated to the assets use case.
package assetsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/serdser"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/assetsuc"
)

type resource struct {
	assets *assetsuc.UseCase
}

// Register instantiates a resource adapting the assets use case
// with these REST APIs:
//  1. POST /assets for registering an asset,
//  2. GET /assets and GET /assets/:id for fetching assets,
//  3. PUT /assets/:id for updating an asset (e.g., returning it
//     by setting its status to AVAILABLE),
//  4. DELETE /assets/:id for deleting an asset softly.
func Register(r *gin.RouterGroup, assets *assetsuc.UseCase) {
	rs := &resource{assets: assets}
	r.POST("assets", rs.Create)
	r.GET("assets", rs.List)
	r.GET("assets/:id", rs.Get)
	r.PUT("assets/:id", rs.Update)
	r.DELETE("assets/:id", rs.Delete)
}

func (rs *resource) Create(c *gin.Context) {
	a := rs.DserAssetReq(c)
	if a == nil {
		return
	}
	saved, err := rs.assets.Create(c, a)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (rs *resource) Update(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	a := rs.DserAssetReq(c)
	if a == nil {
		return
	}
	saved, err := rs.assets.Update(c, id, a)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (rs *resource) Delete(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	a, err := rs.assets.Delete(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (rs *resource) Get(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	a, err := rs.assets.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (rs *resource) List(c *gin.Context) {
	f, p, ok := rs.DserListReq(c)
	if !ok {
		return
	}
	as, err := rs.assets.List(c, f, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, as)
}
