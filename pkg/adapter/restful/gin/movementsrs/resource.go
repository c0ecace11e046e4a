// Package movementsrs realizes the movements resource, allowing the
// loans REST APIs to be accepted and delegated to the movements use
// case.
package movementsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/serdser"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/movementsuc"
)

type resource struct {
	movements *movementsuc.UseCase
}

// Register instantiates a resource adapting the movements use case
// with these REST APIs:
//  1. POST /movements for loaning an asset to a borrower,
//  2. GET /movements and GET /movements/:id for fetching movements,
//  3. PUT /movements/:id for editing a movement,
//  4. DELETE /movements/:id for deactivating a movement.
func Register(r *gin.RouterGroup, movements *movementsuc.UseCase) {
	rs := &resource{movements: movements}
	r.POST("movements", rs.Create)
	r.GET("movements", rs.List)
	r.GET("movements/:id", rs.Get)
	r.PUT("movements/:id", rs.Edit)
	r.DELETE("movements/:id", rs.Deactivate)
}

func (rs *resource) Create(c *gin.Context) {
	m := rs.DserMovementReq(c)
	if m == nil {
		return
	}
	saved, err := rs.movements.Create(c, m)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (rs *resource) Edit(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	m := rs.DserMovementReq(c)
	if m == nil {
		return
	}
	saved, err := rs.movements.Edit(c, id, m)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (rs *resource) Deactivate(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	m, err := rs.movements.Deactivate(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (rs *resource) Get(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	m, err := rs.movements.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (rs *resource) List(c *gin.Context) {
	f, p, ok := rs.DserListReq(c)
	if !ok {
		return
	}
	ms, err := rs.movements.List(c, f, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}
