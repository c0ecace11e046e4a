// Package categoriesrs realizes the categories resource, allowing the
// categories REST APIs to be accepted and delegated to the categories
// use case.
package categoriesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/serdser"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/categoriesuc"
)

type resource struct {
	categories *categoriesuc.UseCase
}

type createReq struct {
	Name string `json:"name"`
}

// Register instantiates a resource adapting the categories use case
// with these REST APIs:
//  1. POST /categories for creating a category,
//  2. GET /categories for listing categories,
//  3. GET /categories/:id for fetching one category.
func Register(r *gin.RouterGroup, categories *categoriesuc.UseCase) {
	rs := &resource{categories: categories}
	r.POST("categories", rs.Create)
	r.GET("categories", rs.List)
	r.GET("categories/:id", rs.Get)
}

func (rs *resource) Create(c *gin.Context) {
	req := &createReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	cat, err := rs.categories.Create(c, &model.Category{Name: req.Name})
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (rs *resource) Get(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	cat, err := rs.categories.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (rs *resource) List(c *gin.Context) {
	req := &serdser.PageReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return
	}
	cs, err := rs.categories.List(c, req.Page())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cs)
}
