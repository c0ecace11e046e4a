// Package borrowersrs realizes the borrowers resource, allowing the
// borrowers REST APIs to be accepted and delegated to the borrowers
// use case.
package borrowersrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/serdser"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/borrowersuc"
)

type resource struct {
	borrowers *borrowersuc.UseCase
}

type borrowerReq struct {
	Name     string `json:"name"`
	Document string `json:"document" binding:"omitempty,max=32"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
}

func (br *borrowerReq) model() *model.Borrower {
	return &model.Borrower{
		Name:     br.Name,
		Document: br.Document,
		Phone:    br.Phone,
	}
}

// Register instantiates a resource adapting the borrowers use case
// with these REST APIs:
//  1. POST /borrowers for creating a borrower,
//  2. GET /borrowers and GET /borrowers/:id for fetching borrowers,
//  3. PUT /borrowers/:id for updating a borrower,
//  4. DELETE /borrowers/:id for suspending a borrower.
func Register(r *gin.RouterGroup, borrowers *borrowersuc.UseCase) {
	rs := &resource{borrowers: borrowers}
	r.POST("borrowers", rs.Create)
	r.GET("borrowers", rs.List)
	r.GET("borrowers/:id", rs.Get)
	r.PUT("borrowers/:id", rs.Update)
	r.DELETE("borrowers/:id", rs.Suspend)
}

func (rs *resource) Create(c *gin.Context) {
	req := &borrowerReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	b, err := rs.borrowers.Create(c, req.model())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (rs *resource) Update(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	req := &borrowerReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	b, err := rs.borrowers.Update(c, id, req.model())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) Suspend(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	b, err := rs.borrowers.Suspend(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) Get(c *gin.Context) {
	id, ok := serdser.PathID(c)
	if !ok {
		return
	}
	b, err := rs.borrowers.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) List(c *gin.Context) {
	req := &serdser.PageReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return
	}
	f := model.BorrowerFilter{IncludeSuspended: req.Suspended}
	bs, err := rs.borrowers.List(c, f, req.Page())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}
