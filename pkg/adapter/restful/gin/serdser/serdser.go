// Package serdser contains the serialization and deserialization
// helpers which are shared by the resource packages.
package serdser

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

// DateLayout is the format of dates in requests, e.g., 2024-03-21.
const DateLayout = time.DateOnly

func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return bindErr(c, c.ShouldBindWith(req, b))
}

// BindUri works like Bind, but binds the path params of c into req.
func BindUri(c *gin.Context, req any) bool {
	return bindErr(c, c.ShouldBindUri(req))
}

func bindErr(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

type idReq struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// PathID binds the :id path param. If it is not a positive integer,
// a bad request response is written and false is returned.
func PathID(c *gin.Context) (int64, bool) {
	req := &idReq{}
	if ok := BindUri(c, req); !ok {
		return 0, false
	}
	return req.ID, true
}

// PageReq contains the common query params of the listing endpoints.
type PageReq struct {
	Limit     int  `form:"limit" binding:"omitempty,min=0"`
	Offset    int  `form:"offset" binding:"omitempty,min=0"`
	Suspended bool `form:"suspended"`
}

func (pr PageReq) Page() model.Page {
	return model.Page{Limit: pr.Limit, Offset: pr.Offset}
}

// ParseDate parses s using the DateLayout. An empty s gives the zero
// time, so it is reported as a missing date by the use cases.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr writes err as a json response. A *cerr.Error is reported
// with its own status code. Other errors are logged and reported as
// internal server errors. Validation failures are not logged.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		if !cerr.IsValidation(err) {
			log.Info(c, "request is rejected",
				slog.Int("status", ce.HTTPStatusCode), log.Err("err", err),
			)
		}
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	log.Error(c, "request failed", log.Err("err", err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
