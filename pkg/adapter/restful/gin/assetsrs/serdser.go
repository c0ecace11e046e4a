package assetsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/serdser"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

type refReq struct {
	ID int64 `json:"id"`
}

// rawAssetReq leaves the required fields unchecked, so their absence
// is reported by the assets use case rules in their expected order.
type rawAssetReq struct {
	Category  *refReq `json:"category"`
	Tag       string  `json:"tag"`
	Name      string  `json:"name"`
	Condition string  `json:"condition" binding:"omitempty,oneof=NEW USED DAMAGED"`
	Status    string  `json:"status" binding:"omitempty,oneof=AVAILABLE IN_USE"`
	EntryDate string  `json:"entry_date" binding:"omitempty,datetime=2006-01-02"`
}

type rawListReq struct {
	serdser.PageReq
	CategoryID int64  `form:"category_id" binding:"omitempty,min=1"`
	Status     string `form:"status" binding:"omitempty,oneof=AVAILABLE IN_USE"`
}

func (rs *resource) DserAssetReq(c *gin.Context) *model.Asset {
	req := &rawAssetReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	a := &model.Asset{Tag: req.Tag, Name: req.Name}
	if req.Category != nil {
		a.Category = &model.Category{ID: req.Category.ID}
	}
	var err error
	if req.Condition != "" {
		a.Condition, err = model.ParseCondition(req.Condition)
		serdser.Assert(&errs, err == nil, "condition", "Unknown condition.")
	}
	if req.Status != "" {
		a.Status, err = model.ParseStatus(req.Status)
		serdser.Assert(&errs, err == nil, "status", "Unknown status.")
	}
	a.EntryDate, err = serdser.ParseDate(req.EntryDate)
	serdser.Assert(&errs, err == nil, "entry_date", "Date must be YYYY-MM-DD.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return a
}

func (rs *resource) DserListReq(
	c *gin.Context,
) (f model.AssetFilter, p model.Page, ok bool) {
	req := &rawListReq{}
	if ok = serdser.Bind(c, req, binding.Query); !ok {
		return
	}
	f.CategoryID = req.CategoryID
	f.IncludeSuspended = req.Suspended
	if req.Status != "" {
		var err error
		if f.Status, err = model.ParseStatus(req.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": []string{
				"Unknown status.",
			}})
			return f, p, false
		}
	}
	return f, req.Page(), true
}
