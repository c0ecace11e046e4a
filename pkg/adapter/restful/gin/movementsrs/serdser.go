package movementsrs

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

// rawMovementReq keeps the required fields optional for the binding,
// so the movements use case reports the first missing one.
type rawMovementReq struct {
	ID         int64   `json:"id"`
	LoanDate   string  `json:"loan_date" binding:"omitempty,datetime=2006-01-02"`
	ReturnDate string  `json:"return_date" binding:"omitempty,datetime=2006-01-02"`
	Asset      *refReq `json:"asset"`
	Borrower   *refReq `json:"borrower"`
	Suspended  bool    `json:"suspended"`
}

type rawListReq struct {
	serdser.PageReq
	AssetID    int64 `form:"asset_id" binding:"omitempty,min=1"`
	BorrowerID int64 `form:"borrower_id" binding:"omitempty,min=1"`
}

func (rs *resource) DserMovementReq(c *gin.Context) *model.Movement {
	req := &rawMovementReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	m := &model.Movement{ID: req.ID, Suspended: req.Suspended}
	var err error
	m.LoanDate, err = serdser.ParseDate(req.LoanDate)
	serdser.Assert(&errs, err == nil, "loan_date", "Date must be YYYY-MM-DD.")
	m.ReturnDate, err = serdser.ParseDate(req.ReturnDate)
	serdser.Assert(&errs, err == nil, "return_date", "Date must be YYYY-MM-DD.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	if req.Asset != nil {
		m.Asset = &model.Asset{ID: req.Asset.ID}
	}
	if req.Borrower != nil {
		m.Borrower = &model.Borrower{ID: req.Borrower.ID}
	}
	return m
}

func (rs *resource) DserListReq(
	c *gin.Context,
) (f model.MovementFilter, p model.Page, ok bool) {
	req := &rawListReq{}
	if ok = serdser.Bind(c, req, binding.Query); !ok {
		return
	}
	f = model.MovementFilter{
		AssetID:          req.AssetID,
		BorrowerID:       req.BorrowerID,
		IncludeSuspended: req.Suspended,
	}
	return f, req.Page(), true
}
