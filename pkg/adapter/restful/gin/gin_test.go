// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/config"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/memory"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/routes"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/stretchr/testify/suite"
)

type GinTestSuite struct {
	suite.Suite

	Gin *gin.Engine
}

func TestGinTestSuite(t *testing.T) {
	suite.Run(t, new(GinTestSuite))
}

func (gts *GinTestSuite) SetupTest() {
	c, err := config.Parse([]byte("gin:\n  metrics: true\n"))
	gts.Require().NoError(err, "failed to parse config")
	e, m := c.Gin.NewEngine()
	gts.Require().NotNil(m, "metrics are enabled")
	err = routes.Register(
		e, memory.NewPool(), routes.MemoryRepos(), c.Usecases, m,
	)
	gts.Require().NoError(err, "failed to register Gin routes")
	gts.Gin = e
}

func (gts *GinTestSuite) send(
	method, path string, body any, res any,
) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		gts.Require().NoError(err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, routes.BasePath+path, r)
	gts.Require().NoError(err, "cannot create request")
	req.Header.Add("Content-Type", "application/json")
	w := httptest.NewRecorder()
	gts.Gin.ServeHTTP(w, req)
	if res != nil {
		gts.Require().NoError(
			json.Unmarshal(w.Body.Bytes(), res), "body is not json",
		)
	}
	return w
}

type detail struct {
	Detail string
}

func (gts *GinTestSuite) seed() (cid, bid, aid int64) {
	cat := &model.Category{}
	w := gts.send(http.MethodPost, "/categories", map[string]any{
		"name": "Wheelchairs",
	}, cat)
	gts.Require().Equal(http.StatusCreated, w.Code)
	b := &model.Borrower{}
	w = gts.send(http.MethodPost, "/borrowers", map[string]any{
		"name": "Maria", "phone": "+55 11 5555",
	}, b)
	gts.Require().Equal(http.StatusCreated, w.Code)
	a := &model.Asset{}
	w = gts.send(http.MethodPost, "/assets", map[string]any{
		"category":   map[string]any{"id": cat.ID},
		"tag":        "PAT-001",
		"name":       "Wheelchair",
		"condition":  "NEW",
		"status":     "AVAILABLE",
		"entry_date": "2024-03-01",
	}, a)
	gts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	gts.Require().Equal("Wheelchairs", a.Category.Name)
	return cat.ID, b.ID, a.ID
}

func movementBody(aid, bid int64) map[string]any {
	return map[string]any{
		"loan_date":   "2024-03-10",
		"return_date": "2024-04-10",
		"asset":       map[string]any{"id": aid},
		"borrower":    map[string]any{"id": bid},
	}
}

func (gts *GinTestSuite) TestLoanAndReturn() {
	cid, bid, aid := gts.seed()

	m := &model.Movement{}
	w := gts.send(http.MethodPost, "/movements", movementBody(aid, bid), m)
	gts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	gts.NotZero(m.ID)
	gts.Equal(model.StatusInUse, m.Asset.Status)

	a := &model.Asset{}
	w = gts.send(http.MethodGet, fmt.Sprintf("/assets/%d", aid), nil, a)
	gts.Equal(http.StatusOK, w.Code)
	gts.Equal(model.StatusInUse, a.Status)

	d := &detail{}
	w = gts.send(http.MethodPost, "/movements", movementBody(aid, bid), d)
	gts.Equal(http.StatusBadRequest, w.Code)
	gts.Equal(fmt.Sprintf("asset %d is already in use", aid), d.Detail)

	w = gts.send(http.MethodPut, fmt.Sprintf("/assets/%d", aid), map[string]any{
		"category":  map[string]any{"id": cid},
		"tag":       "PAT-001",
		"condition": "USED",
		"status":    "AVAILABLE",
	}, a)
	gts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	gts.Equal(model.StatusAvailable, a.Status)
	gts.Equal(2024, a.EntryDate.Year(), "entry date must be kept")

	var ms []model.Movement
	w = gts.send(
		http.MethodGet, fmt.Sprintf("/movements?asset_id=%d", aid), nil, &ms,
	)
	gts.Equal(http.StatusOK, w.Code)
	gts.Len(ms, 1)
}

func (gts *GinTestSuite) TestEditAndDeactivateMovement() {
	_, bid, aid := gts.seed()
	m := &model.Movement{}
	w := gts.send(http.MethodPost, "/movements", movementBody(aid, bid), m)
	gts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	body := movementBody(aid, bid)
	body["id"] = m.ID + 1
	d := &detail{}
	w = gts.send(http.MethodPut, fmt.Sprintf("/movements/%d", m.ID), body, d)
	gts.Equal(http.StatusBadRequest, w.Code)
	gts.Equal(
		fmt.Sprintf("movement id does not match the path id %d", m.ID),
		d.Detail,
	)

	body["id"] = m.ID
	body["return_date"] = "2024-05-01"
	edited := &model.Movement{}
	w = gts.send(http.MethodPut, fmt.Sprintf("/movements/%d", m.ID), body, edited)
	gts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	gts.Equal(5, int(edited.ReturnDate.Month()))

	deactivated := &model.Movement{}
	w = gts.send(
		http.MethodDelete, fmt.Sprintf("/movements/%d", m.ID), nil, deactivated,
	)
	gts.Require().Equal(http.StatusOK, w.Code)
	gts.True(deactivated.Suspended)
	gts.Equal(model.StatusInUse, deactivated.Asset.Status)

	var ms []model.Movement
	w = gts.send(http.MethodGet, "/movements", nil, &ms)
	gts.Equal(http.StatusOK, w.Code)
	gts.Empty(ms, "suspended movements are hidden by default")
	w = gts.send(http.MethodGet, "/movements?suspended=true", nil, &ms)
	gts.Equal(http.StatusOK, w.Code)
	gts.Len(ms, 1)
}

func (gts *GinTestSuite) TestEditKeepsSuspension() {
	_, bid, aid := gts.seed()
	m := &model.Movement{}
	w := gts.send(http.MethodPost, "/movements", movementBody(aid, bid), m)
	gts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	path := fmt.Sprintf("/movements/%d", m.ID)
	w = gts.send(http.MethodDelete, path, nil, nil)
	gts.Require().Equal(http.StatusOK, w.Code)

	body := movementBody(aid, bid)
	body["id"] = m.ID
	body["suspended"] = true
	edited := &model.Movement{}
	w = gts.send(http.MethodPut, path, body, edited)
	gts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	gts.True(edited.Suspended)

	got := &model.Movement{}
	w = gts.send(http.MethodGet, path, nil, got)
	gts.Equal(http.StatusOK, w.Code)
	gts.True(got.Suspended, "edit must not reactivate the movement")

	body["suspended"] = false
	w = gts.send(http.MethodPut, path, body, edited)
	gts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	gts.False(edited.Suspended)
}

func (gts *GinTestSuite) TestPathID() {
	_, _, aid := gts.seed()
	for _, path := range []string{
		fmt.Sprintf("/assets/%d", aid), "/categories/1", "/borrowers/1",
	} {
		w := gts.send(http.MethodGet, path, nil, nil)
		gts.Equal(http.StatusOK, w.Code, path)
	}
	res := map[string]any{}
	w := gts.send(http.MethodGet, "/assets/0", nil, &res)
	gts.Equal(http.StatusBadRequest, w.Code)
	errs, ok := res["ID"].([]any)
	gts.Require().True(ok, "missing ID errors: %v", res)
	gts.Contains(errs[0], "'min' tag")
}

func (gts *GinTestSuite) TestBadRequest() {
	cid, _, _ := gts.seed()
	for _, tc := range []struct {
		name   string
		method string
		path   string
		body   any
		detail string
		field  string
		errTag string
	}{
		{
			name:   "asset without category",
			method: http.MethodPost,
			path:   "/assets",
			body:   map[string]any{"tag": "PAT-002"},
			detail: "asset category is required",
		},
		{
			name:   "asset with taken tag",
			method: http.MethodPost,
			path:   "/assets",
			body: map[string]any{
				"category":   map[string]any{"id": cid},
				"tag":        "PAT-001",
				"condition":  "NEW",
				"status":     "AVAILABLE",
				"entry_date": "2024-03-01",
			},
			detail: `asset tag "PAT-001" is already used by asset 1`,
		},
		{
			name:   "asset with unknown condition",
			method: http.MethodPost,
			path:   "/assets",
			body:   map[string]any{"condition": "BROKEN"},
			field:  "Condition",
			errTag: "'oneof' tag",
		},
		{
			name:   "asset with malformed date",
			method: http.MethodPost,
			path:   "/assets",
			body:   map[string]any{"entry_date": "01/03/2024"},
			field:  "EntryDate",
			errTag: "'datetime' tag",
		},
		{
			name:   "movement without loan date",
			method: http.MethodPost,
			path:   "/movements",
			body:   map[string]any{},
			detail: "movement loan date is required",
		},
		{
			name:   "movement with missing borrower",
			method: http.MethodPost,
			path:   "/movements",
			body:   movementBody(1, 99),
			detail: "borrower 99 does not exist",
		},
		{
			name:   "non-numeric id",
			method: http.MethodGet,
			path:   "/assets/abc",
			detail: "strconv.ParseInt",
		},
		{
			name:   "category without name",
			method: http.MethodPost,
			path:   "/categories",
			body:   map[string]any{"name": " "},
			detail: "category name is required",
		},
	} {
		gts.Run(tc.name, func() {
			res := map[string]any{}
			w := gts.send(tc.method, tc.path, tc.body, &res)
			gts.Equal(http.StatusBadRequest, w.Code, w.Body.String())
			if tc.detail != "" {
				gts.Contains(res["detail"], tc.detail)
			}
			if tc.field != "" {
				errs, ok := res[tc.field].([]any)
				gts.Require().True(ok, "missing %q errors", tc.field)
				gts.Require().Len(errs, 1)
				gts.Contains(errs[0], tc.errTag)
			}
		})
	}
}

func (gts *GinTestSuite) TestNotFound() {
	for _, path := range []string{
		"/assets/42", "/borrowers/42", "/movements/42", "/categories/42",
	} {
		gts.Run(path, func() {
			d := &detail{}
			w := gts.send(http.MethodGet, path, nil, d)
			gts.Equal(http.StatusNotFound, w.Code)
			gts.NotEmpty(d.Detail)
		})
	}
}

func (gts *GinTestSuite) TestDeleteAssetReleasesTag() {
	cid, _, aid := gts.seed()
	a := &model.Asset{}
	w := gts.send(http.MethodDelete, fmt.Sprintf("/assets/%d", aid), nil, a)
	gts.Require().Equal(http.StatusOK, w.Code)
	gts.True(a.Suspended)

	w = gts.send(http.MethodPost, "/assets", map[string]any{
		"category":   map[string]any{"id": cid},
		"tag":        "PAT-001",
		"condition":  "USED",
		"status":     "AVAILABLE",
		"entry_date": "2024-06-01",
	}, a)
	gts.Equal(http.StatusCreated, w.Code, w.Body.String())
	gts.NotEqual(aid, a.ID)
}

func (gts *GinTestSuite) TestHealthAndMetrics() {
	req, err := http.NewRequest(http.MethodGet, "/healthz", nil)
	gts.Require().NoError(err)
	id := uuid.NewString()
	req.Header.Set(gin.RequestIDHeader, id)
	w := httptest.NewRecorder()
	gts.Gin.ServeHTTP(w, req)
	gts.Equal(http.StatusOK, w.Code)
	gts.Equal(id, w.Header().Get(gin.RequestIDHeader))

	req, err = http.NewRequest(http.MethodGet, "/metrics", nil)
	gts.Require().NoError(err)
	w = httptest.NewRecorder()
	gts.Gin.ServeHTTP(w, req)
	gts.Equal(http.StatusOK, w.Code)
	gts.Contains(w.Body.String(), `http_requests_total{method="GET",route="/healthz",status="200"} 1`)
	gts.NotEmpty(w.Header().Get(gin.RequestIDHeader), "generated request id")
}
