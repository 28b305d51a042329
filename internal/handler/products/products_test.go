package products

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecomarket/internal/apperr"
	"ecomarket/internal/model"
	"ecomarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	listFn   func(ctx context.Context, category string) ([]model.Product, error)
	createFn func(ctx context.Context, in service.CreateProductInput) (*model.Product, error)
}

func (f *fakeCatalog) List(ctx context.Context, category string) ([]model.Product, error) {
	return f.listFn(ctx, category)
}

func (f *fakeCatalog) Create(ctx context.Context, in service.CreateProductInput) (*model.Product, error) {
	return f.createFn(ctx, in)
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

func TestListHandler(t *testing.T) {
	e := echo.New()
	var gotCategory string
	cat := &fakeCatalog{listFn: func(_ context.Context, category string) ([]model.Product, error) {
		gotCategory = category
		if category == "boom" {
			return nil, errors.New("db")
		}
		return []model.Product{}, nil
	}}

	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/products?category=Home", nil), rec)
	require.NoError(t, ListHandler(cat)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Home", gotCategory)
	require.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	ctx = e.NewContext(httptest.NewRequest(http.MethodGet, "/products?category=boom", nil), rec)
	require.NoError(t, ListHandler(cat)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateHandler(t *testing.T) {
	newCtx := func(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	var got service.CreateProductInput
	cat := &fakeCatalog{createFn: func(_ context.Context, in service.CreateProductInput) (*model.Product, error) {
		got = in
		if in.OwnerID == "99" {
			return nil, apperr.Validation("owner does not exist")
		}
		return &model.Product{ID: 1}, nil
	}}

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newCtx(e, "")
	require.NoError(t, CreateHandler(cat)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// success
	e = echo.New()
	ctx, rec = newCtx(e, "name=Lamp&description=warm&category=Home&owner_id=1")
	require.NoError(t, CreateHandler(cat)(ctx))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/products", rec.Header().Get(echo.HeaderLocation))
	require.Equal(t, service.CreateProductInput{Name: "Lamp", Description: "warm", Category: "Home", OwnerID: "1"}, got)

	// validation error
	ctx, rec = newCtx(e, "name=Lamp&category=home&owner_id=99")
	require.NoError(t, CreateHandler(cat)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"owner does not exist"}`, rec.Body.String())
}
