package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardoctor/pkg/logger"
	"cardoctor/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockCatalogService struct {
	listFunc    func(ctx context.Context) ([]model.Service, error)
	getByIDFunc func(ctx context.Context, id string) (*model.ServiceSummary, error)
}

func (m *mockCatalogService) List(ctx context.Context) ([]model.Service, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []model.Service{}, nil
}

func (m *mockCatalogService) GetByID(ctx context.Context, id string) (*model.ServiceSummary, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
}

func TestList_ReturnsAllServices(t *testing.T) {
	mock := &mockCatalogService{
		listFunc: func(ctx context.Context) ([]model.Service, error) {
			return []model.Service{
				{ID: "1", Title: "Full Car Repair", Price: 250},
				{ID: "2", Title: "Engine Oil Change", Price: 20},
			}, nil
		},
	}
	handler := NewServiceHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	w := httptest.NewRecorder()

	handler.List(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var services []model.Service
	if err := json.NewDecoder(w.Body).Decode(&services); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(services) != 2 {
		t.Errorf("expected 2 services, got %d", len(services))
	}
}

func TestGetByID_ProjectedFieldsOnly(t *testing.T) {
	mock := &mockCatalogService{
		getByIDFunc: func(ctx context.Context, id string) (*model.ServiceSummary, error) {
			return &model.ServiceSummary{Title: "Engine Oil Change", Price: 20, Img: "https://img.example/oil.jpg"}, nil
		},
	}
	handler := NewServiceHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/services/1", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, httprouter.Params{{Key: "id", Value: "1"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	for key := range body {
		switch key {
		case "title", "price", "img":
		default:
			t.Errorf("unexpected key %q in projected response", key)
		}
	}
	if body["title"] != "Engine Oil Change" {
		t.Errorf("expected projected title, got %v", body["title"])
	}
}

func TestGetByID_AbsentServiceIsNull(t *testing.T) {
	handler := NewServiceHandler(&mockCatalogService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/services/nope", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, httprouter.Params{{Key: "id", Value: "nope"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "null" {
		t.Errorf("expected null body for absent service, got %q", got)
	}
}
