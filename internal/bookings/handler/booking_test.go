package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardoctor/pkg/logger"
	"cardoctor/pkg/middleware"
	"cardoctor/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockBookingService struct {
	listFunc         func(ctx context.Context, email string) ([]model.Booking, error)
	getByIDFunc      func(ctx context.Context, id string) (model.Booking, error)
	createFunc       func(ctx context.Context, booking model.Booking) (*model.InsertResult, error)
	updateStatusFunc func(ctx context.Context, id string, status string) (*model.UpdateResult, error)
	deleteFunc       func(ctx context.Context, id string) (*model.DeleteResult, error)
}

func (m *mockBookingService) List(ctx context.Context, email string) ([]model.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, email)
	}
	return []model.Booking{}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingService) Create(ctx context.Context, booking model.Booking) (*model.InsertResult, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return &model.InsertResult{Acknowledged: true}, nil
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.UpdateResult, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m *mockBookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
}

func listRequest(query string, claims map[string]any) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/bookings"+query, nil)
	if claims != nil {
		req = req.WithContext(middleware.ContextWithUser(req.Context(), claims))
	}
	return req
}

func TestList_EmailMismatchForbidden(t *testing.T) {
	handler := NewBookingHandler(&mockBookingService{}, testLogger())

	tests := []struct {
		name   string
		query  string
		claims map[string]any
	}{
		{"different email", "?email=b@x.com", map[string]any{"email": "a@x.com"}},
		{"missing query email", "", map[string]any{"email": "a@x.com"}},
		{"garbage query email", "?email=not-an-email", map[string]any{"email": "a@x.com"}},
		{"claims without email", "?email=a@x.com", map[string]any{"name": "Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.List(w, listRequest(tt.query, tt.claims), httprouter.Params{})

			if w.Code != http.StatusForbidden {
				t.Errorf("expected status 403, got %d", w.Code)
			}

			var body map[string]any
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if body["message"] != "Forbidden" {
				t.Errorf("expected message 'Forbidden', got %v", body["message"])
			}
		})
	}
}

func TestList_MatchingEmailFilters(t *testing.T) {
	var filteredBy string
	mock := &mockBookingService{
		listFunc: func(ctx context.Context, email string) ([]model.Booking, error) {
			filteredBy = email
			return []model.Booking{
				{"_id": "1", "email": email, "service": "oil-change"},
			}, nil
		},
	}
	handler := NewBookingHandler(mock, testLogger())

	w := httptest.NewRecorder()
	handler.List(w, listRequest("?email=a@x.com", map[string]any{"email": "a@x.com"}), httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if filteredBy != "a@x.com" {
		t.Errorf("expected service filtered by a@x.com, got %q", filteredBy)
	}

	var bookings []model.Booking
	if err := json.NewDecoder(w.Body).Decode(&bookings); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(bookings) != 1 || bookings[0]["service"] != "oil-change" {
		t.Errorf("unexpected bookings payload: %v", bookings)
	}
}

func TestCreate_ReturnsInsertedID(t *testing.T) {
	var received model.Booking
	mock := &mockBookingService{
		createFunc: func(ctx context.Context, booking model.Booking) (*model.InsertResult, error) {
			received = booking
			return &model.InsertResult{Acknowledged: true, InsertedID: "65f000000000000000000001"}, nil
		},
	}
	handler := NewBookingHandler(mock, testLogger())

	body := strings.NewReader(`{"email":"a@x.com","service":"oil-change","price":29.95}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if received.Email() != "a@x.com" {
		t.Errorf("expected booking email a@x.com, got %q", received.Email())
	}
	if received["service"] != "oil-change" {
		t.Errorf("arbitrary fields must reach the service untouched, got %v", received)
	}

	var result model.InsertResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.InsertedID != "65f000000000000000000001" {
		t.Errorf("expected insertedId in response, got %+v", result)
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	handler := NewBookingHandler(&mockBookingService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGetByID_AbsentBookingIsNull(t *testing.T) {
	handler := NewBookingHandler(&mockBookingService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/bookings/65f000000000000000000001", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, httprouter.Params{{Key: "id", Value: "65f000000000000000000001"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "null" {
		t.Errorf("expected null body for absent booking, got %q", got)
	}
}

func TestUpdateStatus_PassesStatusThrough(t *testing.T) {
	var gotID, gotStatus string
	mock := &mockBookingService{
		updateStatusFunc: func(ctx context.Context, id string, status string) (*model.UpdateResult, error) {
			gotID, gotStatus = id, status
			return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	handler := NewBookingHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/bookings/65f000000000000000000001", strings.NewReader(`{"status":"approved"}`))
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req, httprouter.Params{{Key: "id", Value: "65f000000000000000000001"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotID != "65f000000000000000000001" || gotStatus != "approved" {
		t.Errorf("expected id/status forwarded, got id=%q status=%q", gotID, gotStatus)
	}

	var result model.UpdateResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Errorf("unexpected update result: %+v", result)
	}
}

func TestDelete_ReportsDeletedCount(t *testing.T) {
	mock := &mockBookingService{
		deleteFunc: func(ctx context.Context, id string) (*model.DeleteResult, error) {
			return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		},
	}
	handler := NewBookingHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/bookings/65f000000000000000000001", nil)
	w := httptest.NewRecorder()

	handler.Delete(w, req, httprouter.Params{{Key: "id", Value: "65f000000000000000000001"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result model.DeleteResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("expected deletedCount 1, got %+v", result)
	}
}
