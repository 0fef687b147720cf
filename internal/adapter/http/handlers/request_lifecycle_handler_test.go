package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLifecycleRouter(t *testing.T) (*gin.Engine, *mocks.MockIRequestLifecycleUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
	h := NewRequestLifecycleHandler(uc)

	r := gin.New()
	r.Use(middleware.Actor())
	r.POST("/v1/requests", h.CreateRequest)
	r.GET("/v1/requests/:request_id", h.GetRequest)
	r.PATCH("/v1/requests/:request_id/status", h.UpdateStatus)
	return r, uc
}

func asActor(req *http.Request, id string, role entities.Role) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderActorID, id)
	req.Header.Set(middleware.HeaderActorRole, string(role))
	return req
}

func TestRequestLifecycleHandler_CreateRequest(t *testing.T) {
	t.Run("missing identity headers", func(t *testing.T) {
		r, _ := newLifecycleRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"garage_id":"gar-1","vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		r, _ := newLifecycleRouter(t)

		req := asActor(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"garage_id":"gar-1","vehicle_id":"veh-1"}`)), "cust-1", entities.Role("root"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newLifecycleRouter(t)

		req := asActor(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"garage_id":""}`)), "cust-1", entities.RoleCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("open request conflict", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().CreateRequest(gomock.Any(), entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}, "gar-1", "veh-1", gomock.Any()).
			Return(entities.ServiceRequest{}, usecase.ErrOpenRequestExists)

		req := asActor(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"garage_id":"gar-1","vehicle_id":"veh-1"}`)), "cust-1", entities.RoleCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), "gar-1", "veh-1", entities.Coordinates{Latitude: -23.5, Longitude: -46.6}).
			Return(entities.ServiceRequest{ID: "req-1", CustomerID: "cust-1", GarageID: "gar-1", VehicleID: "veh-1", Status: entities.RequestStatusPending}, nil)

		req := asActor(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"garage_id":"gar-1","vehicle_id":"veh-1","latitude":-23.5,"longitude":-46.6}`)), "cust-1", entities.RoleCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "req-1" || body["status"] != string(entities.RequestStatusPending) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRequestLifecycleHandler_UpdateStatus(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "req-1", gomock.Any(), entities.RequestStatusCompleted, "").
			Return(entities.ServiceRequest{}, usecase.ErrCompletionViaStatus)

		req := asActor(httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"status":"COMPLETED"}`)), "mech-1", entities.RoleMechanic)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("foreign actor forbidden", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "req-1", gomock.Any(), entities.RequestStatusCancelled, "").
			Return(entities.ServiceRequest{}, usecase.ErrActorNotAllowed)

		req := asActor(httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"status":"CANCELLED"}`)), "cust-9", entities.RoleCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("version race conflict", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "req-1", gomock.Any(), entities.RequestStatusAccepted, "mech-1").
			Return(entities.ServiceRequest{}, usecase.ErrConcurrentUpdate)

		req := asActor(httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"status":"ACCEPTED","mechanic_id":"mech-1"}`)), "admin-1", entities.RoleGarageAdmin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "req-1", gomock.Any(), entities.RequestStatusAccepted, "").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusAccepted, MechanicID: "mech-1"}, nil)

		req := asActor(httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"status":"ACCEPTED"}`)), "mech-1", entities.RoleMechanic)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.RequestStatusAccepted) || body["mechanic_id"] != "mech-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRequestLifecycleHandler_GetRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "req-9", gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

		req := asActor(httptest.NewRequest(http.MethodGet, "/v1/requests/req-9", nil), "cust-1", entities.RoleCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "req-1", entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}).
			Return(entities.ServiceRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.RequestStatusInProgress}, nil)

		req := asActor(httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil), "cust-1", entities.RoleCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
