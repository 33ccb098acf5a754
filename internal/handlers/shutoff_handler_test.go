package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
	"hestia/internal/uuid"
)

type mockShutoffService struct {
	createShutoffFn       func(userID, propertyID string, utility models.UtilityType, location, notes string) (*models.ShutoffPoint, error)
	getPropertyShutoffsFn func(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.ShutoffPoint], error)
	getShutoffByIDFn      func(userID, shutoffID string) (*models.ShutoffPoint, error)
	updateShutoffFn       func(userID, shutoffID string, utility *models.UtilityType, location, notes string) (*models.ShutoffPoint, error)
	deleteShutoffFn       func(userID, shutoffID string) error
}

func (m *mockShutoffService) CreateShutoff(userID, propertyID string, utility models.UtilityType, location, notes string) (*models.ShutoffPoint, error) {
	if m.createShutoffFn != nil {
		return m.createShutoffFn(userID, propertyID, utility, location, notes)
	}
	return &models.ShutoffPoint{}, nil
}

func (m *mockShutoffService) GetPropertyShutoffs(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.ShutoffPoint], error) {
	if m.getPropertyShutoffsFn != nil {
		return m.getPropertyShutoffsFn(userID, propertyID, page)
	}
	resp := pagination.NewPageResponse([]models.ShutoffPoint{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockShutoffService) GetShutoffByID(userID, shutoffID string) (*models.ShutoffPoint, error) {
	if m.getShutoffByIDFn != nil {
		return m.getShutoffByIDFn(userID, shutoffID)
	}
	return &models.ShutoffPoint{}, nil
}

func (m *mockShutoffService) UpdateShutoff(userID, shutoffID string, utility *models.UtilityType, location, notes string) (*models.ShutoffPoint, error) {
	if m.updateShutoffFn != nil {
		return m.updateShutoffFn(userID, shutoffID, utility, location, notes)
	}
	return &models.ShutoffPoint{}, nil
}

func (m *mockShutoffService) DeleteShutoff(userID, shutoffID string) error {
	if m.deleteShutoffFn != nil {
		return m.deleteShutoffFn(userID, shutoffID)
	}
	return nil
}

var _ services.ShutoffServicer = (*mockShutoffService)(nil)

func setupShutoffRouter(handler *ShutoffHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.POST("/properties/:id/shutoffs", handler.CreateShutoff)
	auth.GET("/properties/:id/shutoffs", handler.GetShutoffs)
	auth.GET("/shutoffs/:id", handler.GetShutoff)
	auth.PUT("/shutoffs/:id", handler.UpdateShutoff)
	auth.DELETE("/shutoffs/:id", handler.DeleteShutoff)
	return r
}

func TestShutoffHandler_CreateShutoff(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 201 on success", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			createShutoffFn: func(_, propertyID string, utility models.UtilityType, location, _ string) (*models.ShutoffPoint, error) {
				return &models.ShutoffPoint{
					Base:       models.Base{ID: uuid.New()},
					PropertyID: propertyID,
					Utility:    utility,
					Location:   location,
				}, nil
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/shutoffs",
			`{"utility":"water","location":"Basement, behind the furnace"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		shutoff := result["shutoff_point"].(map[string]interface{})
		if shutoff["utility"] != "water" {
			t.Errorf("expected water, got %v", shutoff["utility"])
		}
		if shutoff["location"] != "Basement, behind the furnace" {
			t.Errorf("unexpected location: %v", shutoff["location"])
		}
	})

	t.Run("returns 400 on missing utility", func(t *testing.T) {
		handler := NewShutoffHandler(&mockShutoffService{}, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/shutoffs",
			`{"location":"Basement"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown utility", func(t *testing.T) {
		handler := NewShutoffHandler(&mockShutoffService{}, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/shutoffs",
			`{"utility":"internet","location":"Basement"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing location", func(t *testing.T) {
		handler := NewShutoffHandler(&mockShutoffService{}, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/shutoffs", `{"utility":"gas"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on missing property", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			createShutoffFn: func(_, _ string, _ models.UtilityType, _, _ string) (*models.ShutoffPoint, error) {
				return nil, apperrors.ErrPropertyNotFound
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/shutoffs",
			`{"utility":"water","location":"Basement"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PROPERTY_NOT_FOUND")
	})
}

func TestShutoffHandler_GetShutoffs(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 200 with paginated shutoff points", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			getPropertyShutoffsFn: func(_, _ string, _ pagination.PageRequest) (*pagination.PageResponse[models.ShutoffPoint], error) {
				resp := pagination.NewPageResponse([]models.ShutoffPoint{
					{Base: models.Base{ID: uuid.New()}, Utility: models.UtilityWater, Location: "Basement"},
					{Base: models.Base{ID: uuid.New()}, Utility: models.UtilityGas, Location: "Outside, north wall"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/shutoffs", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 shutoff points, got %d", len(data))
		}
	})
}

func TestShutoffHandler_GetShutoff(t *testing.T) {
	shutoffID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			getShutoffByIDFn: func(_, shutoffID string) (*models.ShutoffPoint, error) {
				return &models.ShutoffPoint{Base: models.Base{ID: shutoffID}, Utility: models.UtilityWater}, nil
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "GET", "/shutoffs/"+shutoffID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		shutoff := result["shutoff_point"].(map[string]interface{})
		if shutoff["id"] != shutoffID {
			t.Errorf("expected %s, got %v", shutoffID, shutoff["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			getShutoffByIDFn: func(_, _ string) (*models.ShutoffPoint, error) {
				return nil, apperrors.ErrShutoffNotFound
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "GET", "/shutoffs/"+shutoffID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SHUTOFF_NOT_FOUND")
	})
}

func TestShutoffHandler_UpdateShutoff(t *testing.T) {
	shutoffID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			updateShutoffFn: func(_, shutoffID string, _ *models.UtilityType, location, _ string) (*models.ShutoffPoint, error) {
				return &models.ShutoffPoint{Base: models.Base{ID: shutoffID}, Location: location}, nil
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "PUT", "/shutoffs/"+shutoffID, `{"location":"Garage"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		shutoff := result["shutoff_point"].(map[string]interface{})
		if shutoff["location"] != "Garage" {
			t.Errorf("expected Garage, got %v", shutoff["location"])
		}
	})

	t.Run("omitted utility stays untouched", func(t *testing.T) {
		var captured *models.UtilityType
		shutoffSvc := &mockShutoffService{
			updateShutoffFn: func(_, _ string, utility *models.UtilityType, _, _ string) (*models.ShutoffPoint, error) {
				captured = utility
				return &models.ShutoffPoint{}, nil
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		doRequest(r, "PUT", "/shutoffs/"+shutoffID, `{"location":"Garage"}`)

		if captured != nil {
			t.Errorf("expected nil utility, got %v", *captured)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			updateShutoffFn: func(_, _ string, _ *models.UtilityType, _, _ string) (*models.ShutoffPoint, error) {
				return nil, apperrors.ErrShutoffNotFound
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "PUT", "/shutoffs/"+shutoffID, `{"location":"Garage"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestShutoffHandler_DeleteShutoff(t *testing.T) {
	shutoffID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewShutoffHandler(&mockShutoffService{}, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "DELETE", "/shutoffs/"+shutoffID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Shutoff point deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		shutoffSvc := &mockShutoffService{
			deleteShutoffFn: func(_, _ string) error {
				return apperrors.ErrShutoffNotFound
			},
		}
		handler := NewShutoffHandler(shutoffSvc, &mockAuditService{})
		r := setupShutoffRouter(handler)

		rec := doRequest(r, "DELETE", "/shutoffs/"+shutoffID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SHUTOFF_NOT_FOUND")
	})
}
