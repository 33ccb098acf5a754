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

type mockPaintCodeService struct {
	createPaintCodeFn       func(userID, propertyID string, roomID *string, brand, colorName, code string, finish models.PaintFinish, notes string) (*models.PaintCode, error)
	getPropertyPaintCodesFn func(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.PaintCode], error)
	getPaintCodeByIDFn      func(userID, paintCodeID string) (*models.PaintCode, error)
	updatePaintCodeFn       func(userID, paintCodeID string, roomID *string, brand, colorName, code string, finish *models.PaintFinish, notes string) (*models.PaintCode, error)
	deletePaintCodeFn       func(userID, paintCodeID string) error
}

func (m *mockPaintCodeService) CreatePaintCode(userID, propertyID string, roomID *string, brand, colorName, code string, finish models.PaintFinish, notes string) (*models.PaintCode, error) {
	if m.createPaintCodeFn != nil {
		return m.createPaintCodeFn(userID, propertyID, roomID, brand, colorName, code, finish, notes)
	}
	return &models.PaintCode{}, nil
}

func (m *mockPaintCodeService) GetPropertyPaintCodes(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.PaintCode], error) {
	if m.getPropertyPaintCodesFn != nil {
		return m.getPropertyPaintCodesFn(userID, propertyID, page)
	}
	resp := pagination.NewPageResponse([]models.PaintCode{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPaintCodeService) GetPaintCodeByID(userID, paintCodeID string) (*models.PaintCode, error) {
	if m.getPaintCodeByIDFn != nil {
		return m.getPaintCodeByIDFn(userID, paintCodeID)
	}
	return &models.PaintCode{}, nil
}

func (m *mockPaintCodeService) UpdatePaintCode(userID, paintCodeID string, roomID *string, brand, colorName, code string, finish *models.PaintFinish, notes string) (*models.PaintCode, error) {
	if m.updatePaintCodeFn != nil {
		return m.updatePaintCodeFn(userID, paintCodeID, roomID, brand, colorName, code, finish, notes)
	}
	return &models.PaintCode{}, nil
}

func (m *mockPaintCodeService) DeletePaintCode(userID, paintCodeID string) error {
	if m.deletePaintCodeFn != nil {
		return m.deletePaintCodeFn(userID, paintCodeID)
	}
	return nil
}

var _ services.PaintCodeServicer = (*mockPaintCodeService)(nil)

func setupPaintCodeRouter(handler *PaintCodeHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.POST("/properties/:id/paint-codes", handler.CreatePaintCode)
	auth.GET("/properties/:id/paint-codes", handler.GetPaintCodes)
	auth.GET("/paint-codes/:id", handler.GetPaintCode)
	auth.PUT("/paint-codes/:id", handler.UpdatePaintCode)
	auth.DELETE("/paint-codes/:id", handler.DeletePaintCode)
	return r
}

func TestPaintCodeHandler_CreatePaintCode(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 201 on success", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			createPaintCodeFn: func(_, propertyID string, roomID *string, brand, colorName, code string, finish models.PaintFinish, _ string) (*models.PaintCode, error) {
				return &models.PaintCode{
					Base:       models.Base{ID: uuid.New()},
					PropertyID: propertyID,
					RoomID:     roomID,
					Brand:      brand,
					ColorName:  colorName,
					Code:       code,
					Finish:     finish,
				}, nil
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/paint-codes",
			`{"color_name":"Hale Navy","brand":"Benjamin Moore","code":"HC-154","finish":"eggshell"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		paint := result["paint_code"].(map[string]interface{})
		if paint["color_name"] != "Hale Navy" {
			t.Errorf("expected Hale Navy, got %v", paint["color_name"])
		}
		if paint["finish"] != "eggshell" {
			t.Errorf("expected eggshell, got %v", paint["finish"])
		}
	})

	t.Run("returns 400 on missing color name", func(t *testing.T) {
		handler := NewPaintCodeHandler(&mockPaintCodeService{}, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/paint-codes",
			`{"brand":"Benjamin Moore"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown finish", func(t *testing.T) {
		handler := NewPaintCodeHandler(&mockPaintCodeService{}, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/paint-codes",
			`{"color_name":"Hale Navy","finish":"glittery"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on room from another property", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			createPaintCodeFn: func(_, _ string, _ *string, _, _, _ string, _ models.PaintFinish, _ string) (*models.PaintCode, error) {
				return nil, apperrors.ErrRoomMismatch
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/paint-codes",
			`{"color_name":"Hale Navy","room_id":"`+uuid.New()+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ROOM_MISMATCH")
	})

	t.Run("returns 404 on missing property", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			createPaintCodeFn: func(_, _ string, _ *string, _, _, _ string, _ models.PaintFinish, _ string) (*models.PaintCode, error) {
				return nil, apperrors.ErrPropertyNotFound
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/paint-codes",
			`{"color_name":"Hale Navy"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPaintCodeHandler_GetPaintCodes(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 200 with paginated paint codes", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			getPropertyPaintCodesFn: func(_, _ string, _ pagination.PageRequest) (*pagination.PageResponse[models.PaintCode], error) {
				resp := pagination.NewPageResponse([]models.PaintCode{
					{Base: models.Base{ID: uuid.New()}, ColorName: "Hale Navy"},
					{Base: models.Base{ID: uuid.New()}, ColorName: "Swiss Coffee"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/paint-codes", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 paint codes, got %d", len(data))
		}
	})
}

func TestPaintCodeHandler_GetPaintCode(t *testing.T) {
	paintCodeID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			getPaintCodeByIDFn: func(_, paintCodeID string) (*models.PaintCode, error) {
				return &models.PaintCode{Base: models.Base{ID: paintCodeID}, ColorName: "Hale Navy"}, nil
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "GET", "/paint-codes/"+paintCodeID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		paint := result["paint_code"].(map[string]interface{})
		if paint["id"] != paintCodeID {
			t.Errorf("expected %s, got %v", paintCodeID, paint["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			getPaintCodeByIDFn: func(_, _ string) (*models.PaintCode, error) {
				return nil, apperrors.ErrPaintNotFound
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "GET", "/paint-codes/"+paintCodeID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PAINT_CODE_NOT_FOUND")
	})
}

func TestPaintCodeHandler_UpdatePaintCode(t *testing.T) {
	paintCodeID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			updatePaintCodeFn: func(_, paintCodeID string, _ *string, _, colorName, _ string, _ *models.PaintFinish, _ string) (*models.PaintCode, error) {
				return &models.PaintCode{Base: models.Base{ID: paintCodeID}, ColorName: colorName}, nil
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "PUT", "/paint-codes/"+paintCodeID, `{"color_name":"Deep Ocean"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		paint := result["paint_code"].(map[string]interface{})
		if paint["color_name"] != "Deep Ocean" {
			t.Errorf("expected Deep Ocean, got %v", paint["color_name"])
		}
	})

	t.Run("empty room_id detaches the paint code", func(t *testing.T) {
		var captured *string
		paintSvc := &mockPaintCodeService{
			updatePaintCodeFn: func(_, _ string, roomID *string, _, _, _ string, _ *models.PaintFinish, _ string) (*models.PaintCode, error) {
				captured = roomID
				return &models.PaintCode{}, nil
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		doRequest(r, "PUT", "/paint-codes/"+paintCodeID, `{"room_id":""}`)

		if captured == nil || *captured != "" {
			t.Error("expected a pointer to the empty room id")
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			updatePaintCodeFn: func(_, _ string, _ *string, _, _, _ string, _ *models.PaintFinish, _ string) (*models.PaintCode, error) {
				return nil, apperrors.ErrPaintNotFound
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "PUT", "/paint-codes/"+paintCodeID, `{"color_name":"Deep Ocean"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPaintCodeHandler_DeletePaintCode(t *testing.T) {
	paintCodeID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewPaintCodeHandler(&mockPaintCodeService{}, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "DELETE", "/paint-codes/"+paintCodeID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Paint code deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		paintSvc := &mockPaintCodeService{
			deletePaintCodeFn: func(_, _ string) error {
				return apperrors.ErrPaintNotFound
			},
		}
		handler := NewPaintCodeHandler(paintSvc, &mockAuditService{})
		r := setupPaintCodeRouter(handler)

		rec := doRequest(r, "DELETE", "/paint-codes/"+paintCodeID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PAINT_CODE_NOT_FOUND")
	})
}
