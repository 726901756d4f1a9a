package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"patternmap-api/internal/models"
	"patternmap-api/internal/navigator"
	"patternmap-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// MockPatternService is a mock implementation of the PatternService interface
type MockPatternService struct {
	mock.Mock
}

func (m *MockPatternService) List(ctx context.Context) ([]models.PatternRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PatternRecord), args.Error(1)
}

func (m *MockPatternService) Get(ctx context.Context, index int) (*models.PatternRecord, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(*models.PatternRecord), args.Error(1)
}

func (m *MockPatternService) Navigate(ctx context.Context, index int, dir navigator.Direction) (*models.IndexedPattern, error) {
	args := m.Called(ctx, index, dir)
	return args.Get(0).(*models.IndexedPattern), args.Error(1)
}

func (m *MockPatternService) Markers(ctx context.Context) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx)
	return args.Get(0).(*geojson.FeatureCollection), args.Error(1)
}

var tlemcen = models.PatternRecord{
	Location:      "The Great Mosque, Tlemcen, Algeria",
	Latitude:      34.88390002,
	Longitude:     -1.310460442,
	FileName:      "01_H327.png",
	SymmetryGroup: "p6m",
	Century:       "13",
}

func toJSONValue(t *testing.T, v interface{}) interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	var out interface{}
	assert.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestPatternHandler_ListPatterns(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockPatterns   []models.PatternRecord
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "successful listing",
			mockPatterns:   []models.PatternRecord{tlemcen},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.PatternRecord{tlemcen},
		},
		{
			name:           "service error",
			mockPatterns:   nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockPatternService)
			handler := NewPatternHandler(mockSvc)
			mockSvc.On("List", mock.Anything).Return(tt.mockPatterns, tt.mockError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/patterns", nil)

			// Execute
			handler.ListPatterns(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, toJSONValue(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPatternHandler_GetPattern(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		index          string
		callsService   bool
		mockPattern    *models.PatternRecord
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "invalid index",
			index:          "first",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid pattern index"},
		},
		{
			name:           "found",
			index:          "0",
			callsService:   true,
			mockPattern:    &tlemcen,
			expectedStatus: http.StatusOK,
			expectedBody:   tlemcen,
		},
		{
			name:           "not found",
			index:          "99",
			callsService:   true,
			mockError:      service.ErrPatternNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"error": "pattern not found"},
		},
		{
			name:           "service error",
			index:          "1",
			callsService:   true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPatternService)
			handler := NewPatternHandler(mockSvc)
			if tt.callsService {
				mockSvc.On("Get", mock.Anything, mock.AnythingOfType("int")).Return(tt.mockPattern, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/patterns/"+tt.index, nil)
			c.Params = gin.Params{{Key: "index", Value: tt.index}}

			handler.GetPattern(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, toJSONValue(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPatternHandler_NavigatePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)

	result := &models.IndexedPattern{Index: 0, Pattern: tlemcen}

	tests := []struct {
		name           string
		query          string
		expectedDir    navigator.Direction
		callsService   bool
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing direction",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameter 'direction'"},
		},
		{
			name:           "invalid direction",
			query:          "direction=sideways",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid direction"},
		},
		{
			name:           "direction next",
			query:          "direction=next",
			expectedDir:    navigator.Next,
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   result,
		},
		{
			name:           "direction minus one",
			query:          "direction=-1",
			expectedDir:    navigator.Previous,
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   result,
		},
		{
			name:           "arrow key",
			query:          "key=ArrowLeft",
			expectedDir:    navigator.Previous,
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   result,
		},
		{
			name:           "unsupported key",
			query:          "key=Escape",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "key must be ArrowLeft or ArrowRight"},
		},
		{
			name:           "swipe left",
			query:          "dx=-120&dy=4",
			expectedDir:    navigator.Next,
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   result,
		},
		{
			name:           "short swipe",
			query:          "dx=20&dy=4",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "swipe is not a horizontal navigation gesture"},
		},
		{
			name:           "swipe without dy",
			query:          "dx=-120",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid swipe delta format"},
		},
		{
			name:           "unknown index",
			query:          "direction=1",
			expectedDir:    navigator.Next,
			callsService:   true,
			mockError:      service.ErrPatternNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"error": "pattern not found"},
		},
		{
			name:           "empty catalog",
			query:          "direction=1",
			expectedDir:    navigator.Next,
			callsService:   true,
			mockError:      service.ErrEmptyCatalog,
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"error": "no patterns available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPatternService)
			handler := NewPatternHandler(mockSvc)
			if tt.callsService {
				var ret *models.IndexedPattern
				if tt.mockError == nil {
					ret = result
				}
				mockSvc.On("Navigate", mock.Anything, 2, tt.expectedDir).Return(ret, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/patterns/2/navigate?"+tt.query, nil)
			c.Params = gin.Params{{Key: "index", Value: "2"}}

			handler.NavigatePattern(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, toJSONValue(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPatternHandler_Markers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("geojson body", func(t *testing.T) {
		mockSvc := new(MockPatternService)
		handler := NewPatternHandler(mockSvc)
		mockSvc.On("Markers", mock.Anything).Return(&geojson.FeatureCollection{Features: []*geojson.Feature{}}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/markers", nil)

		handler.Markers(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockPatternService)
		handler := NewPatternHandler(mockSvc)
		mockSvc.On("Markers", mock.Anything).Return((*geojson.FeatureCollection)(nil), assert.AnError)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/markers", nil)

		handler.Markers(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}
