package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSwapRequestHandler_CreateSwapRequest(t *testing.T) {
	validBody := models.CreateSwapRequestRequest{
		ReceiverID:     "receiver-1",
		RequesterSkill: "Python",
		ReceiverSkill:  "Guitar",
		Message:        "let's swap",
	}

	tests := []struct {
		name           string
		query          string
		body           interface{}
		mockSetup      func(*mocks.MockSwapRequestService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:  "successful creation",
			query: "?requester_id=requester-1",
			body:  validBody,
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.CreateSwapRequestFunc = func(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error) {
					assert.Equal(t, "requester-1", requesterID)
					return &models.SwapRequest{
						ID:             "swap-1",
						RequesterID:    requesterID,
						ReceiverID:     req.ReceiverID,
						RequesterSkill: req.RequesterSkill,
						ReceiverSkill:  req.ReceiverSkill,
						Status:         models.SwapStatusPending,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "swap-1", resp["id"])
				assert.Equal(t, "pending", resp["status"])
			},
		},
		{
			name:           "missing requester_id",
			query:          "",
			body:           validBody,
			mockSetup:      func(m *mocks.MockSwapRequestService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "requester_id is required", resp["error"])
			},
		},
		{
			name:  "missing required fields",
			query: "?requester_id=requester-1",
			body: map[string]string{
				"receiver_id": "receiver-1",
			},
			mockSetup:      func(m *mocks.MockSwapRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "receiver not found",
			query: "?requester_id=requester-1",
			body:  validBody,
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.CreateSwapRequestFunc = func(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "request to oneself",
			query: "?requester_id=receiver-1",
			body:  validBody,
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.CreateSwapRequestFunc = func(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error) {
					return nil, apperrors.ErrSelfSwap
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "cannot send request to yourself", resp["error"])
			},
		},
		{
			name:  "internal server error",
			query: "?requester_id=requester-1",
			body:  validBody,
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.CreateSwapRequestFunc = func(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error) {
					return nil, assert.AnError
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockSwapRequestService{}
			tt.mockSetup(mockService)

			handler := NewSwapRequestHandler(mockService)

			router := gin.New()
			router.POST("/api/swap-requests", handler.CreateSwapRequest)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/swap-requests"+tt.query, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestSwapRequestHandler_ListSwapRequests(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockSwapRequestService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:  "lists all requests",
			query: "",
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.ListSwapRequestsFunc = func(ctx context.Context, userID string) ([]models.SwapRequest, error) {
					assert.Empty(t, userID)
					return []models.SwapRequest{{ID: "s1"}, {ID: "s2"}}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp []map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
			},
		},
		{
			name:  "scopes to a user",
			query: "?user_id=user-1",
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.ListSwapRequestsFunc = func(ctx context.Context, userID string) ([]models.SwapRequest, error) {
					assert.Equal(t, "user-1", userID)
					return []models.SwapRequest{{ID: "s1"}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "internal server error",
			query: "",
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.ListSwapRequestsFunc = func(ctx context.Context, userID string) ([]models.SwapRequest, error) {
					return nil, assert.AnError
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockSwapRequestService{}
			tt.mockSetup(mockService)

			handler := NewSwapRequestHandler(mockService)

			router := gin.New()
			router.GET("/api/swap-requests", handler.ListSwapRequests)

			req := httptest.NewRequest(http.MethodGet, "/api/swap-requests"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestSwapRequestHandler_UpdateSwapRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockSwapRequestService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "accepts a pending request",
			body: models.UpdateSwapRequestRequest{Status: models.SwapStatusAccepted},
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.UpdateSwapRequestStatusFunc = func(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
					assert.Equal(t, "swap-1", id)
					assert.Equal(t, models.SwapStatusAccepted, status)
					return &models.SwapRequest{ID: id, Status: status}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "accepted", resp["status"])
			},
		},
		{
			name:           "rejects an unknown status",
			body:           map[string]string{"status": "paused"},
			mockSetup:      func(m *mocks.MockSwapRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects a missing status",
			body:           map[string]string{},
			mockSetup:      func(m *mocks.MockSwapRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			body: models.UpdateSwapRequestRequest{Status: models.SwapStatusCancelled},
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.UpdateSwapRequestStatusFunc = func(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
					return nil, apperrors.ErrSwapRequestNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockSwapRequestService{}
			tt.mockSetup(mockService)

			handler := NewSwapRequestHandler(mockService)

			router := gin.New()
			router.PUT("/api/swap-requests/:id", handler.UpdateSwapRequest)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/swap-requests/swap-1", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestSwapRequestHandler_DeleteSwapRequest(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockSwapRequestService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful deletion",
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.DeleteSwapRequestFunc = func(ctx context.Context, id string) error {
					assert.Equal(t, "swap-1", id)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "swap request deleted successfully", resp["message"])
			},
		},
		{
			name: "not found",
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.DeleteSwapRequestFunc = func(ctx context.Context, id string) error {
					return apperrors.ErrSwapRequestNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal server error",
			mockSetup: func(m *mocks.MockSwapRequestService) {
				m.DeleteSwapRequestFunc = func(ctx context.Context, id string) error {
					return assert.AnError
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockSwapRequestService{}
			tt.mockSetup(mockService)

			handler := NewSwapRequestHandler(mockService)

			router := gin.New()
			router.DELETE("/api/swap-requests/:id", handler.DeleteSwapRequest)

			req := httptest.NewRequest(http.MethodDelete, "/api/swap-requests/swap-1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
