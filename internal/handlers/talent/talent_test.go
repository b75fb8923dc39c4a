package talent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/dto"
	"github.com/GlebRadaev/talentbank/internal/service/talentservice"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/utils"
)

func NewMock(t *testing.T) (*TalentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target string, values url.Values, userID int) *http.Request {
	var r *http.Request
	if values != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListOpen(gomock.Any()).Return([]domain.TalentListing{
		{Talent: domain.Talent{ID: 7, UserID: 1, Title: "Walk", Point: 100}, Name: "Kim"},
	}, nil)
	rr := httptest.NewRecorder()
	handler.List(rr, request(http.MethodGet, "/talent/list", nil, 2))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []dto.TalentResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Kim", body[0].Name)

	service.EXPECT().ListOpen(gomock.Any()).Return(nil, errors.New("db error"))
	rr = httptest.NewRecorder()
	handler.List(rr, request(http.MethodGet, "/talent/list", nil, 2))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMyRequestsHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Unix(500, 0)

	service.EXPECT().ListMine(gomock.Any(), 1).Return([]domain.OwnedTalent{
		{Talent: domain.Talent{ID: 7, Completed: true}, CompletedAt: &at},
	}, nil)
	rr := httptest.NewRecorder()
	handler.MyRequests(rr, request(http.MethodGet, "/talent/my_requests", nil, 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []dto.OwnedTalentResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.NotNil(t, body[0].CompletedAt)
	assert.Equal(t, int64(500), *body[0].CompletedAt)
}

func TestCompletedHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Unix(500, 0)

	service.EXPECT().ListCompleted(gomock.Any(), 2).Return([]domain.CompletedApplication{
		{Application: domain.Application{ID: 3, TalentID: 7, ContributorID: 2, CompletedAt: &at}, Title: "Walk"},
	}, nil)
	rr := httptest.NewRecorder()
	handler.Completed(rr, request(http.MethodGet, "/talent/completed", nil, 2))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []dto.CompletedApplicationResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Walk", body[0].Title)
}

func TestRequestHandler(t *testing.T) {
	handler, service := NewMock(t)
	start, end := time.Unix(1000, 0), time.Unix(2000, 0)

	tests := []struct {
		name         string
		form         url.Values
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			form: url.Values{"title": {"Walk"}, "contents": {"dog"}, "start_at": {"1000"}, "end_at": {"2000"}},
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), 1, "Walk", "dog", start, end).
					Return(&domain.Talent{ID: 7, UserID: 1, Point: 100, StartAt: start, EndAt: end}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing title",
			form:         url.Values{"contents": {"dog"}, "start_at": {"1000"}, "end_at": {"2000"}},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non numeric start",
			form:         url.Values{"title": {"Walk"}, "contents": {"dog"}, "start_at": {"soon"}, "end_at": {"2000"}},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "End before start",
			form: url.Values{"title": {"Walk"}, "contents": {"dog"}, "start_at": {"2000"}, "end_at": {"1000"}},
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), 1, "Walk", "dog", end, start).
					Return(nil, talentservice.ErrInvalidRange)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Request(rr, request(http.MethodPost, "/talent/req_donation", tt.form, 1))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		form         url.Values
		prepareMock  func()
		expectedCode int
		expectedErr  string
	}{
		{
			name: "Applied",
			form: url.Values{"talent_id": {"7"}},
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 7, 2).Return(&domain.Application{ID: 3, TalentID: 7, ContributorID: 2}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing talent id",
			form:         url.Values{},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  utils.CodeInvalidData,
		},
		{
			name: "Unknown talent",
			form: url.Values{"talent_id": {"9"}},
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 9, 2).Return(nil, talentservice.ErrTalentNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  utils.CodeNotFound,
		},
		{
			name: "Already applied",
			form: url.Values{"talent_id": {"7"}},
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 7, 2).Return(nil, talentservice.ErrAlreadyApplied)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  utils.CodeConflict,
		},
		{
			name: "Own talent",
			form: url.Values{"talent_id": {"8"}},
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 8, 2).Return(nil, talentservice.ErrOwnTalent)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  utils.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Apply(rr, request(http.MethodPost, "/talent/apply_donation", tt.form, 2))
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Code)
			}
		})
	}
}

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Unix(500, 0)

	tests := []struct {
		name         string
		talentID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Completed",
			talentID: "7",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 7, 1).
					Return(&domain.Application{ID: 3, TalentID: 7, ContributorID: 2, CompletedAt: &at}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad id",
			talentID:     "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "No application",
			talentID: "7",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 7, 1).Return(nil, talentservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Self dealing",
			talentID: "7",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 7, 1).Return(nil, talentservice.ErrSelfDealing)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Second completion",
			talentID: "7",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 7, 1).Return(nil, talentservice.ErrAlreadyCompleted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Not the requester",
			talentID: "7",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 7, 1).Return(nil, talentservice.ErrNotRequester)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:     "Store failure",
			talentID: "7",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 7, 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := request(http.MethodPut, "/talent/"+tt.talentID, nil, 1)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("talent_id", tt.talentID)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.Complete(rr, r)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
