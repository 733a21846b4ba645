package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "foodcritic/internal/delivery/api/middleware"
	apivalidator "foodcritic/internal/delivery/api/validator"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"
	mockUC "foodcritic/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Reasons map[string]string `json:"reasons"`
}

func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = apivalidator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_GetUser(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(uc *mockUC.MockUserUsecase)
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:   "found",
			target: "/user/7",
			setup: func(uc *mockUC.MockUserUsecase) {
				uc.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.User{ID: 7, Name: "Ann"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/user/7",
			setup: func(uc *mockUC.MockUserUsecase) {
				uc.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, domainerrors.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
			wantMsg:    "No User with the id 7 was found!",
		},
		{
			name:       "malformed id",
			target:     "/user/seven",
			setup:      func(*mockUC.MockUserUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "non-positive id",
			target:     "/user/0",
			setup:      func(*mockUC.MockUserUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:   "storage failure",
			target: "/user/7",
			setup: func(uc *mockUC.MockUserUsecase) {
				uc.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockUserUsecase(t)
			tt.setup(uc)

			e := newTestEcho()
			h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: discardLogger()})
			e.GET("/user/:id", h.GetUser)

			rec := serve(e, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode == "" {
				return
			}
			env := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Error.Message)
			}
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("id supplied", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		e := newTestEcho()
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: discardLogger()})
		e.POST("/user", h.CreateUser)

		rec := serve(e, http.MethodPost, "/user", `{"id":3,"name":"Ann"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A new user cannot already have an id", decodeError(t, rec).Error.Message)
	})

	t.Run("validation reasons are rendered", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		uc.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewValidationError(map[string]string{"email": "may not be empty"})).Once()

		e := newTestEcho()
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: discardLogger()})
		e.POST("/user", h.CreateUser)

		rec := serve(e, http.MethodPost, "/user", `{"name":"Ann"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, map[string]string{"email": "may not be empty"}, env.Reasons)
	})

	t.Run("conflict", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		uc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserEmailTaken).Once()

		e := newTestEcho()
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: discardLogger()})
		e.POST("/user", h.CreateUser)

		rec := serve(e, http.MethodPost, "/user", `{"name":"Ann","email":"ann@example.com","phonenumber":"07123456789"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domainerrors.ErrUserEmailTaken.Reasons(), decodeError(t, rec).Reasons)
	})
}

func TestReviewHandler_CreateReview(t *testing.T) {
	user := &entity.User{ID: 1, Name: "Ann", Email: "ann@example.com", PhoneNumber: "07123456789"}
	restaurant := &entity.Restaurant{ID: 2, Name: "Nandos", PhoneNumber: "02079460000", Postcode: "SW1A1A"}
	body := `{"review":"great","rating":5,"user":{"id":1},"restaurant":{"id":2}}`

	newHandler := func(t *testing.T) (*echo.Echo, *mockUC.MockReviewUsecase, *mockUC.MockUserUsecase, *mockUC.MockRestaurantUsecase) {
		reviewUC := mockUC.NewMockReviewUsecase(t)
		userUC := mockUC.NewMockUserUsecase(t)
		restaurantUC := mockUC.NewMockRestaurantUsecase(t)

		e := newTestEcho()
		h := NewReviewHandler(ReviewHandlerParams{
			ReviewUC:     reviewUC,
			UserUC:       userUC,
			RestaurantUC: restaurantUC,
			Logger:       discardLogger(),
		})
		e.POST("/reviews", h.CreateReview)

		return e, reviewUC, userUC, restaurantUC
	}

	t.Run("resolved references are stored", func(t *testing.T) {
		e, reviewUC, userUC, restaurantUC := newHandler(t)
		userUC.EXPECT().FindByID(mock.Anything, int64(1)).Return(user, nil).Once()
		restaurantUC.EXPECT().FindByID(mock.Anything, int64(2)).Return(restaurant, nil).Once()
		reviewUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.User == user && r.Restaurant == restaurant && r.Rating == 5
		})).RunAndReturn(func(_ context.Context, r *entity.Review) (*entity.Review, error) {
			r.ID = 10
			return r, nil
		}).Once()

		rec := serve(e, http.MethodPost, "/reviews", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Nandos"`)
	})

	t.Run("missing user", func(t *testing.T) {
		e, _, userUC, restaurantUC := newHandler(t)
		userUC.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, domainerrors.ErrUserNotFound).Once()
		restaurantUC.EXPECT().FindByID(mock.Anything, int64(2)).Return(restaurant, nil).Once()

		rec := serve(e, http.MethodPost, "/reviews", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeError(t, rec)
		assert.Equal(t, "INVALID_REFERENCE", env.Error.Code)
		assert.Equal(t, map[string]string{"user.id": "UserId is incorrect"}, env.Reasons)
	})

	t.Run("user lookup failure is not a reference error", func(t *testing.T) {
		e, _, userUC, _ := newHandler(t)
		userUC.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, errors.New("timeout")).Once()

		rec := serve(e, http.MethodPost, "/reviews", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Empty(t, env.Reasons)
	})

	t.Run("id supplied", func(t *testing.T) {
		e, _, _, _ := newHandler(t)

		rec := serve(e, http.MethodPost, "/reviews", `{"id":4,"review":"great","rating":5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ID_NOT_ALLOWED", decodeError(t, rec).Error.Code)
	})
}

func TestReviewHandler_ListReviews(t *testing.T) {
	reviews := []*entity.Review{
		{ID: 1, User: &entity.User{ID: 1}, Restaurant: &entity.Restaurant{ID: 2}},
		{ID: 2, User: &entity.User{ID: 1}, Restaurant: &entity.Restaurant{ID: 3}},
	}

	tests := []struct {
		name    string
		target  string
		setup   func(uc *mockUC.MockReviewUsecase)
		wantIDs []int64
	}{
		{
			name:   "all",
			target: "/reviews",
			setup: func(uc *mockUC.MockReviewUsecase) {
				uc.EXPECT().FindAll(mock.Anything).Return(reviews, nil).Once()
			},
			wantIDs: []int64{1, 2},
		},
		{
			name:   "by restaurant",
			target: "/reviews?restaurantId=3",
			setup: func(uc *mockUC.MockReviewUsecase) {
				uc.EXPECT().FindAllByRestaurantID(mock.Anything, int64(3)).Return(reviews[1:], nil).Once()
			},
			wantIDs: []int64{2},
		},
		{
			name:   "by user and restaurant",
			target: "/reviews?userId=1&restaurantId=2",
			setup: func(uc *mockUC.MockReviewUsecase) {
				uc.EXPECT().FindAllByUserID(mock.Anything, int64(1)).Return(reviews, nil).Once()
			},
			wantIDs: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockReviewUsecase(t)
			tt.setup(uc)

			e := newTestEcho()
			h := NewReviewHandler(ReviewHandlerParams{ReviewUC: uc, Logger: discardLogger()})
			e.GET("/reviews", h.ListReviews)

			rec := serve(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var env struct {
				Data []struct {
					ID int64 `json:"id"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

			ids := make([]int64, 0, len(env.Data))
			for _, review := range env.Data {
				ids = append(ids, review.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestContactHandler_DeleteContact(t *testing.T) {
	contact := &entity.Contact{ID: 5, Email: "jane@example.com"}

	t.Run("deleted", func(t *testing.T) {
		uc := mockUC.NewMockContactUsecase(t)
		uc.EXPECT().FindByID(mock.Anything, int64(5)).Return(contact, nil).Once()
		uc.EXPECT().Delete(mock.Anything, contact).Return(contact, nil).Once()

		e := newTestEcho()
		h := NewContactHandler(ContactHandlerParams{ContactUC: uc, Logger: discardLogger()})
		e.DELETE("/contacts/:id", h.DeleteContact)

		rec := serve(e, http.MethodDelete, "/contacts/5", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown", func(t *testing.T) {
		uc := mockUC.NewMockContactUsecase(t)
		uc.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, domainerrors.ErrContactNotFound).Once()

		e := newTestEcho()
		h := NewContactHandler(ContactHandlerParams{ContactUC: uc, Logger: discardLogger()})
		e.DELETE("/contacts/:id", h.DeleteContact)

		rec := serve(e, http.MethodDelete, "/contacts/5", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No Contact with the id 5 was found!", decodeError(t, rec).Error.Message)
	})
}

func TestRestaurantHandler_GetReviewQRCode(t *testing.T) {
	uc := mockUC.NewMockRestaurantUsecase(t)
	uc.EXPECT().ReviewQRCode(mock.Anything, int64(2)).Return([]byte("\x89PNG"), nil).Once()

	e := newTestEcho()
	h := NewRestaurantHandler(RestaurantHandlerParams{RestaurantUC: uc, Logger: discardLogger()})
	e.GET("/restaurants/:id/qr", h.GetReviewQRCode)

	rec := serve(e, http.MethodGet, "/restaurants/2/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
}

func TestReviewHandler_ListReviewsByUser(t *testing.T) {
	reviews := []*entity.Review{
		{ID: 1, User: &entity.User{ID: 1}, Restaurant: &entity.Restaurant{ID: 2}},
		{ID: 2, User: &entity.User{ID: 4}, Restaurant: &entity.Restaurant{ID: 2}},
	}

	tests := []struct {
		name       string
		target     string
		setup      func(uc *mockUC.MockReviewUsecase)
		wantStatus int
		wantIDs    []int64
	}{
		{
			name:   "without userId lists every review",
			target: "/reviews/getByUserId",
			setup: func(uc *mockUC.MockReviewUsecase) {
				uc.EXPECT().FindAll(mock.Anything).Return(reviews, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantIDs:    []int64{1, 2},
		},
		{
			name:   "by user",
			target: "/reviews/getByUserId?userId=4",
			setup: func(uc *mockUC.MockReviewUsecase) {
				uc.EXPECT().FindAllByUserID(mock.Anything, int64(4)).Return(reviews[1:], nil).Once()
			},
			wantStatus: http.StatusOK,
			wantIDs:    []int64{2},
		},
		{
			name:       "negative userId",
			target:     "/reviews/getByUserId?userId=-4",
			setup:      func(*mockUC.MockReviewUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed userId",
			target:     "/reviews/getByUserId?userId=abc",
			setup:      func(*mockUC.MockReviewUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockReviewUsecase(t)
			tt.setup(uc)

			e := newTestEcho()
			h := NewReviewHandler(ReviewHandlerParams{ReviewUC: uc, Logger: discardLogger()})
			e.GET("/reviews/getByUserId", h.ListReviewsByUser)

			rec := serve(e, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantIDs == nil {
				return
			}

			var env struct {
				Data []struct {
					ID int64 `json:"id"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

			ids := make([]int64, 0, len(env.Data))
			for _, review := range env.Data {
				ids = append(ids, review.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
