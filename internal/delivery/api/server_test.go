package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"foodcritic/config"
	apimiddleware "foodcritic/internal/delivery/api/middleware"
	"foodcritic/internal/delivery/api/router"
	"foodcritic/internal/delivery/api/router/handler"
	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/infra/persistence/memory"
	"foodcritic/internal/infra/pubsub"
	"foodcritic/internal/infra/qrcode"
	"foodcritic/internal/usecase/impl"
	"foodcritic/internal/usecase/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data    json.RawMessage   `json:"data"`
	Error   *errorBody        `json:"error"`
	Reasons map[string]string `json:"reasons"`
	Meta    struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	store := memory.NewStore(logger)
	txManager := memory.NewTransactionManager(store)
	engine, err := validator.NewEngine()
	require.NoError(t, err)

	contacts := impl.NewContactService(impl.ContactServiceParams{
		TxManager:   txManager,
		ContactRepo: store.ContactRepository(),
		Validator:   validator.NewContactValidator(engine, store.ContactRepository()),
		Logger:      logger,
	})
	users := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager,
		UserRepo:  store.UserRepository(),
		Validator: validator.NewUserValidator(engine, store.UserRepository()),
		Logger:    logger,
	})
	restaurants := impl.NewRestaurantService(impl.RestaurantServiceParams{
		TxManager:      txManager,
		RestaurantRepo: store.RestaurantRepository(),
		Validator:      validator.NewRestaurantValidator(engine, store.RestaurantRepository()),
		QRCodeService:  qrcode.NewQRCodeService(128, "M", "http://localhost/reviews"),
		Logger:         logger,
	})
	reviews := impl.NewReviewService(impl.ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: store.ReviewRepository(),
		Validator:  validator.NewReviewValidator(engine, store.ReviewRepository()),
		Publisher:  pubsub.NewNoopPublisher(logger),
		Logger:     logger,
	})

	e := NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		ContactHandler:    handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: contacts, Logger: logger}),
		UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: users, Logger: logger}),
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{RestaurantUC: restaurants, Logger: logger}),
		ReviewHandler: handler.NewReviewHandler(handler.ReviewHandlerParams{
			ReviewUC:     reviews,
			UserUC:       users,
			RestaurantUC: restaurants,
			Logger:       logger,
		}),
	}).RegisterRoutes(e)

	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

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

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func createdID(t *testing.T, env envelope) int64 {
	t.Helper()

	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.NotZero(t, body.ID)

	return body.ID
}

func path(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

const (
	annJSON    = `{"name":"Ann","email":"ann@example.com","phonenumber":"07123456789"}`
	nandosJSON = `{"name":"Nandos","phonenumber":"02079460000","postcode":"SW1A1A"}`
	janeJSON   = `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phoneNumber":"(212) 555-1212","birthDate":"1980-01-02"}`
)

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestCreate_PresetIDRejected(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/user", `{"id":5,"name":"Ann","email":"ann@example.com","phonenumber":"07123456789"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID_NOT_ALLOWED", env.Error.Code)

	rec, env = do(t, e, http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestCreate_MalformedOrMissingBody(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{`{"name":`, `null`, ``} {
		rec, _ := do(t, e, http.MethodPost, "/restaurants", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestUser_RoundTripAndDuplicate(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/user", annJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := createdID(t, env)

	rec, env = do(t, e, http.MethodGet, path("/user", id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":`+strconv.FormatInt(id, 10)+`,"name":"Ann","email":"ann@example.com","phonenumber":"07123456789"}`, string(env.Data))

	rec, env = do(t, e, http.MethodPost, "/user", annJSON)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, map[string]string{"email": "That email is already used, please use a unique email"}, env.Reasons)
}

func TestUser_EmptyFieldsGiveThreeReasons(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/user", `{"name":"","email":"","phonenumber":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Len(t, env.Reasons, 3)
}

func TestDelete_UnknownThenDeleted(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodDelete, "/user/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No User with the id 42 was found!", env.Error.Message)

	rec, _ = do(t, e, http.MethodDelete, "/user/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env = do(t, e, http.MethodPost, "/restaurants", nandosJSON)
	id := createdID(t, env)

	rec, _ = do(t, e, http.MethodDelete, path("/restaurants", id), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, e, http.MethodGet, path("/restaurants", id), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReview_References(t *testing.T) {
	e := newTestServer(t)

	_, env := do(t, e, http.MethodPost, "/user", annJSON)
	userID := createdID(t, env)

	rec, env := do(t, e, http.MethodPost, "/reviews", `{"review":"ok","rating":3,"user":{"id":`+strconv.FormatInt(userID, 10)+`},"restaurant":{"id":99}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"restaurant.id": "RestaurantId is incorrect"}, env.Reasons)

	rec, env = do(t, e, http.MethodPost, "/reviews", `{"review":"ok","rating":3,"user":{"id":77},"restaurant":{"id":99}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{
		"user.id":       "UserId is incorrect",
		"restaurant.id": "RestaurantId is incorrect",
	}, env.Reasons)

	rec, env = do(t, e, http.MethodPost, "/reviews", `{"review":"ok","rating":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, env.Reasons, 2)
}

func TestReview_SecondReviewConflicts(t *testing.T) {
	e := newTestServer(t)

	_, env := do(t, e, http.MethodPost, "/user", annJSON)
	userID := strconv.FormatInt(createdID(t, env), 10)
	_, env = do(t, e, http.MethodPost, "/restaurants", nandosJSON)
	restaurantID := strconv.FormatInt(createdID(t, env), 10)

	body := `{"review":"great","rating":5,"user":{"id":` + userID + `},"restaurant":{"id":` + restaurantID + `}}`
	rec, env := do(t, e, http.MethodPost, "/reviews", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	reviewID := createdID(t, env)

	rec, env = do(t, e, http.MethodPost, "/reviews", `{"review":"meh","rating":1,"user":{"id":`+userID+`},"restaurant":{"id":`+restaurantID+`}}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, env.Reasons, 1)

	rec, env = do(t, e, http.MethodGet, "/reviews/getByUserId?userId="+userID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []struct {
		ID   int64 `json:"id"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, reviewID, listed[0].ID)
	assert.Equal(t, "Ann", listed[0].User.Name)

	rec, _ = do(t, e, http.MethodGet, "/reviews?restaurantId="+restaurantID+"&userId="+userID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, e, http.MethodGet, "/reviews?userId=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env = do(t, e, http.MethodPost, "/user", `{"name":"Bob","email":"bob@example.com","phonenumber":"07123456780"}`)
	otherUserID := strconv.FormatInt(createdID(t, env), 10)
	rec, _ = do(t, e, http.MethodPost, "/reviews", `{"review":"fine","rating":3,"user":{"id":`+otherUserID+`},"restaurant":{"id":`+restaurantID+`}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/reviews/getByUserId", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Len(t, listed, 2)

	rec, _ = do(t, e, http.MethodGet, "/reviews/getByUserId?userId=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, e, http.MethodDelete, path("/reviews", reviewID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, e, http.MethodGet, path("/reviews", reviewID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContact_Lifecycle(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/contacts", janeJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := createdID(t, env)
	idStr := strconv.FormatInt(id, 10)

	rec, env = do(t, e, http.MethodGet, "/contacts?email=jane@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"birthDate":"1980-01-02"`)

	rec, _ = do(t, e, http.MethodGet, "/contacts?email=nobody@example.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/contacts?lastname=Doe", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"id":`+idStr)

	updated := `{"firstName":"Jane","lastName":"Smith","email":"jane@example.com","phoneNumber":"(212) 555-1212","birthDate":"1980-01-02"}`
	rec, env = do(t, e, http.MethodPut, path("/contacts", id), updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"lastName":"Smith"`)

	mismatched := `{"id":` + strconv.FormatInt(id+1, 10) + `,"firstName":"Jane","lastName":"Smith","email":"jane@example.com","phoneNumber":"(212) 555-1212","birthDate":"1980-01-02"}`
	rec, env = do(t, e, http.MethodPut, path("/contacts", id), mismatched)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID_MISMATCH", env.Error.Code)

	rec, _ = do(t, e, http.MethodPut, "/contacts", updated)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, e, http.MethodPut, "/contacts/999", updated)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	future := `{"firstName":"Jane","lastName":"Doe","email":"new@example.com","phoneNumber":"(212) 555-1212","birthDate":"2999-01-01"}`
	rec, env = do(t, e, http.MethodPost, "/contacts", future)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Birthdates can not be in the future. Please choose one from the past", env.Reasons["birthDate"])

	rec, _ = do(t, e, http.MethodDelete, path("/contacts", id), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRestaurant_QRCode(t *testing.T) {
	e := newTestServer(t)

	_, env := do(t, e, http.MethodPost, "/restaurants", nandosJSON)
	id := createdID(t, env)

	rec, _ := do(t, e, http.MethodGet, path("/restaurants", id)+"/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec, _ = do(t, e, http.MethodGet, "/restaurants/12345/qr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/restaurants?phonenumber=02079460000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"Nandos"`)
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
