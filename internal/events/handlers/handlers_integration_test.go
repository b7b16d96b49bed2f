package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alex909w/eventify/internal/common/middleware"
	"github.com/alex909w/eventify/internal/events/models"
	"github.com/alex909w/eventify/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRouter creates a Gin router with event handlers and a fresh
// in-memory store for testing
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store.DB = store.OpenMemory()

	router := gin.New()
	router.GET("/api/v1/events", middleware.OptionalAuth(), ListEvents)
	router.POST("/api/v1/events", middleware.AuthRequired(), CreateEvent)
	router.GET("/api/v1/events/:id", middleware.OptionalAuth(), GetEvent)
	router.PUT("/api/v1/events/:id", middleware.AuthRequired(), UpdateEvent)
	router.DELETE("/api/v1/events/:id", middleware.AuthRequired(), DeleteEvent)
	router.GET("/api/v1/events/:id/attendees", GetAttendees)
	router.GET("/api/v1/users/me/events", middleware.AuthRequired(), GetUserEvents)
	return router
}

func authedRequest(method, url string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+userID)
		req.Header.Set("X-User-Name", "Ana")
	}
	return req
}

func createEvent(t *testing.T, router *gin.Engine, userID string) models.EventDetail {
	t.Helper()

	body, _ := json.Marshal(models.CreateEventRequest{
		Title:       "Noche de Jazz",
		Description: "Una noche de jazz en vivo",
		Location:    "Teatro Nacional",
		Date:        time.Date(2026, time.June, 15, 19, 0, 0, 0, time.UTC),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/v1/events", body, userID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var detail models.EventDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	return detail
}

func TestListEvents_SeedCatalog(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/events", nil, ""))

	assert.Equal(t, http.StatusOK, w.Code)

	var response models.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 4, response.Total)
}

func TestCreateEvent_RequiresAuth(t *testing.T) {
	router := setupTestRouter()

	body, _ := json.Marshal(models.CreateEventRequest{Title: "Sin sesión"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/v1/events", body, ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEvent_InvalidJSON(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/v1/events", []byte("invalid json"), "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAndGetEvent(t *testing.T) {
	router := setupTestRouter()

	detail := createEvent(t, router, "user-1")
	assert.Equal(t, "user-1", detail.OrganizerID)
	assert.Equal(t, 1, detail.Attendees)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/events/"+detail.ID, nil, ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched models.EventDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, detail.Title, fetched.Title)
}

func TestGetEvent_NotFound(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/events/no-such-event", nil, ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEvent_ForbiddenForNonOrganizer(t *testing.T) {
	router := setupTestRouter()
	detail := createEvent(t, router, "user-1")

	body, _ := json.Marshal(models.UpdateEventRequest{Title: "Secuestrado"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("PUT", "/api/v1/events/"+detail.ID, body, "user-2"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteEvent_Success(t *testing.T) {
	router := setupTestRouter()
	detail := createEvent(t, router, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("DELETE", "/api/v1/events/"+detail.ID, nil, "user-1"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/events/"+detail.ID, nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAttendees(t *testing.T) {
	router := setupTestRouter()
	detail := createEvent(t, router, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/events/"+detail.ID+"/attendees", nil, ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var response models.AttendeeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
}

func TestGetUserEvents(t *testing.T) {
	router := setupTestRouter()
	detail := createEvent(t, router, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/users/me/events?type=organizing", nil, "user-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	var response models.UserEventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1, response.Total)
	assert.Equal(t, detail.ID, response.Events[0].ID)
}

func TestGetUserEvents_UnknownType(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/api/v1/users/me/events?type=bookmarked", nil, "user-1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
