package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamestore/backend/internal/events"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReview_CreateThenUpdate(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)
	userID, token := env.user(t, "rina@example.com", false)

	w := env.request(http.MethodPost, "/api/v1/games/g-zelda/reviews", token, gin.H{
		"rating": 4, "review_text": "  Seru  ",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	saved := decode[ReviewSavedResponse](t, w)
	assert.Equal(t, "Review saved", saved.Message)
	assert.Equal(t, userID, saved.Review.UserID)
	assert.True(t, saved.Review.IsRecommended)
	require.NotNil(t, saved.Review.ReviewText)
	assert.Equal(t, "Seru", *saved.Review.ReviewText)
	assert.Equal(t, stats.ReviewSummary{Total: 1, AverageRating: 4, RoundedRating: 4, Recommended: 1, RecommendationPercent: 100}, saved.Summary)

	w = env.request(http.MethodPost, "/api/v1/games/g-zelda/reviews", token, gin.H{
		"rating": 2, "is_recommended": false, "review_text": "",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[ReviewSavedResponse](t, w)
	assert.Equal(t, saved.Review.ID, updated.Review.ID)
	assert.Nil(t, updated.Review.ReviewText)
	assert.Equal(t, 1, updated.Summary.Total)
	assert.Equal(t, 0, updated.Summary.RecommendationPercent)

	reviews, err := env.repo.ListReviews(context.Background(), "g-zelda")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	assert.Equal(t, []events.Type{events.ReviewSubmitted, events.ReviewSubmitted}, env.events.Types())
}

func TestSubmitReview_Rejects(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)
	_, token := env.user(t, "rina@example.com", false)

	w := env.request(http.MethodPost, "/api/v1/games/g-zelda/reviews", "", gin.H{"rating": 4})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(http.MethodPost, "/api/v1/games/g-zelda/reviews", token, gin.H{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be between 1 and 5", errorOf(t, w))

	w = env.request(http.MethodPost, "/api/v1/games/g-zelda/reviews", token, gin.H{"rating": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(http.MethodPost, "/api/v1/games/missing/reviews", token, gin.H{"rating": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Empty(t, env.events.Events())
}

func TestGetReviews(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)
	userID, token := env.user(t, "rina@example.com", false)
	otherID, _ := env.user(t, "budi@example.com", false)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	env.repo.SeedReview(models.Review{GameID: "g-zelda", UserID: otherID, Rating: 5, IsRecommended: true, CreatedAt: base})
	env.repo.SeedReview(models.Review{GameID: "g-zelda", UserID: userID, Rating: 3, IsRecommended: false, CreatedAt: base.Add(time.Hour)})
	env.repo.SeedReview(models.Review{GameID: "g-apex", UserID: userID, Rating: 1, CreatedAt: base})

	w := env.request(http.MethodGet, "/api/v1/games/g-zelda/reviews", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[ReviewListResponse](t, w)
	require.Len(t, list.Data, 2)
	assert.Equal(t, userID, list.Data[0].UserID)
	require.NotNil(t, list.Data[0].Author)
	assert.Equal(t, "rina@example.com", list.Data[0].Author.Email)
	assert.Equal(t, 2, list.Summary.Total)
	assert.Equal(t, 4.0, list.Summary.AverageRating)
	assert.Equal(t, 50, list.Summary.RecommendationPercent)
	require.NotNil(t, list.MyReview)
	assert.Equal(t, 3, list.MyReview.Rating)

	w = env.request(http.MethodGet, "/api/v1/games/g-zelda/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[ReviewListResponse](t, w).MyReview)

	w = env.request(http.MethodGet, "/api/v1/games/g-stardew/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	empty := decode[ReviewListResponse](t, w)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)
	assert.Equal(t, stats.ReviewSummary{}, empty.Summary)
}

func TestDeleteReview(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)
	authorID, authorToken := env.user(t, "rina@example.com", false)
	_, strangerToken := env.user(t, "budi@example.com", false)
	_, adminToken := env.user(t, "admin@example.com", true)

	first := env.repo.SeedReview(models.Review{GameID: "g-zelda", UserID: authorID, Rating: 5})
	second := env.repo.SeedReview(models.Review{GameID: "g-elden", UserID: authorID, Rating: 4})

	w := env.request(http.MethodDelete, "/api/v1/games/g-zelda/reviews/"+first.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You can only delete your own review", errorOf(t, w))

	w = env.request(http.MethodDelete, "/api/v1/games/g-apex/reviews/"+first.ID, authorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(http.MethodDelete, "/api/v1/games/g-zelda/reviews/"+first.ID, authorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Review deleted", decode[MessageResponse](t, w).Message)

	w = env.request(http.MethodDelete, "/api/v1/games/g-elden/reviews/"+second.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodDelete, "/api/v1/games/g-elden/reviews/"+second.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, []events.Type{events.ReviewDeleted, events.ReviewDeleted}, env.events.Types())
}

func TestReviewChangesReachHub(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)
	_, token := env.user(t, "rina@example.com", false)

	client := make(hub.Client, 4)
	env.hub.Subscribe("g-zelda", client)
	defer env.hub.Unsubscribe("g-zelda", client)

	w := env.request(http.MethodPost, "/api/v1/games/g-zelda/reviews", token, gin.H{"rating": 5})
	require.Equal(t, http.StatusCreated, w.Code)

	select {
	case msg := <-client:
		var event struct {
			Type    string              `json:"type"`
			Payload ReviewStreamPayload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, string(events.ReviewSubmitted), event.Type)
		assert.Equal(t, 1, event.Payload.Summary.Total)
		assert.NotEmpty(t, event.Payload.ReviewID)
	default:
		t.Fatal("no event broadcast")
	}
}

func TestStreamReviews(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/g-zelda/reviews/stream", nil)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		env.router.ServeHTTP(w, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return env.hub.Subscribers("g-zelda") == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, env.hub.Broadcast("g-zelda", hub.Event{Type: "review.submitted", Payload: gin.H{"review_id": "r-1"}}))
	env.hub.Close("g-zelda")
	<-done

	body := w.Body.String()
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "event:summary\n"), body)
	assert.Contains(t, body, "event:review\n")
	assert.Contains(t, body, `"review_id":"r-1"`)
	assert.Equal(t, 0, env.hub.Subscribers("g-zelda"))
}

func TestStreamReviews_StopsWithRequest(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/g-zelda/reviews/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		env.router.ServeHTTP(w, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return env.hub.Subscribers("g-zelda") == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, 0, env.hub.Subscribers("g-zelda"))
}

func TestStreamReviews_UnknownGame(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodGet, "/api/v1/games/missing/reviews/stream", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, env.hub.Subscribers("missing"))
}

func TestGetReviews_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(env)

	env.repo.ErrorOnNextCall = errors.New("timeout")
	w := env.request(http.MethodGet, "/api/v1/games/g-zelda/reviews", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An error occurred", errorOf(t, w))
}
