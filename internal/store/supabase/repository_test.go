package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  map[string][]string
	header http.Header
	body   map[string]any
}

func newTestRepo(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Repository, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.Query(), header: r.Header.Clone()}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		calls = append(calls, rec)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{URL: srv.URL + "/", APIKey: "anon-key"})
	require.NoError(t, err)
	return NewRepository(client), &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient_RequiresURLAndKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: "k"})
	assert.Error(t, err)
	_, err = NewClient(Config{URL: "http://x"})
	assert.Error(t, err)
}

func TestListGames_OrdersNewestFirstWithAnonKey(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"g1","title":"Hades","price":150000,"discount_percentage":20,
			"platforms":["PC","Switch"],"minimum_specs":{"os":"Windows 10","memory":"8 GB"}}]`)
	})

	games, err := repo.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, int64(120000), games[0].FinalPrice())
	assert.Equal(t, []string{"PC", "Switch"}, games[0].PlatformList())
	require.NotNil(t, games[0].Specs())
	assert.Equal(t, "8 GB", games[0].Specs().Memory)

	call := (*calls)[0]
	assert.Equal(t, "/rest/v1/games", call.path)
	assert.Equal(t, []string{"created_at.desc"}, call.query["order"])
	assert.Equal(t, "anon-key", call.header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", call.header.Get("Authorization"))
}

func TestGetGame_NotFound(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotAcceptable, `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`)
	})

	_, err := repo.GetGame(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, []string{"eq.nope"}, (*calls)[0].query["id"])
	assert.Equal(t, "application/vnd.pgrst.object+json", (*calls)[0].header.Get("Accept"))
}

func TestUpsertGame_InsertUsesCallerToken(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `[{"id":"new-id","title":"Celeste","price":50000}]`)
	})

	ctx := store.WithAccessToken(context.Background(), "user-token")
	game, err := repo.UpsertGame(ctx, &models.Game{Title: "Celeste", Price: 50000})
	require.NoError(t, err)
	assert.Equal(t, "new-id", game.ID)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "Bearer user-token", call.header.Get("Authorization"))
	assert.Equal(t, "return=representation", call.header.Get("Prefer"))
	assert.NotContains(t, call.body, "id")
	assert.NotContains(t, call.body, "created_at")
	assert.Equal(t, "Celeste", call.body["title"])
	assert.Contains(t, call.body, "discount_percentage")
}

func TestUpsertGame_UpdatePatchesByID(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	_, err := repo.UpsertGame(context.Background(), &models.Game{ID: "g1", Title: "Gone"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPatch, call.method)
	assert.Equal(t, []string{"eq.g1"}, call.query["id"])
	assert.Contains(t, call.body, "updated_at")
}

func TestDeleteGame(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"g1"}]`)
	})

	require.NoError(t, repo.DeleteGame(context.Background(), "g1"))
	assert.Equal(t, http.MethodDelete, (*calls)[0].method)
}

func TestListReviews_JoinsProfiles(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"r1","game_id":"g1","user_id":"u1","rating":5,"is_recommended":true,
			"profiles":{"full_name":"Ana","email":"ana@example.com"}}]`)
	})

	reviews, err := repo.ListReviews(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NotNil(t, reviews[0].Author)
	assert.Equal(t, "Ana", reviews[0].Author.DisplayName())

	call := (*calls)[0]
	assert.Equal(t, "/rest/v1/game_reviews", call.path)
	assert.Equal(t, []string{"*, profiles(full_name,email)"}, call.query["select"])
	assert.Equal(t, []string{"eq.g1"}, call.query["game_id"])
}

func TestUpsertReview_DropsJoinedAuthor(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `[{"id":"r1","game_id":"g1","user_id":"u1","rating":4}]`)
	})

	_, err := repo.UpsertReview(context.Background(), &models.Review{
		GameID: "g1", UserID: "u1", Rating: 4,
		Author: &models.ProfileSummary{Email: "ana@example.com"},
	})
	require.NoError(t, err)
	assert.NotContains(t, (*calls)[0].body, "profiles")
}

func TestGetPostBySlug_PublishedOnly(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"p1","slug":"hello","title":"Hello","published":true}`)
	})

	post, err := repo.GetPostBySlug(context.Background(), "hello", true)
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)

	call := (*calls)[0]
	assert.Equal(t, []string{"eq.hello"}, call.query["slug"])
	assert.Equal(t, []string{"eq.true"}, call.query["published"])
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)
	})

	_, err := repo.SignIn(context.Background(), "a@b.c", "bad")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	assert.Equal(t, "/auth/v1/token", (*calls)[0].path)
	assert.Equal(t, []string{"password"}, (*calls)[0].query["grant_type"])
}

func TestSignIn_ReturnsSession(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token":"at","token_type":"bearer","expires_in":3600,
			"refresh_token":"rt","user":{"id":"u1","email":"a@b.c"}}`)
	})

	session, err := repo.SignIn(context.Background(), "a@b.c", "good")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "at", session.AccessToken)
	assert.Equal(t, "u1", session.User.ID)
}

func TestSignUp_PendingConfirmationHasNoSession(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"u1","email":"a@b.c","user_metadata":{"full_name":"Ana"}}`)
	})

	session, err := repo.SignUp(context.Background(), "a@b.c", "secret1", "Ana")
	require.NoError(t, err)
	assert.Nil(t, session)

	data, ok := (*calls)[0].body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", data["full_name"])
}

func TestSignUp_EmailTaken(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`)
	})

	_, err := repo.SignUp(context.Background(), "a@b.c", "secret1", "")
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestGetUser_UsesGivenToken(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(w, http.StatusUnauthorized, `{"msg":"invalid JWT"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"u1","email":"a@b.c"}`)
	})

	user, err := repo.GetUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = repo.GetUser(context.Background(), "bad")
	assert.ErrorIs(t, err, store.ErrUnauthorized)
	assert.Len(t, *calls, 2)
}

func TestRequestPasswordReset_SendsRedirect(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	require.NoError(t, repo.RequestPasswordReset(context.Background(), "a@b.c", "https://shop.example/reset"))
	call := (*calls)[0]
	assert.Equal(t, "/auth/v1/recover", call.path)
	assert.Equal(t, []string{"https://shop.example/reset"}, call.query["redirect_to"])
	assert.Equal(t, "a@b.c", call.body["email"])
}

func TestUpdatePassword(t *testing.T) {
	repo, calls := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"u1"}`)
	})

	require.NoError(t, repo.UpdatePassword(context.Background(), "recovery-token", "newpass"))
	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "Bearer recovery-token", call.header.Get("Authorization"))
	assert.Equal(t, "newpass", call.body["password"])
}

func TestResponseError_Forbidden(t *testing.T) {
	err := responseError(http.StatusForbidden, []byte(`{"code":"42501","message":"new row violates row-level security policy"}`))
	assert.ErrorIs(t, err, store.ErrForbidden)
	assert.Contains(t, err.Error(), "row-level security")

	err = responseError(http.StatusInternalServerError, []byte(`not json`))
	assert.Contains(t, err.Error(), "status 500")
}
