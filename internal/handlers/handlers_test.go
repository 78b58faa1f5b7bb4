package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kpatel/grouplift/internal/auth"
	"github.com/kpatel/grouplift/internal/middleware"
	"github.com/kpatel/grouplift/internal/models"
	"github.com/kpatel/grouplift/internal/store/sqlstore"
)

func newTestStore(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	st, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	return st
}

func newTestUser(t *testing.T, st *sqlstore.SQLStore, email, name string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: name, Password: "irrelevant"}
	require.NoError(t, st.CreateUser(user))
	return user
}

// authedRequest builds a request carrying a valid bearer token for the user.
func authedRequest(t *testing.T, method, target string, body interface{}, userID int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	token, err := auth.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func itoa(n int) string { return strconv.Itoa(n) }

// serve runs a handler behind the auth middleware, the way main wires it.
func serve(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(handler).ServeHTTP(rr, req)
	return rr
}
