package endpoints_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedesk/coursedesk/internal/db"
	"github.com/coursedesk/coursedesk/internal/http/api"
	"github.com/coursedesk/coursedesk/internal/http/api/users/endpoints"
	"github.com/coursedesk/coursedesk/internal/model"
)

// fakeStore covers the user surface; the course methods are inert.
type fakeStore struct {
	users  map[int]*model.User
	nextID int
}

var _ db.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[int]*model.User{}}
}

func (f *fakeStore) CreateUser(firstName, lastName, email, hashedPassword string) (int, error) {
	for _, u := range f.users {
		if u.EmailAddress == email {
			return 0, &pq.Error{Code: "23505"}
		}
	}
	f.nextID++
	f.users[f.nextID] = &model.User{
		ID:             f.nextID,
		FirstName:      firstName,
		LastName:       lastName,
		EmailAddress:   email,
		HashedPassword: hashedPassword,
	}
	return f.nextID, nil
}

func (f *fakeStore) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) GetUserByID(id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) ListCourses() ([]model.CourseWithOwner, error)       { return nil, nil }
func (f *fakeStore) GetCourseByID(id int) (*model.CourseWithOwner, error) { return nil, sql.ErrNoRows }
func (f *fakeStore) CreateCourse(title, description string, estimatedTime, materialsNeeded *string, userID int) (int, error) {
	return 0, nil
}
func (f *fakeStore) UpdateCourse(id int, title, description string, estimatedTime, materialsNeeded *string, userID int) error {
	return nil
}
func (f *fakeStore) DeleteCourse(id int) (bool, error) { return false, nil }

func setupRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/"},
		endpoints.UserPublicModule(store))
	api.MountGroup(r, api.GroupConfig{Prefix: "/", Auth: true, Store: store},
		endpoints.UserModule(store))
	return r
}

func register(t *testing.T, router *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_ThenAuthenticate(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := register(t, router, map[string]string{
		"firstName":    "Joe",
		"lastName":     "Smith",
		"emailAddress": "joe@example.com",
		"password":     "joepassword",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "joe@example.com", created["emailAddress"])
	assert.NotContains(t, created, "password", "hash must not be echoed")

	// the new credentials satisfy Basic auth
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("joe@example.com", "joepassword")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Joe", me["firstName"])
	assert.Equal(t, "joe@example.com", me["emailAddress"])
	assert.NotContains(t, me, "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	payload := map[string]string{
		"firstName":    "Joe",
		"lastName":     "Smith",
		"emailAddress": "joe@example.com",
		"password":     "joepassword",
	}
	require.Equal(t, http.StatusCreated, register(t, router, payload).Code)

	w := register(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "The email you entered already exists")
	assert.Len(t, store.users, 1, "no second record may be created")
}

func TestRegister_ValidationErrors(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := register(t, router, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{
		"A firstName is required",
		"A lastName is required",
		"An email address is required",
		"A password is required",
	}, resp.Errors)
	assert.Empty(t, store.users)
}

func TestGetCurrentUser_RequiresCredentials(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	register(t, router, map[string]string{
		"firstName":    "Joe",
		"lastName":     "Smith",
		"emailAddress": "joe@example.com",
		"password":     "joepassword",
	})

	// no header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Access Denied"}`, w.Body.String())

	// wrong password
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("joe@example.com", "wrongpassword")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// unknown user
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("nobody@example.com", "joepassword")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
