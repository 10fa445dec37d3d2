package handlers

import (
	"context"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser *models.User
	signUpErr  error
	signInTok  string
	signInErr  error
	authUser   *models.User
	authErr    error

	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignInEmail    string
	lastSignInPassword string
	lastAuthToken      string
}

func (m *mockAuth) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	m.lastSignInEmail = email
	m.lastSignInPassword = password
	return m.signInTok, m.signInErr
}

func (m *mockAuth) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	m.lastAuthToken = accessToken
	return m.authUser, m.authErr
}

type mockUsers struct {
	editUser *models.User
	editErr  error

	lastEditID    int
	lastEditPatch models.UserPatch
}

func (m *mockUsers) Edit(ctx context.Context, id int, p models.UserPatch) (*models.User, error) {
	m.lastEditID = id
	m.lastEditPatch = p
	return m.editUser, m.editErr
}

type mockBookmarks struct {
	created *models.Bookmark
	list    []models.Bookmark
	got     *models.Bookmark
	edited  *models.Bookmark

	createErr error
	listErr   error
	getErr    error
	editErr   error
	deleteErr error

	lastUserID int
	lastID     int
}

func (m *mockBookmarks) Create(ctx context.Context, userID int, title, description, link string) (*models.Bookmark, error) {
	m.lastUserID = userID
	return m.created, m.createErr
}

func (m *mockBookmarks) List(ctx context.Context, userID int) ([]models.Bookmark, error) {
	m.lastUserID = userID
	return m.list, m.listErr
}

func (m *mockBookmarks) GetByID(ctx context.Context, userID, id int) (*models.Bookmark, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.got, m.getErr
}

func (m *mockBookmarks) Edit(ctx context.Context, userID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.edited, m.editErr
}

func (m *mockBookmarks) Delete(ctx context.Context, userID, id int) error {
	m.lastUserID = userID
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func testUser(id int, email string) *models.User {
	return &models.User{ID: id, Email: email, PasswordHash: "h-secret"}
}
