package comments

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"
	"github.com/ST10329226/Fakebook-SQL-MVC/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetCommentsByPostID_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "created_at"}).
			AddRow(1, 1, 1, "nice post", createdAt).
			AddRow(2, 1, 2, "agreed", createdAt.Add(time.Minute)))

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "email", "bio", "profile_picture_url", "created_at"}).
			AddRow(1, "alice", "hash1", "alice@gmail.com", "", "", createdAt).
			AddRow(2, "bob", "hash2", "bob@yahoo.com", "", "", createdAt))

	r := testutils.SetupTestRouter()
	r.GET("/posts/:id/comments", GetCommentsByPostID)

	req, _ := http.NewRequest(http.MethodGet, "/posts/1/comments", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Comments []models.Comment `json:"comments"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)

	assert.Len(t, body.Comments, 2)
	assert.Equal(t, "nice post", body.Comments[0].Content)
	assert.Equal(t, "alice", body.Comments[0].User.Username)
	assert.Equal(t, "bob", body.Comments[1].User.Username)
}

func TestCreateComment_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"}).
			AddRow(1, 1, "hello world", time.Now()))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", uint(2))
		CreateComment(c)
	})

	payload, _ := json.Marshal(models.CommentCreate{Content: "nice post"})
	req, _ := http.NewRequest(http.MethodPost, "/posts/1/comments", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var comment models.Comment
	json.Unmarshal(resp.Body.Bytes(), &comment)
	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, uint(1), comment.PostID)
	assert.Equal(t, uint(2), comment.UserID)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", uint(2))
		CreateComment(c)
	})

	payload, _ := json.Marshal(models.CommentCreate{Content: "nice post"})
	req, _ := http.NewRequest(http.MethodPost, "/posts/42/comments", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", uint(2))
		CreateComment(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/1/comments", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
