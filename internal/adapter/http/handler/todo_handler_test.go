package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	api "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/routes"
)

type TodoHandlerSuite struct {
	suite.Suite
	Container *api.Container
	Router    *gin.Engine
}

func (s *TodoHandlerSuite) SetupTest() {
	s.Container = api.NewMemoryContainer(nil)
	s.Router = routes.SetupRouterForTests(s.Container.Handlers())
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

func (s *TodoHandlerSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(s.T(), err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *TodoHandlerSuite) createUser(name, email string) string {
	rr := s.doJSON("POST", "/users", map[string]any{"name": name, "email": email})
	assert.Equal(s.T(), http.StatusCreated, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))

	return body["id"].(string)
}

func (s *TodoHandlerSuite) createTodo(payload map[string]any) map[string]any {
	rr := s.doJSON("POST", "/todos", payload)
	assert.Equal(s.T(), http.StatusCreated, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))

	return body
}

func (s *TodoHandlerSuite) TestCreateTodo() {
	body := s.createTodo(map[string]any{
		"title":       "  Buy milk  ",
		"description": "weekly groceries",
	})

	Expect(body["id"]).ToNot(BeEmpty())
	Expect(body["title"]).To(Equal("Buy milk"))
	Expect(body["description"]).To(Equal("weekly groceries"))
	Expect(body["ownerId"]).To(BeNil())
	Expect(body["isCompleted"]).To(BeFalse())

	createdAt, err := time.Parse(time.RFC3339, body["createdAt"].(string))
	assert.NoError(s.T(), err)
	Expect(createdAt).To(BeTemporally("~", time.Now(), 5*time.Second))
}

func (s *TodoHandlerSuite) TestCreateTodoWithOwner() {
	ownerID := s.createUser("Alice", "alice@example.com")

	body := s.createTodo(map[string]any{
		"title":   "Buy milk",
		"ownerId": ownerID,
	})

	Expect(body["ownerId"]).To(Equal(ownerID))
}

func (s *TodoHandlerSuite) TestCreateTodoUnknownOwner() {
	rr := s.doJSON("POST", "/todos", map[string]any{
		"title":   "Buy milk",
		"ownerId": "missing",
	})

	assert.Equal(s.T(), http.StatusNotFound, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	Expect(body["error"]).To(Equal("Owner user not found"))
}

func (s *TodoHandlerSuite) TestCreateTodoShortTitle() {
	rr := s.doJSON("POST", "/todos", map[string]any{"title": "  ab  "})

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	Expect(body["error"]).To(Equal("Title must be at least 3 characters"))
}

func (s *TodoHandlerSuite) TestCreateTodoMissingTitle() {
	rr := s.doJSON("POST", "/todos", map[string]any{"description": "no title"})

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	Expect(body["error"]).To(Equal("Validation failed"))
}

func (s *TodoHandlerSuite) TestListTodosEmpty() {
	rr := s.doJSON("GET", "/todos", nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)
	Expect(rr.Body.String()).To(MatchJSON("[]"))
}

func (s *TodoHandlerSuite) TestListTodos() {
	s.createTodo(map[string]any{"title": "Buy milk"})
	s.createTodo(map[string]any{"title": "Walk dog"})

	rr := s.doJSON("GET", "/todos", nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var items []map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &items))
	assert.Len(s.T(), items, 2)

	for _, item := range items {
		Expect(item["isCompleted"]).To(BeFalse())
		Expect(item["completedAt"]).To(BeNil())
	}
}

func (s *TodoHandlerSuite) TestListTodosFiltersByOwner() {
	ownerID := s.createUser("Alice", "alice@example.com")

	s.createTodo(map[string]any{"title": "Buy milk", "ownerId": ownerID})
	s.createTodo(map[string]any{"title": "Walk dog"})

	rr := s.doJSON("GET", "/todos?ownerId="+ownerID, nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var items []map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &items))
	assert.Len(s.T(), items, 1)
	Expect(items[0]["title"]).To(Equal("Buy milk"))
}

func (s *TodoHandlerSuite) TestCompleteTodo() {
	created := s.createTodo(map[string]any{"title": "Buy milk"})

	rr := s.doJSON("POST", "/todos/"+created["id"].(string)+"/complete", nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	Expect(body["isCompleted"]).To(BeTrue())
	Expect(body["completedAt"]).ToNot(BeNil())

	_, err := time.Parse(time.RFC3339, body["completedAt"].(string))
	assert.NoError(s.T(), err)
}

func (s *TodoHandlerSuite) TestCompleteTodoTwice() {
	created := s.createTodo(map[string]any{"title": "Buy milk"})
	id := created["id"].(string)

	rr := s.doJSON("POST", "/todos/"+id+"/complete", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	rr = s.doJSON("POST", "/todos/"+id+"/complete", nil)

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	Expect(body["error"]).To(Equal("Todo is already completed"))
}

func (s *TodoHandlerSuite) TestCompleteTodoNotFound() {
	rr := s.doJSON("POST", "/todos/missing/complete", nil)

	assert.Equal(s.T(), http.StatusNotFound, rr.Code)

	var body map[string]any
	assert.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	Expect(body["error"]).To(Equal("Todo not found"))
}
