package todo_test

import (
	"net/http"
	"strings"
	"testing"
	"todo-api-backend/ent"
	"todo-api-backend/pkg/infrastructure/router"
	"todo-api-backend/testutil"
	"todo-api-backend/testutil/e2e"

	"github.com/gavv/httpexpect/v2"
)

const itemPath = "/todos/{id}/"

func setup(t *testing.T) (*httpexpect.Expect, *ent.Client, func()) {
	return e2e.Setup(t, e2e.SetupOption{
		TearDown: func(t *testing.T, client *ent.Client) {
			testutil.DropTodo(t, client)
		},
	})
}

func TestTodo_List(t *testing.T) {
	expect, client, teardown := setup(t)
	defer teardown()

	tests := []struct {
		name     string
		arrange  func(t *testing.T)
		act      func(t *testing.T) *httpexpect.Response
		assert   func(t *testing.T, got *httpexpect.Response)
		teardown func(t *testing.T)
	}{
		{
			name:    "It should return an empty list",
			arrange: func(t *testing.T) {},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.GET(router.TodosPath).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				e2e.GetArray(got).IsEmpty()
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should list todos in creation order",
			arrange: func(t *testing.T) {
				e2e.CreateTodo(expect, "Todo 1", false)
				e2e.CreateTodo(expect, "Todo 2", true)
			},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.GET(router.TodosPath).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				todos := e2e.GetArray(got)
				todos.Length().IsEqual(2)
				first := todos.Value(0).Object()
				first.Keys().ContainsOnly("id", "title", "is_completed")
				first.Value("title").String().IsEqual("Todo 1")
				first.Value("is_completed").Boolean().IsFalse()
				second := todos.Value(1).Object()
				second.Value("title").String().IsEqual("Todo 2")
				second.Value("is_completed").Boolean().IsTrue()
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name:    "It should accept the path without trailing slash",
			arrange: func(t *testing.T) {},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.GET("/todos").Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				got.Header(echoRequestIDHeader).NotEmpty()
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange(t)
			got := tt.act(t)
			tt.assert(t, got)
			tt.teardown(t)
		})
	}
}

func TestTodo_Create(t *testing.T) {
	expect, client, teardown := setup(t)
	defer teardown()

	tests := []struct {
		name     string
		act      func(t *testing.T) *httpexpect.Response
		assert   func(t *testing.T, got *httpexpect.Response)
		teardown func(t *testing.T)
	}{
		{
			name: "It should create a todo",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"title": "New Todo", "is_completed": false}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
				todo := e2e.GetObject(got)
				todo.Value("id").Number().Gt(0)
				todo.Value("title").String().IsEqual("New Todo")
				todo.Value("is_completed").Boolean().IsFalse()

				expect.GET(router.TodosPath).Expect().
					Status(http.StatusOK).
					JSON().Array().Length().IsEqual(1)
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should default is_completed to false",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"title": "No flag"}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
				e2e.GetObject(got).Value("is_completed").Boolean().IsFalse()
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should accept a title of 200 characters",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"title": strings.Repeat("a", 200)}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
				e2e.GetObject(got).Value("title").String().Length().IsEqual(200)
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should reject an empty title",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"title": "", "is_completed": false}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				e2e.GetObject(got).Value("title").Array().Value(0).String().IsEqual("This field may not be blank.")

				expect.GET(router.TodosPath).Expect().
					JSON().Array().IsEmpty()
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject a missing title",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"is_completed": true}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				e2e.GetObject(got).Value("title").Array().Value(0).String().IsEqual("This field is required.")
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject a title over 200 characters",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"title": strings.Repeat("a", 201)}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				e2e.GetObject(got).ContainsKey("title")
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject a malformed body",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithHeader("Content-Type", "application/json").
					WithText(`{"title": `).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				e2e.GetObject(got).ContainsKey("non_field_errors")
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject a body that is not an object",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON([]string{"Todo"}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				e2e.GetObject(got).Value("non_field_errors").Array().Value(0).String().
					IsEqual("Invalid data. Expected a dictionary, but got list.")
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.act(t)
			tt.assert(t, got)
			tt.teardown(t)
		})
	}
}
