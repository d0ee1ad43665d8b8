package e2e

import (
	"net/http/httptest"
	"testing"
	"todo-api-backend/config"
	"todo-api-backend/ent"
	"todo-api-backend/pkg/infrastructure/logger"
	"todo-api-backend/pkg/infrastructure/router"
	"todo-api-backend/pkg/registry"
	"todo-api-backend/testutil"

	"github.com/gavv/httpexpect/v2"
)

// SetupOption is an option of Setup
type SetupOption struct {
	TearDown func(t *testing.T, client *ent.Client)
}

// Setup starts the whole application on an httptest server backed by the
// e2e database and returns an httpexpect client for it.
func Setup(t *testing.T, option SetupOption) (expect *httpexpect.Expect, client *ent.Client, teardown func()) {
	t.Helper()

	testutil.ReadConfigE2E()

	client = testutil.NewDBClient(t)
	ctrl := registry.New(client).NewController()
	log := logger.New(logger.OptionsFromConfig())

	e := router.New(ctrl, log, router.Options{
		BodyLimit: config.C.Server.BodyLimit,
	})
	srv := httptest.NewServer(e)

	return httpexpect.Default(t, srv.URL), client, func() {
		if option.TearDown != nil {
			option.TearDown(t, client)
		}
		srv.Close()
		_ = client.Close()
	}
}

// GetArray returns the JSON array body of a response.
func GetArray(resp *httpexpect.Response) *httpexpect.Array {
	return resp.JSON().Array()
}

// GetObject returns the JSON object body of a response.
func GetObject(resp *httpexpect.Response) *httpexpect.Object {
	return resp.JSON().Object()
}

// CreateTodo creates a todo through the API and returns its id.
func CreateTodo(expect *httpexpect.Expect, title string, isCompleted bool) int {
	obj := expect.POST(router.TodosPath).
		WithJSON(map[string]interface{}{"title": title, "is_completed": isCompleted}).
		Expect().
		Status(201).
		JSON().Object()
	return int(obj.Value("id").Number().Raw())
}
