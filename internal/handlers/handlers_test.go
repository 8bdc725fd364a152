package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rmccall/shelftrack-golang/internal/database"
	"github.com/rmccall/shelftrack-golang/internal/handlers"
	"github.com/rmccall/shelftrack-golang/internal/routes"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenDBAtPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := database.NewSchemaManager(db, database.SchemaConfig{Name: "test", Version: 2})
	require.NoError(t, m.Initialize())

	return routes.SetupRouter(handlers.New(db))
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/v1/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister_DuplicateConflicts(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username": "alice", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username": "alice", "password": "other",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_UniformFailureBody(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "alice", "pw")

	wrongPassword := doJSON(t, router, http.MethodPost, "/v1/login", "", gin.H{
		"username": "alice", "password": "nope",
	})
	unknownUser := doJSON(t, router, http.MethodPost, "/v1/login", "", gin.H{
		"username": "mallory", "password": "nope",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// No observable difference between the two failure modes.
	require.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestInventoryRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/inventory", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/inventory", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInventoryFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "alice", "pw")

	// Category first.
	w := doJSON(t, router, http.MethodPost, "/v1/categories", token, gin.H{"name": "Tools"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var catResp struct {
		Category struct {
			ID int64 `json:"id"`
		} `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catResp))

	// Add an item with a negative quantity; the store clamps it.
	w = doJSON(t, router, http.MethodPost, "/v1/inventory", token, gin.H{
		"title":       "Hammer",
		"description": "Claw hammer",
		"categoryId":  catResp.Category.ID,
		"quantity":    -5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var itemResp struct {
		Item struct {
			ID       int64 `json:"id"`
			Quantity int   `json:"quantity"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &itemResp))
	require.Equal(t, 0, itemResp.Item.Quantity)

	// Quantity-only update.
	w = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/v1/inventory/%d/quantity", itemResp.Item.ID), token,
		gin.H{"quantity": 7})
	require.Equal(t, http.StatusOK, w.Code)

	// Count sees one row.
	w = doJSON(t, router, http.MethodGet, "/v1/inventory/count", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count": 1}`, w.Body.String())

	// Delete and verify the listing is empty.
	w = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/v1/inventory/%d", itemResp.Item.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/v1/inventory/%d", itemResp.Item.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSortInventory_ReturnsStableOrder(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "alice", "pw")

	for _, title := range []string{"banana", "Apple", "apple"} {
		w := doJSON(t, router, http.MethodPost, "/v1/inventory", token, gin.H{
			"title": title, "quantity": 1,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/v1/inventory/sort", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	require.Equal(t, "Apple", resp.Items[0].Title)
	require.Equal(t, "apple", resp.Items[1].Title)
	require.Equal(t, "banana", resp.Items[2].Title)
}

func TestLegacyDataRoutes(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "alice", "pw")

	w := doJSON(t, router, http.MethodPost, "/v1/data", token, gin.H{
		"title": "Notebook", "description": "ruled",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/data", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, "Notebook", resp.Items[0].Title)

	w = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/v1/data/%d", resp.Items[0].ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
