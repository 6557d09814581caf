package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Gkeerthanasilkskanchi/silks-api/config"
	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/Gkeerthanasilkskanchi/silks-api/routes"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func newServer(t *testing.T) (*gin.Engine, *store.MemStore, *repository.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemStore()
	repos := repository.New(mem)

	engine := gin.New()
	routes.SetupRoutes(engine, routes.Deps{
		Config: config.Config{
			JWTSecret:  "test-secret",
			UploadsDir: t.TempDir(),
		},
		Repos: repos,
	})
	return engine, mem, repos
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(c *qt.C, recorder *httptest.ResponseRecorder) map[string]any {
	c.Helper()
	var body map[string]any
	c.Assert(json.Unmarshal(recorder.Body.Bytes(), &body), qt.IsNil)
	return body
}

func seedProduct(c *qt.C, mem *store.MemStore, id int, title string, active int) {
	c.Helper()
	row := []string{
		strconv.Itoa(id),
		fmt.Sprintf("uploads/%d.jpg", id),
		title,
		"1499",
		"about", "silk", "wedding", "women", "kanchipuram",
		"2024-03-01T10:00:00Z", "owner@shop.in",
		strconv.Itoa(active),
	}
	c.Assert(mem.AppendRow(context.Background(), "products", row), qt.IsNil)
}

func TestRegisterLoginFlow(t *testing.T) {
	c := qt.New(t)
	engine, _, _ := newServer(t)

	register := doJSON(engine, http.MethodPost, "/users/register", gin.H{
		"email": "a@shop.in", "password": "secret123", "userName": "A",
	})
	c.Assert(register.Code, qt.Equals, http.StatusCreated)
	c.Assert(decodeBody(c, register)["message"], qt.Equals, "User registered successfully")

	// duplicate email is rejected
	duplicate := doJSON(engine, http.MethodPost, "/users/register", gin.H{
		"email": "a@shop.in", "password": "other", "userName": "A2",
	})
	c.Assert(duplicate.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(decodeBody(c, duplicate)["message"], qt.Equals, "User already exists")

	// wrong password
	badLogin := doJSON(engine, http.MethodPost, "/users/login", gin.H{
		"email": "a@shop.in", "password": "wrong",
	})
	c.Assert(badLogin.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(decodeBody(c, badLogin)["message"], qt.Equals, "Invalid credentials")

	login := doJSON(engine, http.MethodPost, "/users/login", gin.H{
		"email": "a@shop.in", "password": "secret123",
	})
	c.Assert(login.Code, qt.Equals, http.StatusOK)
	body := decodeBody(c, login)
	c.Assert(body["message"], qt.Equals, "Login successful")
	c.Assert(body["role"], qt.Equals, "admin")
	c.Assert(body["token"], qt.Not(qt.Equals), "")
}

func TestGetUserList(t *testing.T) {
	c := qt.New(t)
	engine, _, repos := newServer(t)

	c.Assert(repos.Users.Create(context.Background(), "a@shop.in", "hash", "admin", "A"), qt.IsNil)

	recorder := doJSON(engine, http.MethodGet, "/users/get-user-list", nil)
	c.Assert(recorder.Code, qt.Equals, http.StatusCreated)
	data := decodeBody(c, recorder)["data"].([]any)
	c.Assert(data, qt.HasLen, 1)
}

func TestCreateProductMultipart(t *testing.T) {
	c := qt.New(t)
	engine, _, repos := newServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, value := range map[string]string{
		"title": "Kanchipuram Silk", "price": "2999", "about": "handwoven",
		"cloth": "silk", "category": "wedding", "bought_by": "women",
		"saree_type": "kanchipuram", "email": "owner@shop.in",
	} {
		c.Assert(writer.WriteField(field, value), qt.IsNil)
	}
	part, err := writer.CreateFormFile("image", "saree one.jpg")
	c.Assert(err, qt.IsNil)
	_, err = part.Write([]byte("fake image bytes"))
	c.Assert(err, qt.IsNil)
	c.Assert(writer.Close(), qt.IsNil)

	req := httptest.NewRequest(http.MethodPost, "/users/products", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	c.Assert(recorder.Code, qt.Equals, http.StatusCreated)
	c.Assert(decodeBody(c, recorder)["message"], qt.Equals, "Product added successfully")

	product, err := repos.Products.GetByID(context.Background(), 1)
	c.Assert(err, qt.IsNil)
	c.Assert(product, qt.IsNotNil)
	c.Assert(strings.HasPrefix(product.Image, "uploads/"), qt.IsTrue)
	c.Assert(strings.Contains(product.Image, "saree_one.jpg"), qt.IsTrue)
}

func TestCreateProductMissingFields(t *testing.T) {
	c := qt.New(t)
	engine, _, _ := newServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	c.Assert(writer.WriteField("title", "No price"), qt.IsNil)
	c.Assert(writer.Close(), qt.IsNil)

	req := httptest.NewRequest(http.MethodPost, "/users/products", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	c.Assert(recorder.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(decodeBody(c, recorder)["message"], qt.Equals, "All fields are required.")
}

func TestGetProductByIDHidesInactive(t *testing.T) {
	c := qt.New(t)
	engine, mem, _ := newServer(t)

	seedProduct(c, mem, 1, "Visible", 1)
	seedProduct(c, mem, 2, "Hidden", 0)

	visible := doJSON(engine, http.MethodGet, "/users/getProductById/1", nil)
	c.Assert(visible.Code, qt.Equals, http.StatusOK)
	body := decodeBody(c, visible)
	c.Assert(body["title"], qt.Equals, "Visible")
	// httptest requests carry the example.com host
	c.Assert(body["image"], qt.Equals, "http://example.com/uploads/1.jpg")

	hidden := doJSON(engine, http.MethodGet, "/users/getProductById/2", nil)
	c.Assert(hidden.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(decodeBody(c, hidden)["message"], qt.Equals, "Product with ID 2 not found or inactive.")
}

func TestDeleteProductSoftDeactivates(t *testing.T) {
	c := qt.New(t)
	engine, mem, _ := newServer(t)

	seedProduct(c, mem, 1, "Doomed", 1)

	deleted := doJSON(engine, http.MethodGet, "/users/deleteProduct/1", nil)
	c.Assert(deleted.Code, qt.Equals, http.StatusOK)

	lookup := doJSON(engine, http.MethodGet, "/users/getProductById/1", nil)
	c.Assert(lookup.Code, qt.Equals, http.StatusInternalServerError)

	// row still present in storage
	rows, err := mem.ReadRange(context.Background(), "products", 2, store.OpenEnd, 1, 12)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 1)
}

func TestGetFilteredProduct(t *testing.T) {
	c := qt.New(t)
	engine, mem, _ := newServer(t)

	for i := 1; i <= 12; i++ {
		seedProduct(c, mem, i, fmt.Sprintf("Saree %d", i), 1)
	}

	recorder := doJSON(engine, http.MethodGet, "/users/getFilteredProduct?page=2&keyword=saree", nil)
	c.Assert(recorder.Code, qt.Equals, http.StatusOK)

	data := decodeBody(c, recorder)["data"].(map[string]any)
	c.Assert(data["total"], qt.Equals, 12.0)
	c.Assert(data["products"].([]any), qt.HasLen, 2)
}

func TestLikeToggleOverHTTP(t *testing.T) {
	c := qt.New(t)
	engine, mem, repos := newServer(t)

	c.Assert(repos.Users.Create(context.Background(), "a@shop.in", "hash", "admin", "A"), qt.IsNil)
	seedProduct(c, mem, 42, "Likeable", 1)

	like := func() string {
		recorder := doJSON(engine, http.MethodPost, "/users/like", gin.H{
			"email": "a@shop.in", "productId": 42,
		})
		c.Assert(recorder.Code, qt.Equals, http.StatusOK)
		return decodeBody(c, recorder)["message"].(string)
	}

	c.Assert(like(), qt.Equals, "Product Liked Successfully")
	c.Assert(like(), qt.Equals, "Product Unliked Successfully")
	c.Assert(like(), qt.Equals, "Product Liked Successfully")

	unknown := doJSON(engine, http.MethodPost, "/users/like", gin.H{
		"email": "nobody@shop.in", "productId": 42,
	})
	c.Assert(unknown.Code, qt.Equals, http.StatusNotFound)
	c.Assert(decodeBody(c, unknown)["message"], qt.Equals, "User not found")
}

func TestCartFlowOverHTTP(t *testing.T) {
	c := qt.New(t)
	engine, mem, repos := newServer(t)

	c.Assert(repos.Users.Create(context.Background(), "a@shop.in", "hash", "admin", "A"), qt.IsNil)
	seedProduct(c, mem, 1, "Wanted", 1)
	seedProduct(c, mem, 2, "Ignored", 1)

	added := doJSON(engine, http.MethodPost, "/users/cart", gin.H{
		"email": "a@shop.in", "productId": 1, "quantity": 3,
	})
	c.Assert(added.Code, qt.Equals, http.StatusOK)
	c.Assert(decodeBody(c, added)["message"], qt.Equals, "Product Added Successfully")

	listing := doJSON(engine, http.MethodGet, "/users/cart/a@shop.in", nil)
	c.Assert(listing.Code, qt.Equals, http.StatusOK)

	var cart []map[string]any
	c.Assert(json.Unmarshal(listing.Body.Bytes(), &cart), qt.IsNil)
	c.Assert(cart, qt.HasLen, 1)
	c.Assert(cart[0]["title"], qt.Equals, "Wanted")
	c.Assert(cart[0]["quantity"], qt.Equals, 3.0)
	c.Assert(cart[0]["is_product_in_cart"], qt.Equals, true)
}

func TestCreateOrderOverHTTP(t *testing.T) {
	c := qt.New(t)
	engine, mem, repos := newServer(t)

	c.Assert(repos.Users.Create(context.Background(), "a@shop.in", "hash", "admin", "A"), qt.IsNil)

	recorder := doJSON(engine, http.MethodPost, "/users/create-order", gin.H{
		"email": "a@shop.in", "id": 42, "quantity": 2, "price": 2999.5,
	})
	c.Assert(recorder.Code, qt.Equals, http.StatusOK)
	c.Assert(decodeBody(c, recorder)["message"], qt.Equals, "Order added successfully")

	rows, err := mem.ReadRange(context.Background(), "orders", 2, store.OpenEnd, 1, 5)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.DeepEquals, [][]string{{"1", "1", "42", "2", "2999.5"}})

	unknown := doJSON(engine, http.MethodPost, "/users/create-order", gin.H{
		"email": "nobody@shop.in", "id": 42, "quantity": 1, "price": 10,
	})
	c.Assert(unknown.Code, qt.Equals, http.StatusNotFound)
}

func TestSendQueryWithoutCredentials(t *testing.T) {
	c := qt.New(t)
	engine, _, _ := newServer(t)

	recorder := doJSON(engine, http.MethodPost, "/users/send-subscribtion", gin.H{
		"email": "fan@shop.in",
	})
	c.Assert(recorder.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(decodeBody(c, recorder)["error"], qt.Equals, "Email credentials missing. Please check server logs.")
}
