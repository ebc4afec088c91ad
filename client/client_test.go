package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadsFallBackWhenBackendUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here

	districts := c.GetDistricts()
	require.NotEmpty(t, districts, "district list must never be empty")
	assert.Equal(t, "Colombo", districts[0].Name)

	destinations := c.GetDestinations(0)
	require.NotEmpty(t, destinations)

	// The district filter applies to the fallback set too.
	kandy := c.GetDistrictByID(2)
	require.NotNil(t, kandy)
	assert.Equal(t, "Kandy", kandy.Name)

	filtered := c.GetDestinations(2)
	require.NotEmpty(t, filtered)
	for _, d := range filtered {
		assert.Equal(t, uint(2), d.DistrictID)
	}

	single := c.GetDestinationByID(destinations[0].ID)
	require.NotNil(t, single)
	assert.Equal(t, destinations[0].Title, single.Title)

	assert.Nil(t, c.GetDistrictByID(9999))
	assert.Nil(t, c.GetDestinationByID(9999))
}

func TestReadsFallBackOnMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	c := New(server.URL)
	districts := c.GetDistricts()
	require.NotEmpty(t, districts)
	assert.Equal(t, "Colombo", districts[0].Name)
}

func TestReadsUseLiveDataWhenAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/districts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 1,
			"mess": "Districts fetched",
			"data": []map[string]interface{}{
				{"id": 42, "name": "Matara", "province": "Southern"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	districts := c.GetDistricts()
	require.Len(t, districts, 1)
	assert.Equal(t, uint(42), districts[0].ID)
	assert.Equal(t, "Matara", districts[0].Name)
}

func TestDestinationFilterPassedAsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("district"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 1, "mess": "ok", "data": []map[string]interface{}{},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	destinations := c.GetDestinations(7)
	assert.Empty(t, destinations)
}

func TestRegisterStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "amaya@example.com", payload["email"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 1,
			"mess": "Account created",
			"data": map[string]interface{}{
				"id": 1, "name": "Amaya", "email": "amaya@example.com", "token": "jwt-abc",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	session, err := c.Register("Amaya", "amaya@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", session.Token)
	assert.Equal(t, "jwt-abc", c.Token, "token must be stored for later calls")
}

func TestMutationsPropagateErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0, "mess": "Not authorized",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.Token = "some-token"

	err := c.DeleteDestination(5)
	require.Error(t, err, "mutations never fall back")
	assert.Contains(t, err.Error(), "Not authorized")
	assert.Contains(t, err.Error(), "403")

	err = c.RateDestination(5, 4)
	require.Error(t, err)

	_, err = c.CreateDestination(DestinationInput{Title: "X"})
	require.Error(t, err)
}

func TestCreateDestinationSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "Sigiriya", r.MultipartForm.Value["title"][0])
		assert.Equal(t, "3", r.MultipartForm.Value["districtId"][0])
		assert.Equal(t, "Bearer jwt-abc", r.Header.Get("Authorization"))

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.png", files[0].Filename)
		assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 1,
			"mess": "Destination created",
			"data": map[string]interface{}{
				"id": 9, "title": "Sigiriya", "images": []string{"/uploads/x.png", "/uploads/y.png"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.Token = "jwt-abc"

	created, err := c.CreateDestination(DestinationInput{
		Title:           "Sigiriya",
		Description:     "Rock fortress",
		DistrictID:      3,
		BestTimeToVisit: "January",
		TravelTips:      "Go early",
		Images: []Upload{
			{Name: "a.png", ContentType: "image/png", Content: []byte("png-a")},
			{Name: "b.png", ContentType: "image/png", Content: []byte("png-b")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)
	assert.Len(t, created.Images, 2)
}
