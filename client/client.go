// Package client is the Go consumer of the travel API. Read calls fall
// back to a fixed in-memory dataset when the backend is unreachable so
// demo pages still render; mutations never fall back and surface errors.
package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

type District struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"imageUrl"`
	Province    string  `json:"province"`
}

type Destination struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	TravelTips      string   `json:"travelTips"`
	DistrictID      uint     `json:"districtId"`
	AuthorID        uint     `json:"authorId"`
	District        struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Province string `json:"province"`
	} `json:"district"`
	Author struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"author"`
}

type Session struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"isAdmin"`
	ProfilePicture string `json:"profilePicture"`
	Token          string `json:"token"`
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s (status %d)", env.Mess, resp.StatusCode)
	}

	if dest != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, dest)
	}
	return nil
}

func (c *Client) get(path string, dest interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, dest)
}

func (c *Client) postJSON(path string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

// GetDistricts returns the live district list, or the static demo set
// when the backend cannot be reached. The fallback is not a cache.
func (c *Client) GetDistricts() []District {
	var districts []District
	if err := c.get("/api/districts", &districts); err != nil {
		return fallbackDistricts()
	}
	return districts
}

func (c *Client) GetDistrictByID(id uint) *District {
	var district District
	if err := c.get(fmt.Sprintf("/api/districts/%d", id), &district); err != nil {
		for _, d := range fallbackDistricts() {
			if d.ID == id {
				return &d
			}
		}
		return nil
	}
	return &district
}

// GetDestinations lists destinations, filtered by district when
// districtID is non-zero. Falls back to the static demo set.
func (c *Client) GetDestinations(districtID uint) []Destination {
	path := "/api/destinations"
	if districtID != 0 {
		path += "?district=" + strconv.FormatUint(uint64(districtID), 10)
	}

	var destinations []Destination
	if err := c.get(path, &destinations); err != nil {
		all := fallbackDestinations()
		if districtID == 0 {
			return all
		}
		filtered := make([]Destination, 0)
		for _, d := range all {
			if d.DistrictID == districtID {
				filtered = append(filtered, d)
			}
		}
		return filtered
	}
	return destinations
}

func (c *Client) GetDestinationByID(id uint) *Destination {
	var destination Destination
	if err := c.get(fmt.Sprintf("/api/destinations/%d", id), &destination); err != nil {
		for _, d := range fallbackDestinations() {
			if d.ID == id {
				return &d
			}
		}
		return nil
	}
	return &destination
}

// Register creates an account and stores the returned token on the
// client. No fallback: failures propagate.
func (c *Client) Register(name, email, password string) (*Session, error) {
	var session Session
	err := c.postJSON("/api/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return nil, err
	}
	c.Token = session.Token
	return &session, nil
}

func (c *Client) Login(email, password string) (*Session, error) {
	var session Session
	err := c.postJSON("/api/users/login", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return nil, err
	}
	c.Token = session.Token
	return &session, nil
}

// Upload is an in-memory file for multipart requests.
type Upload struct {
	Name        string
	ContentType string
	Content     []byte
}

type DestinationInput struct {
	Title           string
	Description     string
	DistrictID      uint
	Latitude        float64
	Longitude       float64
	BestTimeToVisit string
	TravelTips      string
	Images          []Upload
}

// CreateDestination posts a multipart form with the image files. No
// fallback: failures propagate.
func (c *Client) CreateDestination(input DestinationInput) (*Destination, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":           input.Title,
		"description":     input.Description,
		"districtId":      strconv.FormatUint(uint64(input.DistrictID), 10),
		"latitude":        strconv.FormatFloat(input.Latitude, 'f', -1, 64),
		"longitude":       strconv.FormatFloat(input.Longitude, 'f', -1, 64),
		"bestTimeToVisit": input.BestTimeToVisit,
		"travelTips":      input.TravelTips,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}

	for _, image := range input.Images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, image.Name))
		header.Set("Content-Type", image.ContentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/destinations", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var destination Destination
	if err := c.do(req, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// DeleteDestination removes a destination. No fallback.
func (c *Client) DeleteDestination(id uint) error {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+fmt.Sprintf("/api/destinations/%d", id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// RateDestination saves a 1-5 rating. No fallback.
func (c *Client) RateDestination(destinationID uint, value int) error {
	return c.postJSON("/api/ratings", map[string]interface{}{
		"destinationId": destinationID,
		"value":         value,
	}, nil)
}
