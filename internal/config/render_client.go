package config

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	renderBaseURL  = "https://api.render.com/v1"
	renderPageSize = 100
)

// SecretStorage lê secret files de um serviço
type SecretStorage interface {
	ListSecrets(serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type secretFilePage []struct {
	SecretFile struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

// ListSecrets percorre todas as páginas de secret files do serviço
func (c *RenderClient) ListSecrets(serviceID string) (map[string]string, error) {
	secretsMap := make(map[string]string)

	cursor := ""
	for {
		page, err := c.listSecretsPage(serviceID, cursor)
		if err != nil {
			return nil, err
		}

		for _, sf := range page {
			secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
		}

		if len(page) < renderPageSize {
			return secretsMap, nil
		}
		cursor = page[len(page)-1].Cursor
	}
}

func (c *RenderClient) listSecretsPage(serviceID, cursor string) (secretFilePage, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprint(renderPageSize))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, serviceID, query.Encode())
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: %s", body)
	}

	var page secretFilePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}

	return page, nil
}
