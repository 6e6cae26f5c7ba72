package profileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ProfileService
// ProfileService хранит профили специалистов, их каталоги услуг,
// клиентов (владельцев) и питомцев
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfessional получает специалиста по ID
func (c *Client) GetProfessional(ctx context.Context, professionalID int64) (*Professional, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d", c.baseURL, professionalID)

	var professional Professional
	if err := c.getJSON(ctx, url, &professional, ErrProfessionalNotFound); err != nil {
		return nil, err
	}

	return &professional, nil
}

// GetService получает услугу специалиста
// Длительность услуги из этого ответа - источник истины для подгонки слотов
func (c *Client) GetService(ctx context.Context, professionalID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d/services/%d", c.baseURL, professionalID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return &service, nil
}

// GetPet получает питомца клиента
func (c *Client) GetPet(ctx context.Context, clientID, petID int64) (*Pet, error) {
	url := fmt.Sprintf("%s/internal/clients/%d/pets/%d", c.baseURL, clientID, petID)

	var pet Pet
	if err := c.getJSON(ctx, url, &pet, ErrPetNotFound); err != nil {
		return nil, err
	}

	return &pet, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// 404 транслируется в notFoundErr вызывающей операции
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid identifier format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
