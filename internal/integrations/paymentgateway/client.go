package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client клиент для работы с платёжным шлюзом
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL string, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateTransaction создает транзакцию в шлюзе и возвращает токен и URL оплаты
func (c *Client) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*CreateTransactionResponse, error) {
	c.log.Info("CreateTransaction: buy_order=%s, amount=%d", req.BuyOrder, req.Amount)

	var result CreateTransactionResponse
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &result); err != nil {
		return nil, err
	}

	if result.Token == "" {
		return nil, fmt.Errorf("%w: empty token in create response", ErrInvalidResponse)
	}

	return &result, nil
}

// ConfirmTransaction подтверждает транзакцию по токену
// Ответ содержит итоговый статус: AUTHORIZED - оплата прошла, остальные - провал.
// Ошибка ErrGatewayUnavailable означает неизвестный исход, а не провал
func (c *Client) ConfirmTransaction(ctx context.Context, token string) (*ConfirmTransactionResponse, error) {
	c.log.Info("ConfirmTransaction: token=%s", token)

	var result ConfirmTransactionResponse
	if err := c.do(ctx, http.MethodPut, "/transactions/"+token, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// RefundTransaction возвращает средства по подтверждённой транзакции
// Используется, когда деньги списаны, а бронирование создать не удалось
func (c *Client) RefundTransaction(ctx context.Context, token string, amount int64) (*RefundResponse, error) {
	c.log.Warn("RefundTransaction: token=%s, amount=%d", token, amount)

	var result RefundResponse
	if err := c.do(ctx, http.MethodPost, "/transactions/"+token+"/refunds", &RefundRequest{Amount: amount}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// do выполняет запрос к шлюзу и декодирует ответ
func (c *Client) do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isNetworkError(err) {
			return fmt.Errorf("%w: %s %s: %v", ErrGatewayUnavailable, method, path, err)
		}
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrTransactionNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status code %d", ErrGatewayUnavailable, resp.StatusCode)
	default:
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// isNetworkError определяет отказы транспорта: timeout, отказ соединения
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
