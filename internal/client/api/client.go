// Package api es el cliente HTTP de employees-api y sales-api.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

const (
	employeesPath = "/employees-api"
	salesPath     = "/sales-api"
)

// Error respuesta no exitosa de la API.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d", e.Status)
}

// IsNotFound indica si err es un 404 de la API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client cliente de la API de ventas.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New crea un cliente contra baseURL (p. ej. http://localhost:8080 o .../.netlify/functions).
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode}
		var e dto.ErrorResponse
		if raw, _ := io.ReadAll(resp.Body); json.Unmarshal(raw, &e) == nil {
			apiErr.Code, apiErr.Message = e.Code, e.Message
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decodificar respuesta: %w", err)
	}
	return nil
}

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

// ListEmployees GET /employees-api.
func (c *Client) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	var out []dto.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, employeesPath, nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Employee, 0, len(out))
	for _, e := range out {
		list = append(list, e.Entity())
	}
	return list, nil
}

// CreateEmployee POST /employees-api; el id lo asigna el servidor.
func (c *Client) CreateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error) {
	in := dto.CreateEmployeeRequest{
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Branch:       string(e.Branch),
	}
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPost, employeesPath, in, &out); err != nil {
		return entity.Employee{}, err
	}
	return out.Entity(), nil
}

// UpdateEmployee PUT /employees-api/{id} con la entidad completa.
func (c *Client) UpdateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error) {
	in := dto.UpdateEmployeeRequest{
		ID:           e.ID,
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Branch:       string(e.Branch),
	}
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPut, itemPath(employeesPath, e.ID), in, &out); err != nil {
		return entity.Employee{}, err
	}
	return out.Entity(), nil
}

// DeleteEmployee DELETE /employees-api/{id}.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(employeesPath, id), nil, nil)
}

// ListSales GET /sales-api.
func (c *Client) ListSales(ctx context.Context) ([]entity.SaleEntry, error) {
	var out []dto.SaleResponse
	if err := c.do(ctx, http.MethodGet, salesPath, nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.SaleEntry, 0, len(out))
	for _, s := range out {
		list = append(list, s.Entity())
	}
	return list, nil
}

// CreateSale POST /sales-api; id y total los asigna el servidor.
func (c *Client) CreateSale(ctx context.Context, s entity.SaleEntry) (entity.SaleEntry, error) {
	in := dto.CreateSaleRequest{
		Date:             s.Date,
		NetworkNumber:    s.NetworkNumber,
		MastercardAmount: dto.NewAmount(s.MastercardAmount),
		MadaAmount:       dto.NewAmount(s.MadaAmount),
		VisaAmount:       dto.NewAmount(s.VisaAmount),
		GCCAmount:        dto.NewAmount(s.GCCAmount),
		EmployeeID:       s.EmployeeID,
	}
	var out dto.SaleResponse
	if err := c.do(ctx, http.MethodPost, salesPath, in, &out); err != nil {
		return entity.SaleEntry{}, err
	}
	return out.Entity(), nil
}

// UpdateSale PUT /sales-api/{id} con la entidad completa.
func (c *Client) UpdateSale(ctx context.Context, s entity.SaleEntry) (entity.SaleEntry, error) {
	var out dto.SaleResponse
	if err := c.do(ctx, http.MethodPut, itemPath(salesPath, s.ID), dto.NewSaleResponse(&s), &out); err != nil {
		return entity.SaleEntry{}, err
	}
	return out.Entity(), nil
}

// DeleteSale DELETE /sales-api/{id}.
func (c *Client) DeleteSale(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(salesPath, id), nil, nil)
}
