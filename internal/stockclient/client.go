// Package stockclient es el cliente HTTP del servicio de transacciones hacia
// el servicio de productos. Hay un único cliente por proceso, configurado una
// vez con la URL base y el timeout; un timeout se trata igual que una
// respuesta de error.
package stockclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-inventario-services/internal/apperr"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ProductoRemoto es la vista mínima del producto que necesita la
// reconciliación de stock.
type ProductoRemoto struct {
	ID     uint    `json:"id"`
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
	Stock  int     `json:"stock"`
}

type Client interface {
	GetProducto(ctx context.Context, id uint) (*ProductoRemoto, error)
	PatchStock(ctx context.Context, id uint, stock int) error
}

type client struct {
	http *resty.Client
}

// New construye el cliente de larga vida hacia el API de productos.
func New(baseURL string, timeout time.Duration) Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	// Cada llamada lleva un X-Request-ID para correlacionar los avisos de
	// reconciliación entre los logs de ambos servicios.
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &client{http: c}
}

func (c *client) GetProducto(ctx context.Context, id uint) (*ProductoRemoto, error) {
	var producto ProductoRemoto
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&producto).
		Get(fmt.Sprintf("/api/productos/%d", id))
	if err != nil {
		return nil, &apperr.RemoteUnavailableError{Op: "get producto", Err: err}
	}
	if resp.IsError() {
		return nil, &apperr.RemoteUnavailableError{
			Op:  "get producto",
			Err: fmt.Errorf("status %d", resp.StatusCode()),
		}
	}
	return &producto, nil
}

func (c *client) PatchStock(ctx context.Context, id uint, stock int) error {
	// el cuerpo es el entero JSON a secas, no un objeto
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(strconv.Itoa(stock)).
		Patch(fmt.Sprintf("/api/productos/%d/stock", id))
	if err != nil {
		return &apperr.RemoteUnavailableError{Op: "patch stock", Err: err}
	}
	if resp.IsError() {
		return &apperr.RemoteUnavailableError{
			Op:  "patch stock",
			Err: fmt.Errorf("status %d", resp.StatusCode()),
		}
	}
	return nil
}
