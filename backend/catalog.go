package backend

import (
	"context"
	"fmt"

	"hardware-store/models"
)

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) FetchProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, fmt.Sprintf("/api/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.post(ctx, "/api/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, req models.CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.put(ctx, fmt.Sprintf("/api/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d", id))
}

func (c *Client) FetchTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	if err := c.get(ctx, "/api/tools", &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (c *Client) FetchTool(ctx context.Context, id int) (*models.Tool, error) {
	var tool models.Tool
	if err := c.get(ctx, fmt.Sprintf("/api/tools/%d", id), &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *Client) CreateTool(ctx context.Context, req models.CreateToolRequest) (*models.Tool, error) {
	var tool models.Tool
	if err := c.post(ctx, "/api/tools", req, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *Client) UpdateTool(ctx context.Context, id int, req models.CreateToolRequest) (*models.Tool, error) {
	var tool models.Tool
	if err := c.put(ctx, fmt.Sprintf("/api/tools/%d", id), req, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *Client) DeleteTool(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/tools/%d", id))
}
