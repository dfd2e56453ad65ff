package bankapi

import (
	"context"
	"fmt"
)

type Employee struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type CreateEmployeeRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type UpdateEmployeeRequest struct {
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.get(ctx, "/employees", &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var employee Employee
	if err := c.get(ctx, fmt.Sprintf("/employees/%d", id), &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := c.post(ctx, "/employees", req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := c.put(ctx, fmt.Sprintf("/employees/%d", id), req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/employees/%d", id))
}
