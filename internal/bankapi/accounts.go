package bankapi

import (
	"context"
	"fmt"
)

type Account struct {
	AccountNumber int64   `json:"accountNumber"`
	HolderName    string  `json:"holderName"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
}

// AccountFull is an account with its holder's contact details, available to
// listing views that show more than the ledger columns.
type AccountFull struct {
	Account
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

type CreateAccountRequest struct {
	HolderName  string  `json:"holderName"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Address     string  `json:"address,omitempty"`
}

type UpdateAccountRequest struct {
	HolderName  string  `json:"holderName"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Address     string  `json:"address,omitempty"`
}

func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.get(ctx, "/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) ListAccountsFull(ctx context.Context) ([]AccountFull, error) {
	var accounts []AccountFull
	if err := c.get(ctx, "/accounts/full", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, number int64) (*Account, error) {
	var account Account
	if err := c.get(ctx, fmt.Sprintf("/accounts/%d", number), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	var account Account
	if err := c.post(ctx, "/accounts", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, number int64, req UpdateAccountRequest) (*Account, error) {
	var account Account
	if err := c.put(ctx, fmt.Sprintf("/accounts/%d", number), req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, number int64) error {
	return c.delete(ctx, fmt.Sprintf("/accounts/%d", number))
}
