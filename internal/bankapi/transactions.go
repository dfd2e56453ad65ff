package bankapi

import (
	"context"
	"fmt"
)

// ApprovalThreshold is the amount above which a transaction is parked for
// manager approval instead of posting immediately.
const ApprovalThreshold = 200000

// NeedsApproval reports whether a transaction of the given amount requires
// manager approval. The threshold itself posts without approval.
func NeedsApproval(amount float64) bool {
	return amount > ApprovalThreshold
}

const (
	StatusCompleted = "COMPLETED"
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
)

type Transaction struct {
	ID            int64   `json:"id"`
	AccountNumber int64   `json:"accountNumber"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	PerformedBy   string  `json:"performedBy,omitempty"`
	ToAccount     *int64  `json:"toAccount,omitempty"`
}

type DepositRequest struct {
	AccountNumber int64   `json:"accountNumber"`
	Amount        float64 `json:"amount"`
}

type WithdrawRequest struct {
	AccountNumber int64   `json:"accountNumber"`
	Amount        float64 `json:"amount"`
}

type TransferRequest struct {
	FromAccount int64   `json:"fromAccount"`
	ToAccount   int64   `json:"toAccount"`
	Amount      float64 `json:"amount"`
}

func (c *Client) Deposit(ctx context.Context, req DepositRequest) (*Transaction, error) {
	var tx Transaction
	if err := c.post(ctx, "/transactions/deposit", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Withdraw(ctx context.Context, req WithdrawRequest) (*Transaction, error) {
	var tx Transaction
	if err := c.post(ctx, "/transactions/withdraw", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*Transaction, error) {
	var tx Transaction
	if err := c.post(ctx, "/transactions/transfer", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// History lists the transactions posted against an account.
func (c *Client) History(ctx context.Context, accountNumber int64) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/%d", accountNumber), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// PendingApprovals lists transactions parked above the approval threshold.
func (c *Client) PendingApprovals(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, "/transactions/pending", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) Approve(ctx context.Context, id int64) (*Transaction, error) {
	var tx Transaction
	if err := c.post(ctx, fmt.Sprintf("/transactions/approve/%d", id), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Reject(ctx context.Context, id int64) (*Transaction, error) {
	var tx Transaction
	if err := c.post(ctx, fmt.Sprintf("/transactions/reject/%d", id), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Recent lists the most recent transactions across all accounts.
func (c *Client) Recent(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, "/transactions/recent", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ByDate lists transactions posted on a calendar day, date in YYYY-MM-DD.
func (c *Client) ByDate(ctx context.Context, date string) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, "/transactions/by-date?date="+date, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ClerkTodayTransactions lists the transactions a clerk performed today.
func (c *Client) ClerkTodayTransactions(ctx context.Context, clerkID int64) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/clerk/%d/today", clerkID), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// RecentApprovalRequests lists a clerk's recent above-threshold requests.
func (c *Client) RecentApprovalRequests(ctx context.Context, clerkID int64) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/clerk/%d/approval-requests", clerkID), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
