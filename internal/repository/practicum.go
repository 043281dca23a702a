package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/avoronova/homework-bot/internal/model"
)

var (
	// ErrUnavailable means the statuses endpoint couldn't be reached or answered with a non-200 code
	ErrUnavailable = errors.New("statuses endpoint unavailable")
	// ErrBadPayload means the response body doesn't match the API documentation
	ErrBadPayload = errors.New("unexpected response payload")
)

type Fetcher interface {
	Statuses(ctx context.Context, from int64) (*model.StatusesResponse, error)
}

// Practicum requests homework statuses updated since a given timestamp
type Practicum struct {
	cli       *http.Client
	validator *validator.Validate
	endpoint  string
	token     string
}

func NewPracticum(validator *validator.Validate, endpoint, token string) *Practicum {
	return &Practicum{
		cli:       &http.Client{Timeout: 30 * time.Second},
		validator: validator,
		endpoint:  endpoint,
		token:     token,
	}
}

func (p *Practicum) Statuses(ctx context.Context, from int64) (*model.StatusesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("practicum repository couldn't create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("OAuth %s", p.token))
	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := p.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	}

	var statuses model.StatusesResponse
	if err = json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if err = p.validator.Struct(&statuses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return &statuses, nil
}
