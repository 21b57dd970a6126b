package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"catalog/sitegen/internal/catalog"
	"catalog/sitegen/internal/config"
	"catalog/sitegen/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// SheetsClient loads the catalog from a Google Sheets tab through the gviz
// query endpoint.
type SheetsClient interface {
	catalog.Source
	FetchRows(ctx context.Context) ([]string, [][]string, error)
}

type sheetsClient struct {
	config     config.SheetsConfig
	baseURL    string
	httpClient *resty.Client
	parser     *gvizParser
}

func NewSheetsClient(cfg config.SheetsConfig) SheetsClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json,text/javascript,*/*;q=0.8")

	return &sheetsClient{
		config:     cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
		parser:     newGvizParser(),
	}
}

func (c *sheetsClient) Name() string {
	return fmt.Sprintf("sheet %s/%s", c.config.SheetID, c.config.SheetName)
}

func (c *sheetsClient) Load(ctx context.Context) ([]*domain.Product, error) {
	header, rows, err := c.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	products, err := catalog.BuildProducts(header, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build products from %s: %w", c.Name(), err)
	}

	log.Debugf("Loaded %d products from %s", len(products), c.Name())
	return products, nil
}

func (c *sheetsClient) FetchRows(ctx context.Context) ([]string, [][]string, error) {
	if c.config.SheetID == "" {
		return nil, nil, fmt.Errorf("sheet id is not configured")
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch %s: %w", c.Name(), err)
	}

	header, rows, err := c.parser.ParseResponse(body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", c.Name(), err)
	}

	return header, rows, nil
}

func (c *sheetsClient) fetch(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq", c.baseURL, url.PathEscape(c.config.SheetID))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("tqx", "out:json").
		SetQueryParam("sheet", c.config.SheetName).
		Get(endpoint)

	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return resp.String(), nil
}
