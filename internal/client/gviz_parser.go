package client

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"catalog/sitegen/internal/catalog"
	"catalog/sitegen/internal/domain"

	log "github.com/sirupsen/logrus"
)

var setResponseRegex = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\);`)

type gvizResponse struct {
	Status string `json:"status"`
	Errors []struct {
		Reason          string `json:"reason"`
		Message         string `json:"message"`
		DetailedMessage string `json:"detailed_message"`
	} `json:"errors"`
	Table struct {
		Cols []gvizColumn `json:"cols"`
		Rows []struct {
			C []*gvizCell `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

type gvizColumn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type gvizCell struct {
	V any     `json:"v"`
	F *string `json:"f"`
}

type gvizParser struct{}

func newGvizParser() *gvizParser {
	return &gvizParser{}
}

// ParseResponse extracts the header and rows from a gviz "out:json" body,
// which wraps the JSON payload in a setResponse(...) call.
func (p *gvizParser) ParseResponse(body string) ([]string, [][]string, error) {
	matches := setResponseRegex.FindStringSubmatch(body)
	if len(matches) < 2 {
		return nil, nil, fmt.Errorf("%w: sheet response has no setResponse payload", catalog.ErrDataFormat)
	}

	var resp gvizResponse
	if err := json.Unmarshal([]byte(matches[1]), &resp); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode sheet payload: %w", catalog.ErrDataFormat, err)
	}

	if resp.Status == "error" {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, strings.TrimSpace(e.Reason+": "+e.DetailedMessage))
		}
		return nil, nil, fmt.Errorf("sheet query failed: %s", strings.Join(messages, "; "))
	}

	header := p.extractHeader(resp.Table.Cols)

	rows := make([][]string, 0, len(resp.Table.Rows))
	for _, row := range resp.Table.Rows {
		values := make([]string, len(header))
		for i := range values {
			if i < len(row.C) {
				values[i] = cellValue(row.C[i])
			}
		}
		rows = append(rows, values)
	}

	log.Debugf("Parsed sheet payload with %d columns and %d rows", len(header), len(rows))
	return header, rows, nil
}

// extractHeader names columns by their label, falling back to the products
// sheet layout and then to the column letter.
func (p *gvizParser) extractHeader(cols []gvizColumn) []string {
	header := make([]string, len(cols))
	for i, col := range cols {
		switch {
		case strings.TrimSpace(col.Label) != "":
			header[i] = strings.TrimSpace(col.Label)
		case i < len(domain.SheetColumns):
			header[i] = domain.SheetColumns[i].String()
		default:
			header[i] = col.ID
		}
	}
	return header
}

func cellValue(c *gvizCell) string {
	if c == nil || c.V == nil {
		return ""
	}

	switch v := c.V.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		if c.F != nil {
			return *c.F
		}
		return fmt.Sprint(v)
	}
}
