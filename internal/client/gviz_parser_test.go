package client

import (
	"testing"

	"catalog/sitegen/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labeledResponse = `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","reqId":"0","status":"ok","sig":"1","table":{"cols":[{"id":"A","label":"id","type":"string"},{"id":"B","label":"name","type":"string"},{"id":"C","label":"category","type":"string"},{"id":"D","label":"price","type":"number","pattern":"General"},{"id":"E","label":"specifications","type":"string"}],"rows":[{"c":[{"v":"1"},{"v":"Hammer"},{"v":"Tools"},{"v":12.5,"f":"12.5"},{"v":"weight: 2kg"}]},{"c":[{"v":"2"},null,{"v":"Tools"},{"v":3.0,"f":"3"},{"v":"weight: 5kg"}]}],"parsedNumHeaders":1}});`

func TestParseResponseLabeledColumns(t *testing.T) {
	header, rows, err := newGvizParser().ParseResponse(labeledResponse)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "category", "price", "specifications"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Hammer", "Tools", "12.5", "weight: 2kg"}, rows[0])
	assert.Equal(t, []string{"2", "", "Tools", "3", "weight: 5kg"}, rows[1])
}

func TestParseResponseUnlabeledColumns(t *testing.T) {
	body := `google.visualization.Query.setResponse({"status":"ok","table":{"cols":[{"id":"A","label":""},{"id":"B","label":""},{"id":"C","label":""}],"rows":[{"c":[{"v":"7"},{"v":"Balloon"},{"v":"Balloons"}]}]}});`

	header, rows, err := newGvizParser().ParseResponse(body)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "category"}, header)
	assert.Equal(t, [][]string{{"7", "Balloon", "Balloons"}}, rows)
}

func TestParseResponseShortRow(t *testing.T) {
	body := `google.visualization.Query.setResponse({"status":"ok","table":{"cols":[{"id":"A","label":"id"},{"id":"B","label":"in_stock"},{"id":"C","label":"note"}],"rows":[{"c":[{"v":"1"},{"v":true}]}]}});`

	_, rows, err := newGvizParser().ParseResponse(body)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "true", ""}}, rows)
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		dataFormat bool
	}{
		{name: "no wrapper", body: `{"status":"ok"}`, dataFormat: true},
		{name: "invalid json", body: `google.visualization.Query.setResponse({"status":);`, dataFormat: true},
		{name: "query error", body: `google.visualization.Query.setResponse({"status":"error","errors":[{"reason":"invalid_query","detailed_message":"Invalid sheet"}]});`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := newGvizParser().ParseResponse(tt.body)
			require.Error(t, err)
			if tt.dataFormat {
				assert.ErrorIs(t, err, catalog.ErrDataFormat)
			} else {
				assert.Contains(t, err.Error(), "Invalid sheet")
			}
		})
	}
}
