package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	input := "id,category,specifications\n" +
		"1,Tools,weight: 2kg\n" +
		"2,Balloons,color: red\n" +
		"3,Tools,weight: 5kg\n" +
		"4,Paper Plates,count: 50\n" +
		"5,Balloons,color: blue\n"

	products, err := ReadProducts(strings.NewReader(input))
	require.NoError(t, err)

	categories := Categorize(products)
	assert.Equal(t, []string{"Tools", "Balloons", "Paper Plates"}, categories.Names())

	total := 0
	for _, group := range categories.Groups() {
		for _, product := range group.Products {
			assert.Equal(t, group.Name, product.Category)
		}
		total += len(group.Products)
	}
	assert.Equal(t, len(products), total)

	ids := func(name string) []string {
		var out []string
		for _, p := range categories.Get(name).Products {
			out = append(out, p.ID)
		}
		return out
	}
	assert.Equal(t, []string{"1", "3"}, ids("Tools"))
	assert.Equal(t, []string{"2", "5"}, ids("Balloons"))
	assert.Equal(t, []string{"4"}, ids("Paper Plates"))
}

func TestCategorizeEmpty(t *testing.T) {
	categories := Categorize(nil)
	assert.Zero(t, categories.Len())
	assert.Empty(t, categories.Names())
}
