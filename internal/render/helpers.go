package render

import (
	"bytes"
	"math"
	"net/url"
	"strconv"
	"strings"

	"catalog/sitegen/internal/domain"

	"github.com/flosch/pongo2/v6"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const placeholderImageURL = "https://placehold.co/400x300?text="

var markdownConverter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Helpers returns the functions every template can call.
func Helpers() pongo2.Context {
	return pongo2.Context{
		"price":     FormatPrice,
		"image_url": ImageURL,
		"markdown":  Markdown,
		"slug":      domain.Slug,
	}
}

// FormatPrice renders a raw price cell as US dollars with two decimals, e.g.
// "4.5" becomes "$4.50" and "-4.5" becomes "-$4.50". Values that are not
// finite numbers are returned unchanged.
func FormatPrice(raw string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return raw
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign + message.NewPrinter(language.AmericanEnglish).Sprintf("$%.2f", value)
}

// ImageURL returns the product image when it is an http(s) URL and a
// placeholder image captioned with the product name otherwise. Balloons get a
// balloon on the placeholder, everything else a plate.
func ImageURL(product *domain.Product) string {
	image := product.ImageURL()
	if strings.HasPrefix(image, "http") {
		return image
	}

	icon := "🍽️"
	if product.Category == "Balloons" {
		icon = "🎈"
	}
	return placeholderImageURL + icon + url.PathEscape(product.Name())
}

// Markdown converts src to HTML. The result is marked safe so templates do
// not escape it a second time.
func Markdown(src string) (*pongo2.Value, error) {
	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(src), &buf); err != nil {
		return nil, err
	}
	return pongo2.AsSafeValue(buf.String()), nil
}
