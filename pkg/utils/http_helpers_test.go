package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFromQuery(t *testing.T) {
	t.Run("valores por defecto", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{})
		assert.Equal(t, DefaultLimit, f.Limit)
		assert.Equal(t, 1, f.Page)
		assert.Zero(t, f.Offset)
		assert.Empty(t, f.Search)
	})

	t.Run("search y sort", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{
			"search":         {"urgencias"},
			"sort[edificio]": {"desc"},
			"sort[planta]":   {"sideways"}, // dirección inválida se ignora
		})
		assert.Equal(t, "urgencias", f.Search)
		require.Len(t, f.Sort, 1)
		assert.Equal(t, "desc", f.Sort["edificio"])
	})

	t.Run("filter por campo", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{
			"filter[servicio]": {"Urgencias"},
		})
		assert.Equal(t, "Urgencias", f.Filter["servicio"])
	})

	t.Run("limit se recorta al máximo", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"limit": {"9999"}})
		assert.Equal(t, MaxLimit, f.Limit)
	})

	t.Run("page calcula el offset", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"limit": {"50"}, "page": {"3"}})
		assert.Equal(t, 50, f.Limit)
		assert.Equal(t, 100, f.Offset)
	})

	t.Run("offset explícito manda", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"page": {"3"}, "offset": {"7"}})
		assert.Equal(t, 7, f.Offset)
	})
}
