package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyRequestQuantity(t *testing.T) {
	for body, want := range map[string]int{
		`{"quantity":3}`:     3,
		`{"quantity":"3"}`:   3,
		`{"quantity":" 4 "}`: 4,
		`{"quantity":2.9}`:   2,
		`{"quantity":-1}`:    -1,
	} {
		var req buyRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.NotNil(t, req.Quantity.N, body)
		assert.Equal(t, want, *req.Quantity.N, body)
	}

	for _, body := range []string{`{}`, `{"quantity":null}`} {
		var req buyRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Nil(t, req.Quantity.N, body)
	}

	for _, body := range []string{`{"quantity":"three"}`, `{"quantity":"2.5"}`, `{"quantity":true}`, `{"quantity":1e12}`} {
		var req buyRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}
