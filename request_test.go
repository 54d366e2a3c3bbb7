package edgegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	t.Run("starts with no headers, body, or cap", func(t *testing.T) {
		req := NewRequest("/papi/v1/contracts")

		assert.Equal(t, "/papi/v1/contracts", req.path)
		assert.Nil(t, req.headers)
		assert.Nil(t, req.body)
		assert.False(t, req.hasMaxBody)
	})
}

func TestRequestBuilder(t *testing.T) {
	t.Run("builders return updated copies", func(t *testing.T) {
		base := NewRequest("/test")
		withBody := base.WithBody([]byte("data"))

		assert.Nil(t, base.body)
		assert.Equal(t, []byte("data"), withBody.body)
	})

	t.Run("setters overwrite prior values", func(t *testing.T) {
		req := NewRequest("/test").
			WithBody([]byte("first")).
			WithBody([]byte("second")).
			WithMaxBody(10).
			WithMaxBody(20)

		assert.Equal(t, []byte("second"), req.body)
		assert.Equal(t, 20, req.maxBody)
	})

	t.Run("header map is cloned", func(t *testing.T) {
		headers := map[string]string{"X-Test": "one"}
		req := NewRequest("/test").WithHeaders(headers)

		headers["X-Test"] = "changed"
		headers["X-Extra"] = "added"

		assert.Equal(t, map[string]string{"X-Test": "one"}, req.headers)
	})

	t.Run("body bytes are cloned", func(t *testing.T) {
		body := []byte("original")
		req := NewRequest("/test").WithBody(body)

		body[0] = 'X'

		assert.Equal(t, []byte("original"), req.body)
	})

	t.Run("max body zero is distinct from unset", func(t *testing.T) {
		unset := NewRequest("/test")
		zero := NewRequest("/test").WithMaxBody(0)

		assert.False(t, unset.hasMaxBody)
		assert.True(t, zero.hasMaxBody)
		assert.Zero(t, zero.maxBody)
	})
}
