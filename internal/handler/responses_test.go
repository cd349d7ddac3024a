package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusCreated, SuccessResponse{Message: "queued"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"queued"}`, rec.Body.String())
}

func TestRespondJSON_EncodeFailureIsServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"`+ErrMsgGenericServerError+`"}`, rec.Body.String())
}

func TestBufferPool(t *testing.T) {
	p := newBufferPool(16, 64)

	buf := p.get()
	require.NotNil(t, buf)
	assert.GreaterOrEqual(t, buf.Cap(), 16)

	buf.WriteString("payload")
	assert.True(t, p.put(buf))
	assert.Zero(t, buf.Len(), "returned buffers are reset")

	large := bytes.NewBuffer(make([]byte, 0, 128))
	assert.False(t, p.put(large), "oversized buffers are not retained")
}
