package handlers_test

import (
	"net/http"
	"testing"

	"player-roster-backend/internal/api/handlers"
	"player-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	handler := handlers.NewHealthHandler(nil)

	ctx, recorder := testutils.CreateTestGinContext()
	handler.Live(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var got map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &got)
	assert.Equal(t, true, got["alive"])
	assert.Contains(t, got, "timestamp")
}
