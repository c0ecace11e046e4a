package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	err := cerr.Validationf("asset %d not found", 3)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatusCode)
	assert.Equal(t, "[400] asset 3 not found", err.Error())

	wrapped := fmt.Errorf("creating asset: %w", err)
	assert.True(t, cerr.IsValidation(wrapped))
	var ve cerr.ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, cerr.ValidationError("asset 3 not found"), ve)

	assert.False(t, cerr.IsValidation(cerr.NotFound(errors.New("x"))))
}

func TestConflict(t *testing.T) {
	err := cerr.Conflict(errors.New("tx conflict"))
	assert.Equal(t, http.StatusConflict, err.HTTPStatusCode)
	assert.False(t, cerr.IsValidation(err))
}
