package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := map[Kind]int{
		KindInvalidFileType:   http.StatusBadRequest,
		KindMissingFile:       http.StatusBadRequest,
		KindValidation:        http.StatusBadRequest,
		KindFileTooLarge:      http.StatusRequestEntityTooLarge,
		KindExtractionFailure: http.StatusUnprocessableEntity,
		KindStorageFailure:    http.StatusInternalServerError,
		KindNetworkFailure:    http.StatusBadGateway,
		KindNotFound:          http.StatusNotFound,
	}
	for kind, status := range cases {
		assert.Equal(t, status, StatusOf(kind), string(kind))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save resume: %w", Wrap(KindStorageFailure, "Failed to store resume", cause))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindStorageFailure, appErr.Kind)
	assert.Equal(t, "Failed to store resume", appErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, KindStorageFailure))
	assert.False(t, Is(err, KindNotFound))
	assert.False(t, Is(cause, KindStorageFailure))
}
