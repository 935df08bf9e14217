package nvim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/dumbvim/internal/infrastructure/nvim/mocks"
)

func TestClient_SetOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().SetOption("guifont", "Menlo:h13").Return(nil)

	client := NewClient(api)
	require.NoError(t, client.SetOption(context.Background(), "guifont", "Menlo:h13"))
}

func TestClient_SetOptionWrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	rpcErr := errors.New("Invalid font(s)")
	api.EXPECT().SetOption("guifontwide", "x").Return(rpcErr)

	err := NewClient(api).SetOption(context.Background(), "guifontwide", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, rpcErr)
	assert.Contains(t, err.Error(), "guifontwide")
}

func TestClient_ErrWriteln(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().WritelnErr("E596: Invalid font(s): gufont=Menlo_13").Return(nil)

	err := NewClient(api).ErrWriteln(context.Background(), "E596: Invalid font(s): gufont=Menlo_13")
	require.NoError(t, err)
}

func TestClient_CancelledContextSkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(api)
	assert.ErrorIs(t, client.SetOption(ctx, "guifont", "Menlo:h13"), context.Canceled)
	assert.ErrorIs(t, client.ErrWriteln(ctx, "E1: x"), context.Canceled)
}
