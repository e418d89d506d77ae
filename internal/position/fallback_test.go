package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/position"
	positionmock "github.com/KirkDiggler/layout-api/internal/position/mock"
	"github.com/KirkDiggler/layout-api/internal/testutils"
)

func TestFallbackUsesPrimaryResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := positionmock.NewMockCalculator(ctrl)
	secondary := positionmock.NewMockCalculator(ctrl)

	in := position.Input{Element: testutils.NewElement("e1").Build(), Room: testutils.Room(), View: "front", Zoom: 1}
	want := position.Result{XPos: 42, Strategy: "primary"}

	primary.EXPECT().Calculate(in).Return(want, nil)

	got, err := position.WithFallback(primary, secondary, nil).Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFallbackRecoversError(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := positionmock.NewMockCalculator(ctrl)
	secondary := positionmock.NewMockCalculator(ctrl)

	in := position.Input{Element: testutils.NewElement("e1").Build(), Room: testutils.Room(), View: "left", Zoom: 1}
	want := position.Result{XPos: 7, Strategy: "secondary"}

	primary.EXPECT().Calculate(in).Return(position.Result{}, errors.Internal("boom"))
	primary.EXPECT().Name().Return("primary").AnyTimes()
	secondary.EXPECT().Name().Return("secondary").AnyTimes()
	secondary.EXPECT().Calculate(in).Return(want, nil)

	got, err := position.WithFallback(primary, secondary, nil).Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFallbackRecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := positionmock.NewMockCalculator(ctrl)

	in := position.Input{Element: testutils.NewElement("e1").At(10, 20).Build(), Room: testutils.Room(), View: "right", Zoom: 1}

	primary.EXPECT().Calculate(in).DoAndReturn(func(position.Input) (position.Result, error) {
		panic("index out of range")
	})
	primary.EXPECT().Name().Return("primary").AnyTimes()

	got, err := position.WithFallback(primary, position.Legacy{}, nil).Calculate(in)
	require.NoError(t, err)

	want, err := position.Legacy{}.Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelectedUnifiedFallsBackOnBadView(t *testing.T) {
	in := position.Input{Element: testutils.NewElement("e1").At(10, 20).Build(), Room: testutils.Room(), View: "plan", Zoom: 1}

	got, err := position.Select(true, nil).Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, position.StrategyLegacy, got.Strategy)
}
