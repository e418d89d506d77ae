package flags_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/layout-api/internal/errors"
	mockclock "github.com/KirkDiggler/layout-api/internal/pkg/clock/mock"
	"github.com/KirkDiggler/layout-api/internal/repositories/featureflag"
	featureflagmock "github.com/KirkDiggler/layout-api/internal/repositories/featureflag/mock"
	"github.com/KirkDiggler/layout-api/internal/services/flags"
)

type EvaluatorTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockRepo  *featureflagmock.MockRepository
	mockClock *mockclock.MockClock
	evaluator flags.Evaluator
	start     time.Time
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (s *EvaluatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = featureflagmock.NewMockRepository(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	e, err := flags.NewEvaluator(&flags.Config{
		Repository: s.mockRepo,
		Clock:      s.mockClock,
		TTL:        time.Minute,
	})
	s.Require().NoError(err)
	s.evaluator = e
}

func (s *EvaluatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EvaluatorTestSuite) TestNewEvaluatorRequiresRepository() {
	_, err := flags.NewEvaluator(&flags.Config{TTL: -time.Second})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "repository")
	s.Assert().Contains(err.Error(), "ttl")
}

func (s *EvaluatorTestSuite) TestCachesWithinTTL() {
	input := featureflag.GetInput{Name: flags.FlagUnifiedPositioning}
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.start),
		s.mockRepo.EXPECT().Get(s.ctx, input).Return(&featureflag.GetOutput{Enabled: true}, nil),
		s.mockClock.EXPECT().Now().Return(s.start.Add(30*time.Second)),
		s.mockClock.EXPECT().Now().Return(s.start.Add(2*time.Minute)),
		s.mockRepo.EXPECT().Get(s.ctx, input).Return(&featureflag.GetOutput{Enabled: false}, nil),
	)

	s.Assert().True(s.evaluator.IsEnabled(s.ctx, flags.FlagUnifiedPositioning))
	s.Assert().True(s.evaluator.IsEnabled(s.ctx, flags.FlagUnifiedPositioning))
	s.Assert().False(s.evaluator.IsEnabled(s.ctx, flags.FlagUnifiedPositioning))
}

func (s *EvaluatorTestSuite) TestMissingFlagIsCachedAsDisabled() {
	s.mockClock.EXPECT().Now().Return(s.start).Times(2)
	s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("flag not found")).Times(1)

	s.Assert().False(s.evaluator.IsEnabled(s.ctx, "new_flag"))
	s.Assert().False(s.evaluator.IsEnabled(s.ctx, "new_flag"))
}

func (s *EvaluatorTestSuite) TestStorageFailureIsDisabledAndRetried() {
	s.mockClock.EXPECT().Now().Return(s.start).Times(3)
	gomock.InOrder(
		s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down")),
		s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down")),
		s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(&featureflag.GetOutput{Enabled: true}, nil),
	)

	s.Assert().False(s.evaluator.IsEnabled(s.ctx, flags.FlagUnifiedPositioning))
	s.Assert().False(s.evaluator.IsEnabled(s.ctx, flags.FlagUnifiedPositioning))
	s.Assert().True(s.evaluator.IsEnabled(s.ctx, flags.FlagUnifiedPositioning))
}

func (s *EvaluatorTestSuite) TestFlagsCachedIndependently() {
	s.mockClock.EXPECT().Now().Return(s.start).AnyTimes()
	s.mockRepo.EXPECT().Get(s.ctx, featureflag.GetInput{Name: "a"}).Return(&featureflag.GetOutput{Enabled: true}, nil)
	s.mockRepo.EXPECT().Get(s.ctx, featureflag.GetInput{Name: "b"}).Return(&featureflag.GetOutput{Enabled: false}, nil)

	s.Assert().True(s.evaluator.IsEnabled(s.ctx, "a"))
	s.Assert().False(s.evaluator.IsEnabled(s.ctx, "b"))
	s.Assert().True(s.evaluator.IsEnabled(s.ctx, "a"))
}
