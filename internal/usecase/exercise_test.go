package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/microservices/internal/entity"
	"github.com/vadimbarashkov/microservices/mocks/usecase"
)

type ExerciseUseCaseTestSuite struct {
	suite.Suite
	errUnknown       error
	now              time.Time
	userRepoMock     *usecase.MockUserRepository
	exerciseRepoMock *usecase.MockExerciseRepository
	uc               *ExerciseUseCase
}

func (suite *ExerciseUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC)
}

func (suite *ExerciseUseCaseTestSuite) SetupSubTest() {
	suite.userRepoMock = usecase.NewMockUserRepository(suite.T())
	suite.exerciseRepoMock = usecase.NewMockExerciseRepository(suite.T())
	suite.uc = NewExerciseUseCase(suite.userRepoMock, suite.exerciseRepoMock)
	suite.uc.now = func() time.Time { return suite.now }
}

func (suite *ExerciseUseCaseTestSuite) TearDownSubTest() {
	suite.userRepoMock.AssertExpectations(suite.T())
	suite.exerciseRepoMock.AssertExpectations(suite.T())
}

func (suite *ExerciseUseCaseTestSuite) alice() *entity.User {
	return &entity.User{ID: "5f1d7f3c9a4b2e0012345678", Username: "alice"}
}

func (suite *ExerciseUseCaseTestSuite) TestCreateUser() {
	suite.Run("username taken", func() {
		suite.userRepoMock.
			On("RetrieveByUsername", mock.Anything, "alice").
			Once().
			Return(suite.alice(), nil)

		user, err := suite.uc.CreateUser(context.Background(), "alice")

		suite.ErrorIs(err, entity.ErrUsernameTaken)
		suite.Nil(user)
	})

	suite.Run("lookup error", func() {
		suite.userRepoMock.
			On("RetrieveByUsername", mock.Anything, "alice").
			Once().
			Return(nil, suite.errUnknown)

		user, err := suite.uc.CreateUser(context.Background(), "alice")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(user)
	})

	suite.Run("username taken concurrently", func() {
		suite.userRepoMock.
			On("RetrieveByUsername", mock.Anything, "alice").
			Once().
			Return(nil, entity.ErrUserNotFound)
		suite.userRepoMock.
			On("Save", mock.Anything, mock.Anything, "alice").
			Once().
			Return(nil, entity.ErrUsernameTaken)

		user, err := suite.uc.CreateUser(context.Background(), "alice")

		suite.ErrorIs(err, entity.ErrUsernameTaken)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		hexID := mock.MatchedBy(func(id string) bool {
			return regexp.MustCompile(`^[0-9a-f]{24}$`).MatchString(id)
		})

		suite.userRepoMock.
			On("RetrieveByUsername", mock.Anything, "alice").
			Once().
			Return(nil, entity.ErrUserNotFound)
		suite.userRepoMock.
			On("Save", mock.Anything, hexID, "alice").
			Once().
			Return(suite.alice(), nil)

		user, err := suite.uc.CreateUser(context.Background(), "alice")

		suite.NoError(err)
		suite.Equal("alice", user.Username)
	})
}

func (suite *ExerciseUseCaseTestSuite) TestListUsers() {
	suite.Run("success", func() {
		suite.userRepoMock.
			On("List", mock.Anything).
			Once().
			Return([]entity.User{*suite.alice()}, nil)

		users, err := suite.uc.ListUsers(context.Background())

		suite.NoError(err)
		suite.Len(users, 1)
	})

	suite.Run("unknown error", func() {
		suite.userRepoMock.
			On("List", mock.Anything).
			Once().
			Return(nil, suite.errUnknown)

		users, err := suite.uc.ListUsers(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(users)
	})
}

func (suite *ExerciseUseCaseTestSuite) TestAddExercise() {
	alice := suite.alice()

	suite.Run("invalid date", func() {
		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, alice.ID).
			Once().
			Return(alice, nil)

		user, ex, err := suite.uc.AddExercise(context.Background(), alice.ID, ExerciseInput{
			Description: "run",
			Duration:    30,
			Date:        "yesterday-ish",
		})

		suite.ErrorIs(err, entity.ErrInvalidDate)
		suite.Nil(user)
		suite.Nil(ex)
	})

	suite.Run("unknown user", func() {
		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, "missing").
			Once().
			Return(nil, entity.ErrUserNotFound)

		user, ex, err := suite.uc.AddExercise(context.Background(), "missing", ExerciseInput{
			Description: "run",
			Duration:    30,
		})

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(user)
		suite.Nil(ex)
	})

	suite.Run("unknown user with invalid date", func() {
		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, "missing").
			Once().
			Return(nil, entity.ErrUserNotFound)

		user, ex, err := suite.uc.AddExercise(context.Background(), "missing", ExerciseInput{
			Description: "run",
			Duration:    30,
			Date:        "yesterday-ish",
		})

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.NotErrorIs(err, entity.ErrInvalidDate)
		suite.Nil(user)
		suite.Nil(ex)
	})

	suite.Run("defaults to today", func() {
		want := entity.Exercise{
			UserID:      alice.ID,
			Description: "run",
			Duration:    30,
			Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		}

		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, alice.ID).
			Once().
			Return(alice, nil)
		suite.exerciseRepoMock.
			On("Save", mock.Anything, want).
			Once().
			Return(&want, nil)

		user, ex, err := suite.uc.AddExercise(context.Background(), alice.ID, ExerciseInput{
			Description: "run",
			Duration:    30,
		})

		suite.NoError(err)
		suite.Equal(alice, user)
		suite.Equal(want.Date, ex.Date)
	})

	suite.Run("explicit date", func() {
		want := entity.Exercise{
			UserID:      alice.ID,
			Description: "swim",
			Duration:    45.5,
			Date:        time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		}

		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, alice.ID).
			Once().
			Return(alice, nil)
		suite.exerciseRepoMock.
			On("Save", mock.Anything, want).
			Once().
			Return(&want, nil)

		_, ex, err := suite.uc.AddExercise(context.Background(), alice.ID, ExerciseInput{
			Description: "swim",
			Duration:    45.5,
			Date:        "2021-01-01",
		})

		suite.NoError(err)
		suite.Equal(want.Date, ex.Date)
	})
}

func (suite *ExerciseUseCaseTestSuite) TestGetLog() {
	alice := suite.alice()
	epoch := time.Unix(0, 0).UTC()
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	suite.Run("unknown user", func() {
		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, "missing").
			Once().
			Return(nil, entity.ErrUserNotFound)

		log, err := suite.uc.GetLog(context.Background(), "missing", LogQuery{})

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(log)
	})

	suite.Run("default bounds", func() {
		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, alice.ID).
			Once().
			Return(alice, nil)
		suite.exerciseRepoMock.
			On("ListByUser", mock.Anything, alice.ID, entity.LogFilter{From: epoch, To: today}).
			Once().
			Return([]entity.Exercise{}, nil)

		log, err := suite.uc.GetLog(context.Background(), alice.ID, LogQuery{
			From:  "garbage",
			Limit: "-3",
		})

		suite.NoError(err)
		suite.Equal("alice", log.Username)
		suite.Zero(log.Count())
	})

	suite.Run("from filter and limit", func() {
		entries := []entity.Exercise{
			{UserID: alice.ID, Description: "run", Duration: 30, Date: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)},
		}

		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, alice.ID).
			Once().
			Return(alice, nil)
		suite.exerciseRepoMock.
			On("ListByUser", mock.Anything, alice.ID, entity.LogFilter{
				From:  time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
				To:    time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC),
				Limit: 5,
			}).
			Once().
			Return(entries, nil)

		log, err := suite.uc.GetLog(context.Background(), alice.ID, LogQuery{
			From:  "2020-06-01",
			To:    "2022-12-31",
			Limit: "5",
		})

		suite.NoError(err)
		suite.Equal(1, log.Count())
		suite.Equal(entries, log.Log)
	})

	suite.Run("store error", func() {
		suite.userRepoMock.
			On("RetrieveByID", mock.Anything, alice.ID).
			Once().
			Return(alice, nil)
		suite.exerciseRepoMock.
			On("ListByUser", mock.Anything, alice.ID, mock.Anything).
			Once().
			Return(nil, suite.errUnknown)

		log, err := suite.uc.GetLog(context.Background(), alice.ID, LogQuery{})

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(log)
	})
}

func TestExerciseUseCase(t *testing.T) {
	suite.Run(t, new(ExerciseUseCaseTestSuite))
}
