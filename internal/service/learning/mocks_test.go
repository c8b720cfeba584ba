package learning

import (
	"context"
	"sync"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

var _ wordResolver = &wordResolverMock{}

type wordResolverMock struct {
	ResolveFunc func(ctx context.Context, word string) (domain.WordDetails, error)

	calls struct {
		Resolve []struct {
			Word string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *wordResolverMock) Resolve(ctx context.Context, word string) (domain.WordDetails, error) {
	if mock.ResolveFunc == nil {
		panic("wordResolverMock.ResolveFunc: method is nil but wordResolver.Resolve was just called")
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, struct{ Word string }{Word: word})
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, word)
}

func (mock *wordResolverMock) ResolveCalls() []struct{ Word string } {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

var _ learnedWordRepo = &learnedWordRepoMock{}

type learnedWordRepoMock struct {
	UpsertFunc        func(ctx context.Context, studentID string, details domain.WordDetails) (*domain.LearnedWord, error)
	RecordReviewFunc  func(ctx context.Context, studentID, word string, mastered bool) (*domain.LearnedWord, error)
	ListByStudentFunc func(ctx context.Context, studentID string, limit, offset int) ([]*domain.LearnedWord, int, error)

	calls struct {
		Upsert []struct {
			StudentID string
			Details   domain.WordDetails
		}
		RecordReview []struct {
			StudentID string
			Word      string
			Mastered  bool
		}
		ListByStudent []struct {
			StudentID string
			Limit     int
			Offset    int
		}
	}
	lockUpsert        sync.RWMutex
	lockRecordReview  sync.RWMutex
	lockListByStudent sync.RWMutex
}

func (mock *learnedWordRepoMock) Upsert(ctx context.Context, studentID string, details domain.WordDetails) (*domain.LearnedWord, error) {
	if mock.UpsertFunc == nil {
		panic("learnedWordRepoMock.UpsertFunc: method is nil but learnedWordRepo.Upsert was just called")
	}
	callInfo := struct {
		StudentID string
		Details   domain.WordDetails
	}{StudentID: studentID, Details: details}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, studentID, details)
}

func (mock *learnedWordRepoMock) UpsertCalls() []struct {
	StudentID string
	Details   domain.WordDetails
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *learnedWordRepoMock) RecordReview(ctx context.Context, studentID, word string, mastered bool) (*domain.LearnedWord, error) {
	if mock.RecordReviewFunc == nil {
		panic("learnedWordRepoMock.RecordReviewFunc: method is nil but learnedWordRepo.RecordReview was just called")
	}
	callInfo := struct {
		StudentID string
		Word      string
		Mastered  bool
	}{StudentID: studentID, Word: word, Mastered: mastered}
	mock.lockRecordReview.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, callInfo)
	mock.lockRecordReview.Unlock()
	return mock.RecordReviewFunc(ctx, studentID, word, mastered)
}

func (mock *learnedWordRepoMock) RecordReviewCalls() []struct {
	StudentID string
	Word      string
	Mastered  bool
} {
	mock.lockRecordReview.RLock()
	calls := mock.calls.RecordReview
	mock.lockRecordReview.RUnlock()
	return calls
}

func (mock *learnedWordRepoMock) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*domain.LearnedWord, int, error) {
	if mock.ListByStudentFunc == nil {
		panic("learnedWordRepoMock.ListByStudentFunc: method is nil but learnedWordRepo.ListByStudent was just called")
	}
	callInfo := struct {
		StudentID string
		Limit     int
		Offset    int
	}{StudentID: studentID, Limit: limit, Offset: offset}
	mock.lockListByStudent.Lock()
	mock.calls.ListByStudent = append(mock.calls.ListByStudent, callInfo)
	mock.lockListByStudent.Unlock()
	return mock.ListByStudentFunc(ctx, studentID, limit, offset)
}

func (mock *learnedWordRepoMock) ListByStudentCalls() []struct {
	StudentID string
	Limit     int
	Offset    int
} {
	mock.lockListByStudent.RLock()
	calls := mock.calls.ListByStudent
	mock.lockListByStudent.RUnlock()
	return calls
}

var _ activitySink = &activitySinkMock{}

type activitySinkMock struct {
	AppendActivityFunc func(ctx context.Context, entry domain.ActivityEntry) error
	AppendSessionFunc  func(ctx context.Context, s domain.StudySession) error

	calls struct {
		AppendActivity []domain.ActivityEntry
		AppendSession  []domain.StudySession
	}
	lockAppendActivity sync.RWMutex
	lockAppendSession  sync.RWMutex
}

func (mock *activitySinkMock) AppendActivity(ctx context.Context, entry domain.ActivityEntry) error {
	if mock.AppendActivityFunc == nil {
		panic("activitySinkMock.AppendActivityFunc: method is nil but activitySink.AppendActivity was just called")
	}
	mock.lockAppendActivity.Lock()
	mock.calls.AppendActivity = append(mock.calls.AppendActivity, entry)
	mock.lockAppendActivity.Unlock()
	return mock.AppendActivityFunc(ctx, entry)
}

func (mock *activitySinkMock) AppendActivityCalls() []domain.ActivityEntry {
	mock.lockAppendActivity.RLock()
	calls := mock.calls.AppendActivity
	mock.lockAppendActivity.RUnlock()
	return calls
}

func (mock *activitySinkMock) AppendSession(ctx context.Context, s domain.StudySession) error {
	if mock.AppendSessionFunc == nil {
		panic("activitySinkMock.AppendSessionFunc: method is nil but activitySink.AppendSession was just called")
	}
	mock.lockAppendSession.Lock()
	mock.calls.AppendSession = append(mock.calls.AppendSession, s)
	mock.lockAppendSession.Unlock()
	return mock.AppendSessionFunc(ctx, s)
}

func (mock *activitySinkMock) AppendSessionCalls() []domain.StudySession {
	mock.lockAppendSession.RLock()
	calls := mock.calls.AppendSession
	mock.lockAppendSession.RUnlock()
	return calls
}
